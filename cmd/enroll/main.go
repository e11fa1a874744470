// Command enroll signs up, logs in, browses courses and enrolls from the
// terminal, against the same REST API as the web client.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/enroll/pkg/apiclient"
	"github.com/dmitrymomot/enroll/pkg/config"
	"github.com/dmitrymomot/enroll/pkg/prompt"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg apiclient.Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	a := &app{
		driver:    prompt.NewSurvey(),
		out:       os.Stdout,
		log:       slog.New(slog.DiscardHandler),
		apiURL:    cfg.BaseURL,
		timeout:   cfg.Timeout,
		credsPath: defaultCredentialsPath(),
	}
	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "✗", err)
		os.Exit(1)
	}
}
