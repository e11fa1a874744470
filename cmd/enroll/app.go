package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/enroll/modules/user"
	"github.com/dmitrymomot/enroll/pkg/apiclient"
	"github.com/dmitrymomot/enroll/pkg/prompt"
	"github.com/dmitrymomot/enroll/pkg/toast"
)

// app carries what every command needs. Tests build one around a scripted
// driver and a fake API.
type app struct {
	driver    prompt.Driver
	out       io.Writer
	log       *slog.Logger
	apiURL    string
	timeout   time.Duration
	credsPath string
}

func (a *app) client(token string) (*apiclient.Client, error) {
	opts := []apiclient.Option{apiclient.WithLogger(a.log)}
	if a.timeout > 0 {
		opts = append(opts, apiclient.WithTimeout(a.timeout))
	}
	if token != "" {
		opts = append(opts, apiclient.WithTokenSource(apiclient.StaticToken(token)))
	}
	return apiclient.New(a.apiURL, opts...)
}

// signedIn loads the saved credentials and returns a client that sends
// their token.
func (a *app) signedIn() (*credentials, *apiclient.Client, error) {
	creds, err := loadCredentials(a.credsPath)
	if err != nil {
		return nil, nil, err
	}
	c, err := a.client(creds.Token)
	if err != nil {
		return nil, nil, err
	}
	return creds, c, nil
}

// requireRole is the terminal version of the role guard on the web pages.
func (a *app) requireRole(creds *credentials, role user.Role) error {
	if creds.User.Role != role {
		return fmt.Errorf("%s 계정만 사용할 수 있습니다.", role.Label())
	}
	return nil
}

var noticeMarks = map[toast.Kind]string{
	toast.Success: "✓",
	toast.Error:   "✗",
	toast.Warning: "!",
	toast.Info:    "i",
}

func (a *app) notify(kind toast.Kind, msg string) {
	fmt.Fprintf(a.out, "%s %s\n", noticeMarks[kind], msg)
}
