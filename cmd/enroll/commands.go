package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/enroll/modules/auth"
	"github.com/dmitrymomot/enroll/modules/user"
	"github.com/dmitrymomot/enroll/pkg/apiclient"
	"github.com/dmitrymomot/enroll/pkg/form"
	"github.com/dmitrymomot/enroll/pkg/format"
	"github.com/dmitrymomot/enroll/pkg/logger"
	"github.com/dmitrymomot/enroll/pkg/prompt"
	"github.com/dmitrymomot/enroll/pkg/toast"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "enroll",
		Short:         "수강신청 서비스 터미널 클라이언트",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	var debug bool
	root.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if debug {
			a.log = logger.New(
				logger.WithTextFormatter(),
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithLevel(slog.LevelDebug),
			)
		}
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "log API requests to stderr")
	root.PersistentFlags().StringVar(&a.apiURL, "api", a.apiURL, "API base URL (env API_BASE_URL)")
	root.PersistentFlags().StringVar(&a.credsPath, "credentials", a.credsPath, "where the login token is kept")

	root.AddCommand(
		newSignupCmd(a),
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newCoursesCmd(a),
		newEnrollCmd(a),
	)
	return root
}

// userError shows the API message instead of the transport detail.
func userError(err error, fallback string) error {
	if _, ok := apiclient.AsAPIError(err); ok {
		return errors.New(apiclient.MessageOr(err, fallback))
	}
	return err
}

var signupFields = []prompt.Field[auth.SignupField]{
	{Key: auth.SignupName, Label: "이름"},
	{Key: auth.SignupEmail, Label: "이메일"},
	{Key: auth.SignupPhone, Label: "휴대폰 번호", Help: "010-1234-5678", Normalize: format.Phone},
	{Key: auth.SignupPassword, Label: "비밀번호", Kind: prompt.KindPassword, Help: "6~10자, 영문 대소문자와 숫자 중 두 가지 이상"},
	{Key: auth.SignupRole, Label: "회원 유형", Kind: prompt.KindSelect, Choices: []prompt.Choice{
		{Label: user.RoleStudent.Label(), Value: user.RoleStudent.String()},
		{Label: user.RoleInstructor.Label(), Value: user.RoleInstructor.String()},
	}},
}

var loginFields = []prompt.Field[auth.LoginField]{
	{Key: auth.LoginEmail, Label: "이메일"},
	{Key: auth.LoginPassword, Label: "비밀번호", Kind: prompt.KindPassword},
}

func newSignupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "signup",
		Short: "회원가입 후 바로 로그인합니다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client("")
			if err != nil {
				return err
			}
			api := auth.NewAPI(c)

			var f *form.Form[auth.SignupField]
			f = auth.NewSignupForm(func(ctx context.Context, v form.Values[auth.SignupField]) error {
				req := auth.SignupRequestFrom(v)
				if _, err := api.Signup(ctx, req); err != nil {
					if apiclient.IsStatus(err, http.StatusConflict) {
						// asked again by prompt.Run
						f.SetFieldError(auth.SignupEmail, auth.MsgSignupFailed)
						return nil
					}
					return userError(err, auth.MsgSignupFailed)
				}
				a.notify(toast.Success, auth.MsgSignupSuccess)
				return a.login(ctx, api, auth.LoginRequest{Email: req.Email, Password: req.Password})
			})
			return prompt.Run(cmd.Context(), a.driver, f, signupFields...)
		},
	}
}

func newLoginCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "로그인하고 토큰을 저장합니다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client("")
			if err != nil {
				return err
			}
			api := auth.NewAPI(c)
			f := auth.NewLoginForm(func(ctx context.Context, v form.Values[auth.LoginField]) error {
				return a.login(ctx, api, auth.LoginRequestFrom(v))
			})
			return prompt.Run(cmd.Context(), a.driver, f, loginFields...)
		},
	}
}

func (a *app) login(ctx context.Context, api *auth.API, req auth.LoginRequest) error {
	resp, err := api.Login(ctx, req)
	if err != nil {
		return userError(err, auth.MsgLoginFailed)
	}
	err = saveCredentials(a.credsPath, credentials{API: a.apiURL, Token: resp.AccessToken, User: resp.User})
	if err != nil {
		return err
	}
	a.notify(toast.Success, auth.MsgLoginSuccess)
	return nil
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "저장된 토큰을 지웁니다",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if err := removeCredentials(a.credsPath); err != nil {
				return err
			}
			a.notify(toast.Info, auth.MsgLogout)
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "로그인한 계정을 보여줍니다",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			creds, err := loadCredentials(a.credsPath)
			if err != nil {
				return err
			}
			u := creds.User
			fmt.Fprintf(a.out, "%s <%s> %s (%s)\n", u.Name, u.Email, u.Phone, u.Role.Label())
			return nil
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("잘못된 강의 번호입니다: %q", s)
	}
	return id, nil
}
