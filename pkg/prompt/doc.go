// Package prompt runs a form.Form on the terminal.
//
// A Driver asks single questions; the survey implementation talks to a real
// terminal and Scripted replays canned answers in tests. Fill and Run walk a
// list of Field descriptions through the form's change and blur handlers, so
// the command line shows the same errors, at the same moments, as the web
// client does.
//
//	f := auth.NewLoginForm(submit)
//	err := prompt.Run(ctx, prompt.NewSurvey(), f,
//		prompt.Field[auth.LoginField]{Key: auth.LoginEmail, Label: "이메일"},
//		prompt.Field[auth.LoginField]{Key: auth.LoginPassword, Label: "비밀번호", Kind: prompt.KindPassword},
//	)
//
// Interrupting a survey prompt yields ErrAborted.
package prompt
