package auth

import (
	"strings"

	"github.com/dmitrymomot/enroll/modules/user"
	"github.com/dmitrymomot/enroll/pkg/form"
	"github.com/dmitrymomot/enroll/pkg/validator"
)

// SignupField names a field of the signup form.
type SignupField string

const (
	SignupEmail    SignupField = "email"
	SignupPassword SignupField = "password"
	SignupName     SignupField = "name"
	SignupPhone    SignupField = "phone"
	SignupRole     SignupField = "role"
)

// SignupFields lists the signup fields in display order.
var SignupFields = []SignupField{SignupName, SignupEmail, SignupPhone, SignupPassword, SignupRole}

func SignupInitial() form.Values[SignupField] {
	return form.Values[SignupField]{
		SignupEmail:    "",
		SignupPassword: "",
		SignupName:     "",
		SignupPhone:    "",
		SignupRole:     string(user.RoleStudent),
	}
}

// ValidateSignup checks email, password, name and phone. Role is chosen
// from fixed options and is not validated.
func ValidateSignup(v form.Values[SignupField]) form.Errors[SignupField] {
	errs := form.Errors[SignupField]{}
	if r := validator.Email(v[SignupEmail]); !r.OK {
		errs[SignupEmail] = r.Reason
	}
	if r := validator.Password(v[SignupPassword]); !r.OK {
		errs[SignupPassword] = r.Reason
	}
	if r := validator.Name(v[SignupName]); !r.OK {
		errs[SignupName] = r.Reason
	}
	if r := validator.Phone(v[SignupPhone]); !r.OK {
		errs[SignupPhone] = r.Reason
	}
	return errs
}

// NewSignupForm validates on blur and on submit.
func NewSignupForm(submit form.SubmitFunc[SignupField], opts ...form.Option[SignupField]) *form.Form[SignupField] {
	opts = append([]form.Option[SignupField]{form.WithValidate(ValidateSignup)}, opts...)
	return form.New(SignupInitial(), submit, opts...)
}

// CanSubmitSignup enables the signup button: every text field is filled
// and no field carries an error, visible or not.
func CanSubmitSignup(s form.State[SignupField]) bool {
	for _, f := range []SignupField{SignupEmail, SignupPassword, SignupName, SignupPhone} {
		if s.Values[f] == "" {
			return false
		}
	}
	return !s.Errors.Any() && !s.IsSubmitting
}

// SignupRequestFrom builds the API payload from form values.
func SignupRequestFrom(v form.Values[SignupField]) SignupRequest {
	role, err := user.ParseRole(v[SignupRole])
	if err != nil {
		role = user.RoleStudent
	}
	return SignupRequest{
		Email:    strings.TrimSpace(v[SignupEmail]),
		Password: v[SignupPassword],
		Name:     strings.TrimSpace(v[SignupName]),
		Phone:    v[SignupPhone],
		Role:     role,
	}
}

// LoginField names a field of the login form.
type LoginField string

const (
	LoginEmail    LoginField = "email"
	LoginPassword LoginField = "password"
)

var LoginFields = []LoginField{LoginEmail, LoginPassword}

func LoginInitial() form.Values[LoginField] {
	return form.Values[LoginField]{LoginEmail: "", LoginPassword: ""}
}

// NewLoginForm has no validator. The API decides whether credentials are
// good; the button only waits for both values.
func NewLoginForm(submit form.SubmitFunc[LoginField], opts ...form.Option[LoginField]) *form.Form[LoginField] {
	return form.New(LoginInitial(), submit, opts...)
}

func CanSubmitLogin(s form.State[LoginField]) bool {
	return s.Values[LoginEmail] != "" && s.Values[LoginPassword] != "" && !s.IsSubmitting
}

func LoginRequestFrom(v form.Values[LoginField]) LoginRequest {
	return LoginRequest{Email: strings.TrimSpace(v[LoginEmail]), Password: v[LoginPassword]}
}
