package auth

import (
	"context"

	"github.com/dmitrymomot/enroll/modules/user"
	"github.com/dmitrymomot/enroll/pkg/apiclient"
	"github.com/dmitrymomot/enroll/pkg/validator"
)

type SignupRequest struct {
	Email    string    `json:"email"`
	Password string    `json:"password"`
	Name     string    `json:"name"`
	Phone    string    `json:"phone"`
	Role     user.Role `json:"role"`
}

// Validate applies the same rules as the signup form.
func (r SignupRequest) Validate() error {
	return validator.Apply(
		validator.FromVerdict("email", validator.Email(r.Email)),
		validator.FromVerdict("password", validator.Password(r.Password)),
		validator.FromVerdict("name", validator.Name(r.Name)),
		validator.FromVerdict("phone", validator.Phone(r.Phone)),
	)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validator.Apply(
		validator.FromVerdict("email", validator.Required(r.Email, validator.ReasonEmailRequired)),
		validator.FromVerdict("password", validator.Required(r.Password, validator.ReasonPasswordRequired)),
	)
}

type LoginResponse struct {
	AccessToken string    `json:"accessToken" yaml:"access_token"`
	TokenType   string    `json:"tokenType" yaml:"token_type"`
	User        user.User `json:"user" yaml:"user"`
}

// API calls the account endpoints of the REST API.
type API struct {
	client *apiclient.Client
}

func NewAPI(client *apiclient.Client) *API {
	return &API{client: client}
}

// Signup creates an account. It does not sign the user in.
func (a *API) Signup(ctx context.Context, req SignupRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out user.User
	if err := a.client.Post(ctx, "/users/signup", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out LoginResponse
	if err := a.client.Post(ctx, "/users/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
