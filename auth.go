package woocommerce

import (
	"context"
	"fmt"
	"net/http"

	"github.com/loaidev64/woocommerce-go/internal/faker"
)

// Auth operations talk to the companion auth plugin, not the wc/v3
// surface. On success the current user id is written to the client's
// UserStore so later calls can read it back with CurrentUserID.

// LoginResult is the auth plugin's response to a login or registration.
type LoginResult struct {
	UserID      *int64  `json:"user_id,omitempty"`
	Username    *string `json:"username,omitempty"`
	Email       *string `json:"email,omitempty"`
	DisplayName *string `json:"display_name,omitempty"`
	Token       *string `json:"token,omitempty"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

type changePasswordRequest struct {
	UserID          int64  `json:"user_id"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// RegisterParams is the input of Register.
type RegisterParams struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Login authenticates against the store and persists the returned user
// id in the client's UserStore.
func (c *Client) Login(ctx context.Context, username, password string, reqOpts ...RequestOption) (*LoginResult, error) {
	var res *LoginResult
	if c.fakeMode(reqOpts) {
		r := fakeLoginResult()
		r.Username = ptr(username)
		res = &r
	} else {
		var err error
		res, err = doAuth[*LoginResult](ctx, c, http.MethodPost, "/login", loginRequest{Username: username, Password: password})
		if err != nil {
			return nil, err
		}
	}
	if res != nil && res.UserID != nil {
		if err := c.users.SetUserID(ctx, *res.UserID); err != nil {
			return nil, fmt.Errorf("store user id: %w", err)
		}
	}
	return res, nil
}

// Register creates a store account and persists the returned user id in
// the client's UserStore.
func (c *Client) Register(ctx context.Context, params RegisterParams, reqOpts ...RequestOption) (*LoginResult, error) {
	var res *LoginResult
	if c.fakeMode(reqOpts) {
		r := fakeLoginResult()
		r.Username = ptr(params.Username)
		r.Email = ptr(params.Email)
		res = &r
	} else {
		body := registerRequest{
			Username:  params.Username,
			Email:     params.Email,
			Password:  params.Password,
			FirstName: params.FirstName,
			LastName:  params.LastName,
		}
		var err error
		res, err = doAuth[*LoginResult](ctx, c, http.MethodPost, "/register", body)
		if err != nil {
			return nil, err
		}
	}
	if res != nil && res.UserID != nil {
		if err := c.users.SetUserID(ctx, *res.UserID); err != nil {
			return nil, fmt.Errorf("store user id: %w", err)
		}
	}
	return res, nil
}

// ChangePassword changes the password of the currently authenticated
// user.
func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string, reqOpts ...RequestOption) error {
	if c.fakeMode(reqOpts) {
		return nil
	}
	id, ok, err := c.users.UserID(ctx)
	if err != nil {
		return fmt.Errorf("read user id: %w", err)
	}
	if !ok {
		return ErrNoAuthenticatedUser
	}
	body := changePasswordRequest{UserID: id, CurrentPassword: currentPassword, NewPassword: newPassword}
	_, err = doAuth[struct{}](ctx, c, http.MethodPost, "/change-password", body)
	return err
}

// ForgotPassword asks the store to send a password reset email.
func (c *Client) ForgotPassword(ctx context.Context, email string, reqOpts ...RequestOption) error {
	if c.fakeMode(reqOpts) {
		return nil
	}
	_, err := doAuth[struct{}](ctx, c, http.MethodPost, "/forgot-password", forgotPasswordRequest{Email: email})
	return err
}

// Logout clears the persisted user id. Purely local, no request is made.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.users.ClearUserID(ctx); err != nil {
		return fmt.Errorf("clear user id: %w", err)
	}
	return nil
}

// CurrentUserID returns the persisted user id, or ErrNoAuthenticatedUser
// when no login or registration has happened.
func (c *Client) CurrentUserID(ctx context.Context) (int64, error) {
	id, ok, err := c.users.UserID(ctx)
	if err != nil {
		return 0, fmt.Errorf("read user id: %w", err)
	}
	if !ok {
		return 0, ErrNoAuthenticatedUser
	}
	return id, nil
}

func fakeLoginResult() LoginResult {
	return LoginResult{
		UserID:      ptr(faker.ID()),
		Username:    ptr(faker.Username()),
		Email:       ptr(faker.Email()),
		DisplayName: ptr(faker.FirstName()),
		Token:       ptr(faker.Word()),
	}
}
