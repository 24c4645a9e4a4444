package adminsdk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

const authBase = "/v1/auth"

// AuthService handles authentication against the admin API. Login writes the
// issued bearer token into the client's credential store; logout clears it.
type AuthService struct {
	client *Client
}

// LoginData is the payload of a successful login response.
type LoginData struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates with email and password. On success the returned
// bearer token is persisted in the credential store so subsequent requests
// carry it automatically.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Envelope[LoginData], error) {
	var env Envelope[LoginData]
	err := s.client.doJSON(ctx, http.MethodPost, authBase+"/login", loginRequest{
		Email:    email,
		Password: password,
	}, &env)
	if err != nil {
		return nil, err
	}

	if env.Data.Token == "" {
		return nil, fmt.Errorf("login succeeded but response carried no token")
	}
	if err := s.client.creds.SetToken(env.Data.Token); err != nil {
		return nil, fmt.Errorf("failed to persist token: %w", err)
	}

	return &env, nil
}

// Logout revokes the current session server-side and clears the stored
// token. The local token is cleared even when the server call fails, so a
// client never keeps credentials it asked to discard.
func (s *AuthService) Logout(ctx context.Context) error {
	err := s.client.doJSON(ctx, http.MethodPost, authBase+"/logout", nil, nil)

	// A 401 already cleared the store in the transport layer; treat it as a
	// successful logout since the session is gone either way.
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.IsAuthFailure() {
		return nil
	}

	if clearErr := s.client.creds.Clear(); clearErr != nil && err == nil {
		err = fmt.Errorf("failed to clear token: %w", clearErr)
	}
	return err
}

// LogoutAll revokes every session of the current user, then clears the
// stored token with the same semantics as Logout.
func (s *AuthService) LogoutAll(ctx context.Context) error {
	err := s.client.doJSON(ctx, http.MethodPost, authBase+"/logout-all", nil, nil)

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.IsAuthFailure() {
		return nil
	}

	if clearErr := s.client.creds.Clear(); clearErr != nil && err == nil {
		err = fmt.Errorf("failed to clear token: %w", clearErr)
	}
	return err
}

// ForgotPassword asks the backend to start a password reset for email.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (*MessageEnvelope, error) {
	var env MessageEnvelope
	err := s.client.doJSON(ctx, http.MethodPost, authBase+"/forgot-password", map[string]string{
		"email": email,
	}, &env)
	if err != nil {
		return nil, err
	}
	return &env, nil
}

// ResetPassword completes a password reset using the emailed reset token.
func (s *AuthService) ResetPassword(ctx context.Context, resetToken, password string) (*MessageEnvelope, error) {
	var env MessageEnvelope
	err := s.client.doJSON(ctx, http.MethodPost, authBase+"/reset-password", map[string]string{
		"token":    resetToken,
		"password": password,
	}, &env)
	if err != nil {
		return nil, err
	}
	return &env, nil
}

// ChangePassword changes the password of the authenticated admin.
func (s *AuthService) ChangePassword(ctx context.Context, oldPassword, newPassword string) (*MessageEnvelope, error) {
	var env MessageEnvelope
	err := s.client.doJSON(ctx, http.MethodPost, authBase+"/change-password", map[string]string{
		"oldPassword": oldPassword,
		"newPassword": newPassword,
	}, &env)
	if err != nil {
		return nil, err
	}
	return &env, nil
}
