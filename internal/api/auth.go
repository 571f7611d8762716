package api

import (
	"context"
	"net/http"
	"strings"
)

// Login exchanges credentials for a session token. A rejected login returns
// both a response with Success=false and the status error.
func (c *Client) Login(ctx context.Context, creds LoginCredentials) (LoginResponse, error) {
	var raw struct {
		Message string `json:"message"`
		Token   string `json:"token"`
		User    *User  `json:"user"`
	}
	err := c.do(ctx, request{method: http.MethodPost, path: "/auth/login", body: creds}, &raw)
	if err != nil {
		return LoginResponse{
			Message: UserMessage(err, "Login failed. Please check your credentials."),
		}, err
	}
	msg := strings.TrimSpace(raw.Message)
	if msg == "" {
		msg = "Login successful"
	}
	return LoginResponse{Success: true, Message: msg, Token: raw.Token, User: raw.User}, nil
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, creds SignupCredentials) (SignupResponse, error) {
	var raw struct {
		UserID string `json:"userId"`
		ID     string `json:"id"`
	}
	err := c.do(ctx, request{method: http.MethodPost, path: "/auth/signup", body: creds}, &raw)
	if err != nil {
		return SignupResponse{
			Message: UserMessage(err, "Registration failed. Please try again."),
		}, err
	}
	id := raw.UserID
	if id == "" {
		id = raw.ID
	}
	return SignupResponse{Success: true, Message: "Registration successful!", UserID: id}, nil
}
