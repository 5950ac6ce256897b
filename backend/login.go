package backend

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

// LoginResult is the payload of a successful password grant. Alongside the
// access token the backend returns the identity of the account that logged in.
type LoginResult struct {
	ID          string
	FullName    string
	Email       string
	AccessToken string
}

// Login exchanges credentials for an access token via the backend's
// form-encoded password grant (POST /login/access-token).
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	conf := &oauth2.Config{
		Endpoint: oauth2.Endpoint{
			TokenURL:  c.baseURL + "/login/access-token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	token, err := conf.PasswordCredentialsToken(ctx, email, password)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			status := retrieveErr.Response.StatusCode
			if status == http.StatusBadRequest || status == http.StatusUnauthorized {
				log.Warn().Str("email", email).Int("status", status).Msg("Login rejected")
				return LoginResult{}, &Error{Kind: KindAuthentication, Status: status, Detail: "invalid credentials", err: err}
			}
			return LoginResult{}, &Error{Kind: KindRemote, Status: status, err: err}
		}
		log.Warn().Err(err).Msg("Login request failed")
		return LoginResult{}, &Error{Kind: KindNetwork, err: err}
	}

	result := LoginResult{AccessToken: token.AccessToken}
	if v, ok := token.Extra("id").(string); ok {
		result.ID = v
	}
	if v, ok := token.Extra("full_name").(string); ok {
		result.FullName = v
	}
	if v, ok := token.Extra("email").(string); ok {
		result.Email = v
	}
	if result.Email == "" {
		result.Email = email
	}
	return result, nil
}
