package backend

import (
	"context"
	"net/http"
	"net/url"
)

// ListUsers fetches users matching the free-text search query. An empty
// query issues the request with no query parameter at all.
func (c *Client) ListUsers(ctx context.Context, q string) (UserList, error) {
	query := url.Values{}
	if q != "" {
		query.Set("q", q)
	}
	var list UserList
	if err := c.get(ctx, "/users", query, &list); err != nil {
		return UserList{}, err
	}
	return list, nil
}

func (c *Client) CreateUser(ctx context.Context, payload UserCreate) (User, error) {
	var user User
	if err := c.do(ctx, http.MethodPost, "/users", nil, payload, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, patch UserUpdate) (User, error) {
	var user User
	if err := c.do(ctx, http.MethodPatch, "/users/"+url.PathEscape(id), nil, patch, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, nil, nil)
}

// CurrentUser fetches the profile of the bearer of the access token.
func (c *Client) CurrentUser(ctx context.Context) (User, error) {
	var user User
	if err := c.get(ctx, "/users/me", nil, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (c *Client) UpdateMe(ctx context.Context, patch UserUpdate) (User, error) {
	var user User
	if err := c.do(ctx, http.MethodPatch, "/users/me", nil, patch, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (c *Client) UpdateMyPassword(ctx context.Context, payload UpdatePassword) error {
	return c.do(ctx, http.MethodPatch, "/users/me/password", nil, payload, nil)
}

// SignUp registers a new account through the open registration endpoint.
func (c *Client) SignUp(ctx context.Context, payload UserRegister) (User, error) {
	var user User
	if err := c.do(ctx, http.MethodPost, "/users/signup", nil, payload, &user); err != nil {
		return User{}, err
	}
	return user, nil
}
