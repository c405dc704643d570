package backend

import (
	"context"
	"errors"
	"net/http"

	"github.com/servidz/console/internal/apperr"
	"github.com/servidz/console/internal/domain/profile"
	"github.com/servidz/console/internal/domain/session"
)

var _ session.Authenticator = (*Client)(nil)

type loginResponse struct {
	Token string           `json:"token"`
	Admin *profile.Profile `json:"admin"`
	User  *profile.Profile `json:"user"`
}

// Login exchanges admin credentials for a bearer token. Rejected
// credentials are reported as ErrAuth.
func (c *Client) Login(ctx context.Context, email, password string) (*session.LoginResult, error) {
	cl, err := c.jsonCall("login", http.MethodPost, "/admin/login", map[string]string{
		"email":    email,
		"password": password,
	}, false, false)
	if err != nil {
		return nil, err
	}

	var resp loginResponse
	if err := c.do(ctx, cl, &resp); err != nil {
		var remote *apperr.RemoteError
		if errors.As(err, &remote) && remote.StatusCode >= 400 && remote.StatusCode < 500 {
			remote.Kind = apperr.ErrAuth
		}
		return nil, err
	}

	admin := resp.Admin
	if admin == nil {
		admin = resp.User
	}
	return &session.LoginResult{Token: resp.Token, Profile: admin}, nil
}
