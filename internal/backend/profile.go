package backend

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/servidz/console/internal/apperr"
	"github.com/servidz/console/internal/domain/profile"
)

var _ profile.Source = (*Client)(nil)

// AvatarField is the multipart field name of an avatar upload.
const AvatarField = "avatar"

// Profile fetches the signed-in admin.
func (c *Client) Profile(ctx context.Context) (*profile.Profile, error) {
	var out profile.Profile
	if err := c.get(ctx, "get profile", "/admin/profile", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadAvatar sends a new profile picture and returns its URL.
func (c *Client) UploadAvatar(ctx context.Context, avatar profile.Avatar) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, AvatarField, sanitizeFilename(avatar.Filename)))
	header.Set("Content-Type", avatar.ContentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("building avatar upload: %w", err)
	}
	if _, err := part.Write(avatar.Data); err != nil {
		return "", fmt.Errorf("building avatar upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("building avatar upload: %w", err)
	}

	cl := call{
		op:       "upload avatar",
		method:   http.MethodPost,
		path:     "/admin/avatar",
		body:     &buf,
		ctype:    mw.FormDataContentType(),
		authed:   true,
		mutation: true,
	}
	var out struct {
		Avatar string `json:"avatar"`
	}
	if err := c.do(ctx, cl, &out); err != nil {
		return "", err
	}
	if out.Avatar == "" {
		return "", &apperr.RemoteError{Kind: apperr.ErrActionFailed, Op: cl.op, Message: "no avatar URL in response"}
	}
	return out.Avatar, nil
}

func sanitizeFilename(name string) string {
	name = strings.NewReplacer("\r", "", "\n", "", `"`, "").Replace(name)
	if name == "" {
		return "avatar"
	}
	return name
}
