package profile

import "context"

// Source is the backend side of the profile page.
type Source interface {
	Profile(ctx context.Context) (*Profile, error)
	UploadAvatar(ctx context.Context, avatar Avatar) (string, error)
}
