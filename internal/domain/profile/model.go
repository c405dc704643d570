// Package profile covers the signed-in administrator's own account.
package profile

// Fallbacks shown when the profile cannot be loaded.
const (
	FallbackName  = "Admin User"
	FallbackEmail = "Administrator"
)

// MaxAvatarBytes is the largest avatar the console will upload.
const MaxAvatarBytes = 5 << 20

// Profile is the administrator account as returned by the backend.
type Profile struct {
	ID     string `json:"_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// DisplayName returns the name, falling back to FallbackName.
func (p *Profile) DisplayName() string {
	if p == nil || p.Name == "" {
		return FallbackName
	}
	return p.Name
}

// DisplayEmail returns the email, falling back to FallbackEmail.
func (p *Profile) DisplayEmail() string {
	if p == nil || p.Email == "" {
		return FallbackEmail
	}
	return p.Email
}

// Avatar is an image file to upload as the profile picture.
type Avatar struct {
	Filename    string
	ContentType string
	Data        []byte
}
