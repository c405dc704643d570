package profile

import (
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/servidz/console/internal/apperr"
)

// ValidateAvatar checks that a is a non-empty image no larger than
// MaxAvatarBytes. A missing content type is sniffed from the data and
// then from the file extension.
func ValidateAvatar(a Avatar) error {
	if len(a.Data) == 0 {
		return apperr.Validation("avatar file is empty")
	}
	if len(a.Data) > MaxAvatarBytes {
		return apperr.Validation("avatar is %d bytes, limit is %d", len(a.Data), MaxAvatarBytes)
	}
	ct := ContentType(a)
	if !strings.HasPrefix(ct, "image/") {
		return apperr.Validation("avatar must be an image, got %q", ct)
	}
	return nil
}

// ContentType returns the declared media type of a, or a detected one.
func ContentType(a Avatar) string {
	if ct := bareType(a.ContentType); ct != "" {
		return ct
	}
	if ct := http.DetectContentType(a.Data); ct != "application/octet-stream" {
		return bareType(ct)
	}
	if ct := bareType(mime.TypeByExtension(filepath.Ext(a.Filename))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// bareType lowercases ct and drops any parameters.
func bareType(ct string) string {
	ct = strings.ToLower(strings.TrimSpace(ct))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return ct
}
