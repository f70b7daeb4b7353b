package source

import (
	"context"
	"image"
	"strings"
)

// Source loads a decoded image by name.
type Source interface {
	Open(ctx context.Context, name string) (image.Image, error)
}

func NewAuto(files *Files, remote *Remote) *Auto {
	return &Auto{files: files, remote: remote}
}

// Auto sends http and https URLs to the remote source and everything else to
// the file source.
type Auto struct {
	files  *Files
	remote *Remote
}

func (a *Auto) Open(ctx context.Context, name string) (image.Image, error) {
	if IsURL(name) {
		return a.remote.Open(ctx, name)
	}
	return a.files.Open(ctx, name)
}

func IsURL(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
