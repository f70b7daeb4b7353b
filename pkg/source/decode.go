package source

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

func decode(r io.Reader, name string) (image.Image, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", name)
	}
	return img, nil
}
