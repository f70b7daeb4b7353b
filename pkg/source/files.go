package source

import (
	"context"
	"image"

	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func NewFiles(fs afero.Fs, logger *zap.Logger) *Files {
	return &Files{fs: fs, log: logger}
}

// Files reads images from a filesystem.
type Files struct {
	fs  afero.Fs
	log *zap.Logger
}

func (f *Files) Open(_ context.Context, name string) (image.Image, error) {
	fh, err := f.fs.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "open image")
	}

	defer func() {
		_ = fh.Close()
	}()

	if info, err := fh.Stat(); err == nil {
		f.log.With(
			zap.String("file", name),
			zap.String("size", bytesize.New(float64(info.Size())).String()),
		).Debug("loading")
	}

	return decode(fh, name)
}
