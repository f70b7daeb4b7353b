package source

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"

	"github.com/go-resty/resty/v2"
	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

// NewRemote returns a source fetching images over http. Download progress is
// drawn on progress, which must not be the writer carrying the output.
func NewRemote(progress io.Writer, logger *zap.Logger) *Remote {
	return &Remote{
		cli:      resty.New().SetDoNotParseResponse(true),
		progress: progress,
		log:      logger,
	}
}

type Remote struct {
	cli      *resty.Client
	progress io.Writer
	log      *zap.Logger
}

func (r *Remote) Open(ctx context.Context, url string) (image.Image, error) {
	resp, err := r.cli.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, errors.Wrap(err, "download image")
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	if resp.IsError() {
		return nil, errors.Errorf("download image: %s returned %s", url, resp.Status())
	}

	bar := progressbar.NewOptions64(
		resp.RawResponse.ContentLength,
		progressbar.OptionSetWriter(r.progress),
		progressbar.OptionSetDescription(fmt.Sprintf("Downloading %s", url)),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
	)

	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&buf, bar), resp.RawBody()); err != nil {
		return nil, errors.Wrap(err, "download image")
	}
	_ = bar.Finish()

	r.log.With(
		zap.String("url", url),
		zap.String("size", bytesize.New(float64(buf.Len())).String()),
	).Debug("downloaded")

	return decode(&buf, url)
}
