package convert

import (
	"context"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"monobmp/pkg/bitmap"
	"monobmp/pkg/render"
	"monobmp/pkg/source"
)

func New(src source.Source, r *render.Renderer, logger *zap.Logger, opts ...Option) *Converter {
	c := &Converter{
		src:       src,
		r:         r,
		log:       logger,
		threshold: bitmap.DefaultThreshold,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Converter loads an image, thresholds its alpha channel and renders the
// packed bitmap.
type Converter struct {
	src       source.Source
	r         *render.Renderer
	log       *zap.Logger
	threshold int
	width     int
	height    int
}

func (c *Converter) Convert(ctx context.Context, name string, w io.Writer) error {
	img, err := c.src.Open(ctx, name)
	if err != nil {
		return err
	}

	m := c.Bitmap(img)

	c.log.With(
		zap.String("input", name),
		zap.Int("w", m.Width()),
		zap.Int("h", m.Height()),
		zap.Int("stride", bitmap.PackedLen(m.Width())),
		zap.Int("threshold", c.threshold),
	).Debug("thresholded")

	if err := c.r.Render(w, m); err != nil {
		return errors.Wrap(err, "render bitmap")
	}

	return nil
}

// Bitmap applies the optional resize and the threshold to img.
func (c *Converter) Bitmap(img image.Image) *bitmap.Mono {
	if c.width > 0 || c.height > 0 {
		img = imaging.Resize(img, c.width, c.height, imaging.NearestNeighbor)
	}
	return bitmap.Threshold(img, c.threshold)
}
