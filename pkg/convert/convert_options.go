package convert

type Option func(c *Converter)

func WithThreshold(threshold int) Option {
	return func(c *Converter) {
		c.threshold = threshold
	}
}

// WithResize scales the image before thresholding. A zero side keeps the
// aspect ratio.
func WithResize(width, height int) Option {
	return func(c *Converter) {
		c.width = width
		c.height = height
	}
}
