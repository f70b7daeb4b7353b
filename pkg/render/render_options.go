package render

type Option func(r *Renderer)

// WithoutPreview drops the ASCII preview block.
func WithoutPreview() Option {
	return func(r *Renderer) {
		r.preview = false
	}
}

// WithHex prints packed values as 0xNN instead of decimal.
func WithHex() Option {
	return func(r *Renderer) {
		r.format = formatHex
	}
}

// WithSymbols replaces the preview symbols for set and cleared pixels.
func WithSymbols(on, off string) Option {
	return func(r *Renderer) {
		r.on = on
		r.off = off
	}
}
