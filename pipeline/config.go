package pipeline

// Config holds the tunables for a Pipeline. Every field has a usable
// zero-value fallback applied by New, so a caller may supply a partial
// Config.
type Config struct {
	// ViewportWidth is the logical (device-pixel-ratio-independent)
	// width the layout stage solves block widths against. Defaults to
	// 1280, spec.md's example viewport width.
	ViewportWidth float64
	// ChannelBuffer is the buffer length of every inter-stage channel.
	// Defaults to 4.
	ChannelBuffer int
	// DefaultStylesheetPath overrides markup.DefaultStylesheetPath when
	// non-empty.
	DefaultStylesheetPath string
}

const (
	defaultViewportWidth = 1280.0
	defaultChannelBuffer = 4
)

func (c Config) withDefaults() Config {
	if c.ViewportWidth <= 0 {
		c.ViewportWidth = defaultViewportWidth
	}
	if c.ChannelBuffer <= 0 {
		c.ChannelBuffer = defaultChannelBuffer
	}
	return c
}
