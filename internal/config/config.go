package config

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"monobmp/pkg/bitmap"
)

const envPrefix = "MONOBMP"

// ErrUsage is returned when the command line does not name exactly one input.
var ErrUsage = errors.New("expected exactly one image path or URL")

type Config struct {
	Input     string
	Threshold int
	NoPreview bool
	Hex       bool
	Resize    string
	Debug     bool
}

// Load parses args (without the program name) and fills unset flags from
// MONOBMP_* environment variables.
func Load(args []string, stderr io.Writer) (*Config, error) {
	fs := flag.NewFlagSet("monobmp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: monobmp [flags] <image path or URL>\n")
		fs.PrintDefaults()
	}

	fs.Int("threshold", bitmap.DefaultThreshold, "alpha cutoff, pixels with a greater alpha are set (images without alpha count as opaque)")
	fs.Bool("no-preview", false, "skip the ascii preview")
	fs.Bool("hex", false, "print packed values in hexadecimal")
	fs.String("resize", "", "resize to WxH before thresholding, 0 keeps the aspect ratio")
	fs.Bool("debug", false, "set debug")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return nil, ErrUsage
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "bind flags")
	}

	c := &Config{Input: fs.Arg(0)}
	var err error

	if c.Threshold, err = cast.ToIntE(v.Get("threshold")); err != nil {
		return nil, errors.Wrapf(err, "invalid threshold %q", v.GetString("threshold"))
	}
	if c.Resize, err = cast.ToStringE(v.Get("resize")); err != nil {
		return nil, errors.Wrap(err, "invalid resize")
	}
	for name, dst := range map[string]*bool{
		"no-preview": &c.NoPreview,
		"hex":        &c.Hex,
		"debug":      &c.Debug,
	} {
		if *dst, err = cast.ToBoolE(v.Get(name)); err != nil {
			return nil, errors.Wrapf(err, "invalid %s %q", name, v.GetString(name))
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 255 {
		return errors.Errorf("threshold %d out of range [0, 255]", c.Threshold)
	}

	if _, _, err := c.ResizeTo(); err != nil {
		return err
	}

	return nil
}

// ResizeTo parses Resize. Both values are 0 when no resize is requested.
func (c *Config) ResizeTo() (int, int, error) {
	if c.Resize == "" {
		return 0, 0, nil
	}

	ws, hs, ok := strings.Cut(strings.ToLower(c.Resize), "x")
	if !ok {
		return 0, 0, errors.Errorf("invalid resize %q, want WxH", c.Resize)
	}

	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid resize %q", c.Resize)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid resize %q", c.Resize)
	}

	if w < 0 || h < 0 || (w == 0 && h == 0) {
		return 0, 0, errors.Errorf("invalid resize %q", c.Resize)
	}

	return w, h, nil
}
