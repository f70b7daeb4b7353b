package main

import (
	"context"
	"io"

	"github.com/spf13/afero"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"monobmp/internal/config"
	"monobmp/pkg/convert"
	"monobmp/pkg/render"
	"monobmp/pkg/source"
)

type streams struct {
	fx.Out

	Stdout io.Writer `name:"stdout"`
	Stderr io.Writer `name:"stderr"`
}

// newApp wires the conversion for cfg. The conversion runs while the app is
// built; its error, if any, is reported by App.Err.
func newApp(cfg *config.Config, fs afero.Fs, stdout, stderr io.Writer) *fx.App {
	return fx.New(
		fx.Supply(cfg),
		fx.Provide(
			func() afero.Fs { return fs },
			func() streams { return streams{Stdout: stdout, Stderr: stderr} },
			newLogger,
			newSource,
			newRenderer,
			newConverter,
		),
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l}
		}),
		fx.Invoke(convertInput),
	)
}

type loggerParams struct {
	fx.In

	Config *config.Config
	Stderr io.Writer `name:"stderr"`
}

func newLogger(p loggerParams) *zap.Logger {
	level := zap.WarnLevel
	if p.Config.Debug {
		level = zap.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(p.Stderr),
		level,
	)

	return zap.New(core, zap.Development())
}

type sourceParams struct {
	fx.In

	Fs     afero.Fs
	Logger *zap.Logger
	Stderr io.Writer `name:"stderr"`
}

func newSource(p sourceParams) source.Source {
	return source.NewAuto(
		source.NewFiles(p.Fs, p.Logger),
		source.NewRemote(p.Stderr, p.Logger),
	)
}

func newRenderer(cfg *config.Config) *render.Renderer {
	var opts []render.Option
	if cfg.NoPreview {
		opts = append(opts, render.WithoutPreview())
	}
	if cfg.Hex {
		opts = append(opts, render.WithHex())
	}
	return render.New(opts...)
}

func newConverter(cfg *config.Config, src source.Source, r *render.Renderer, logger *zap.Logger) (*convert.Converter, error) {
	w, h, err := cfg.ResizeTo()
	if err != nil {
		return nil, err
	}

	return convert.New(src, r, logger,
		convert.WithThreshold(cfg.Threshold),
		convert.WithResize(w, h),
	), nil
}

type runParams struct {
	fx.In

	Config    *config.Config
	Converter *convert.Converter
	Stdout    io.Writer `name:"stdout"`
}

func convertInput(p runParams) error {
	return p.Converter.Convert(context.Background(), p.Config.Input, p.Stdout)
}
