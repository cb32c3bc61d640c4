package logging

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrInvalidConfig indicates a logging configuration that cannot be built.
var ErrInvalidConfig = errors.New("logging: invalid config")

// Config holds logging configuration.
type Config struct {
	Level  zapcore.Level `koanf:"level" yaml:"level"`
	Format string        `koanf:"format" yaml:"format"`
	Caller bool          `koanf:"caller" yaml:"caller"`
}

// NewDefaultConfig returns info level JSON logging.
func NewDefaultConfig() Config {
	return Config{Level: zapcore.InfoLevel, Format: "json"}
}

// Validate checks the format and the level.
func (c Config) Validate() error {
	if c.Format != "json" && c.Format != "console" {
		return fmt.Errorf("%w: format must be json or console, got %q", ErrInvalidConfig, c.Format)
	}
	if c.Level < zapcore.DebugLevel || c.Level > zapcore.FatalLevel {
		return fmt.Errorf("%w: level %v out of range", ErrInvalidConfig, c.Level)
	}

	return nil
}

// New builds a logger writing to stderr.
func New(cfg Config) (*zap.Logger, error) {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter builds a logger writing to w.
func NewWithWriter(cfg Config, w io.Writer) (*zap.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	core := zapcore.NewCore(newEncoder(cfg.Format), zapcore.AddSync(w), cfg.Level)
	var opts []zap.Option
	if cfg.Caller {
		opts = append(opts, zap.AddCaller())
	}

	return zap.New(core, opts...), nil
}

// newEncoder creates JSON or console encoder.
func newEncoder(format string) zapcore.Encoder {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if format == "console" {
		return zapcore.NewConsoleEncoder(encoderCfg)
	}

	return zapcore.NewJSONEncoder(encoderCfg)
}
