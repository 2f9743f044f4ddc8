package logging

import (
	"io"

	"github.com/pkg/errors"
	"github.com/pratik-anurag/feluda-examples/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the diagnostics logger. Output goes to stderr so that stdout
// only carries the program output.
func New(cfg config.Log) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "parse log level %q", cfg.Level)
	}
	var zapConfig zap.Config
	switch cfg.Mode {
	case "prod", "production":
		zapConfig = zap.NewProductionConfig()
	default:
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.Level = level
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}
	logger, err := zapConfig.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return logger, nil
}

// Console returns a logger writing plain console lines without timestamps
// to w. Used where log output is part of the program output. Writes are
// unbuffered and Sync is a no-op, so pipes and /dev/null work as w.
func Console(w io.Writer, level zapcore.Level) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	encoderConfig.CallerKey = ""
	encoderConfig.StacktraceKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(writerOnly{w}), level)
	return zap.New(core)
}

// writerOnly hides the Sync method of an *os.File; fsync fails with EINVAL
// on pipes and character devices.
type writerOnly struct {
	io.Writer
}
