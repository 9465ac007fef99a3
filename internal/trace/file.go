package trace

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FileSink writes the trace through a zap console logger to the given log
// path, so every line carries a timestamp and reaches the file unbuffered.
type FileSink struct {
	logger *zap.Logger
}

// NewFileSink opens the trace log at path, truncating any previous run's
// trace. An empty path sends the trace to stderr.
func NewFileSink(path string) (*FileSink, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	// the trace repeats identical lines on purpose; sampling would eat them
	cfg.Sampling = nil
	cfg.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:    "ts",
		MessageKey: "msg",
		LevelKey:   zapcore.OmitKey,
		EncodeTime: zapcore.ISO8601TimeEncoder,
	}
	cfg.OutputPaths = []string{"stderr"}
	if path != "" {
		// zap appends; the trace is scoped to one run, so truncate first
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("open trace log: %w", err)
		}
		f.Close()
		cfg.OutputPaths = []string{path}
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build trace logger: %w", err)
	}
	return &FileSink{logger: logger}, nil
}

func (s *FileSink) Append(msg string) {
	s.logger.Info(msg)
}

func (s *FileSink) Appendf(format string, args ...any) {
	s.logger.Info(fmt.Sprintf(format, args...))
}

func (s *FileSink) Flush() {
	_ = s.logger.Sync()
}
