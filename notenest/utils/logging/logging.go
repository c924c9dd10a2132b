package logging

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Loggers are no-ops until InitLogger runs, so tests and tools can use
// packages that log without any setup.
var (
	AppLogger     = zap.NewNop()
	RequestLogger = zap.NewNop()
	TimerLogger   = zap.NewNop()
	ErrorLogger   = zap.NewNop()
)

type Options struct {
	Dir     string
	Level   string
	Console bool
}

// ensureLogsDir makes sure the log folder exists
func ensureLogsDir(dir string) error {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("create logs directory: %w", err)
	}
	return nil
}

func InitLogger(opts Options) error {
	if opts.Dir == "" {
		opts.Dir = "./logs"
	}
	if err := ensureLogsDir(opts.Dir); err != nil {
		return err
	}
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", opts.Level, err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	newCore := func(file string, maxSize, maxAge int, lvl zapcore.LevelEnabler) zapcore.Core {
		core := zapcore.NewCore(encoder,
			zapcore.AddSync(&lumberjack.Logger{
				Filename: filepath.Join(opts.Dir, file), MaxSize: maxSize, MaxAge: maxAge, Compress: true,
			}),
			lvl,
		)
		if opts.Console {
			console := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stdout), lvl)
			core = zapcore.NewTee(core, console)
		}
		return core
	}

	// app.log (general logs)
	AppLogger = zap.New(newCore("app.log", 100, 28, level))
	// request.log
	RequestLogger = zap.New(newCore("request.log", 50, 7, zap.InfoLevel))
	// timer.log
	TimerLogger = zap.New(newCore("timer.log", 50, 7, zap.DebugLevel))
	// error.log
	ErrorLogger = zap.New(newCore("error.log", 100, 30, zap.ErrorLevel))
	return nil
}

// Sync flushes every logger. Call it once on shutdown.
func Sync() {
	for _, l := range []*zap.Logger{AppLogger, RequestLogger, TimerLogger, ErrorLogger} {
		_ = l.Sync()
	}
}

// LogDuration lets you do: defer logging.LogDuration(ctx, "FuncName")()
func LogDuration(ctx context.Context, name string) func() {
	start := time.Now()
	reqID := middleware.GetReqID(ctx)

	return func() {
		fields := []zap.Field{
			zap.String("func", name),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		}
		if reqID != "" {
			fields = append(fields, zap.String("request_id", reqID))
		}

		// write ONLY to timer.log
		TimerLogger.Debug("Function timed", fields...)
	}
}
