package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Params struct {
	Level     string
	File      string // optional, rotated by lumberjack
	MaxSizeMB int
}

// NewLogger returns a JSON zap logger writing to stdout and, when File is
// set, to a rotated log file as well.
func NewLogger(params Params) (*zap.Logger, error) {
	level := GetLevel(params.Level)

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	writers := []zapcore.WriteSyncer{zapcore.Lock(os.Stdout)}
	if params.File != "" {
		fileName := params.File
		if !strings.HasSuffix(fileName, ".log") {
			fileName += ".log"
		}
		maxSize := params.MaxSizeMB
		if maxSize <= 0 {
			maxSize = 50
		}
		writers = append(writers, zapcore.AddSync(&lumberjack.Logger{
			Filename:  fileName,
			MaxSize:   maxSize, // megabytes
			LocalTime: false,
			Compress:  true,
		}))
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(writers...), level)
	return zap.New(core, zap.AddCaller()), nil
}

func GetLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
