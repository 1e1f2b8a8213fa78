package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap.Logger from LOG_LEVEL and LOG_ENCODING env vars.
func New() (*zap.Logger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zapcore.InfoLevel
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if err := level.Set(raw); err != nil {
			level = zapcore.InfoLevel
		}
	}

	var encoder zapcore.Encoder
	switch os.Getenv("LOG_ENCODING") {
	case "console":
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	default:
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(zapcore.Lock(os.Stdout)), level)
	return zap.New(core, zap.AddCaller()), nil
}
