package log

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	level  = zap.NewAtomicLevelAt(zap.InfoLevel)
	logger = newLogger()
)

func newLogger() *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

// Init sets the minimum level ("debug", "info", "warn", "error").
// Unknown values keep the current level.
func Init(lvl string) {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(lvl)))); err != nil {
		logger.Warnf("unknown log level %q, keeping %s", lvl, level.Level())
		return
	}
	level.SetLevel(l)
}

func Sync() {
	_ = logger.Sync()
}

func Info(v ...any) {
	logger.Infoln(v...)
}
func Infof(format string, v ...any) {
	logger.Infof(format, v...)
}

func Error(v ...any) {
	logger.Errorln(v...)
}

func Errorf(format string, v ...any) {
	logger.Errorf(format, v...)
}

func Warn(v ...any) {
	logger.Warnln(v...)
}

func Warnf(format string, v ...any) {
	logger.Warnf(format, v...)
}

func Debug(v ...any) {
	logger.Debugln(v...)
}
func Debugf(format string, v ...any) {
	logger.Debugf(format, v...)
}

func Fatal(v ...any) {
	logger.Fatalln(v...)
}
