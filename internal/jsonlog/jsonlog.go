package jsonlog

import (
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level 日志级别
type Level int8

const (
	LevelInfo Level = iota
	LevelError
	LevelFatal
	LevelOff
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return ""
	}
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelError:
		return zapcore.ErrorLevel
	case LevelFatal:
		return zapcore.FatalLevel
	default:
		return zapcore.FatalLevel + 1
	}
}

// Logger 输出 JSON 格式的日志，低于 minLevel 的条目会被丢弃
type Logger struct {
	zl       *zap.Logger
	minLevel Level
}

// New 返回一个写入 out 的 Logger
func New(out io.Writer, minLevel Level) *Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.MessageKey = "message"
	encCfg.LevelKey = "level"
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	encCfg.CallerKey = zapcore.OmitKey
	encCfg.StacktraceKey = zapcore.OmitKey

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(out)),
		minLevel.zapLevel(),
	)

	return &Logger{
		zl:       zap.New(core),
		minLevel: minLevel,
	}
}

// PrintInfo 写入 INFO 级别的日志
func (l *Logger) PrintInfo(message string, properties map[string]string) {
	l.zl.Info(message, fields(properties, false)...)
}

// PrintError 写入 ERROR 级别的日志，附带调用栈
func (l *Logger) PrintError(err error, properties map[string]string) {
	l.zl.Error(err.Error(), fields(properties, true)...)
}

// PrintFatal 写入 FATAL 级别的日志并退出进程
func (l *Logger) PrintFatal(err error, properties map[string]string) {
	l.zl.Fatal(err.Error(), fields(properties, true)...)
}

// Sync 刷新缓冲区
func (l *Logger) Sync() error {
	return l.zl.Sync()
}

// Write 让 Logger 满足 io.Writer，用作 http.Server 的 ErrorLog
func (l *Logger) Write(message []byte) (n int, err error) {
	l.PrintError(errors.New(strings.TrimSpace(string(message))), nil)
	return len(message), nil
}

func fields(properties map[string]string, trace bool) []zap.Field {
	fs := make([]zap.Field, 0, 2)
	if len(properties) > 0 {
		fs = append(fs, zap.Any("properties", properties))
	}
	if trace {
		fs = append(fs, zap.Stack("trace"))
	}
	return fs
}
