package log

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

func NewLevel(l string) (Level, error) {
	switch l {
	case LevelDebug.String():
		return LevelDebug, nil
	case LevelInfo.String():
		return LevelInfo, nil
	case LevelWarn.String():
		return LevelWarn, nil
	case LevelError.String():
		return LevelError, nil
	case LevelFatal.String():
		return LevelFatal, nil
	default:
		return LevelDebug, errors.New("invalid log level")
	}
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	default:
		panic("invalid level")
	}
}

var currLevel = LevelInfo

var rootLogger = &logrusLogger{
	backend: logrus.New(),
}

type Logger interface {
	Debug(string, ...interface{})
	Info(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Fatal(string, ...interface{})
	Sub(...interface{}) Logger
}

func SetLevel(level Level) {
	currLevel = level

	var logrusLevel logrus.Level
	switch level {
	case LevelDebug:
		logrusLevel = logrus.DebugLevel
	case LevelInfo:
		logrusLevel = logrus.InfoLevel
	case LevelWarn:
		logrusLevel = logrus.WarnLevel
	case LevelError:
		logrusLevel = logrus.ErrorLevel
	case LevelFatal:
		logrusLevel = logrus.PanicLevel
	}
	rootLogger.backend.(*logrus.Logger).SetLevel(logrusLevel)
}

func WithModule(name string) Logger {
	return rootLogger.Sub("module", name)
}

func init() {
	// log everything by default under go test
	if strings.HasSuffix(os.Args[0], ".test") {
		SetLevel(LevelDebug)
	}
}
