package utils

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

// serviceTagHook prefixes every entry with the service name so mixed
// container logs stay greppable.
type serviceTagHook struct {
	service string
}

func (h *serviceTagHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *serviceTagHook) Fire(entry *logrus.Entry) error {
	entry.Message = "[" + h.service + "] " + entry.Message
	return nil
}

// InitLogger configures the shared Logger from LOG_LEVEL and LOG_FORMAT.
func InitLogger(service string) {
	initLogger(service, os.Stdout)
}

func initLogger(service string, out io.Writer) {
	Logger.SetOutput(out)

	SetLogLevel(os.Getenv("LOG_LEVEL"))

	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	Logger.ReplaceHooks(make(logrus.LevelHooks))
	if service != "" {
		Logger.AddHook(&serviceTagHook{service: service})
	}
}

// SetLogLevel applies a logrus level name, falling back to info.
func SetLogLevel(name string) {
	levelName := strings.ToLower(strings.TrimSpace(name))
	if levelName == "" {
		levelName = "info"
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		Logger.Warnf("Invalid LOG_LEVEL '%s', defaulting to INFO", levelName)
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)
}
