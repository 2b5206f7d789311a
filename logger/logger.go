package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the shared application logger.
var Log = logrus.New()

func init() {
	Init()
}

// Init configures the shared logger from the environment.
// LOG_LEVEL selects the level (default "info"), LOG_FORMAT=json switches
// to the JSON formatter for log collection.
func Init() {
	levelName, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		levelName = "info"
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	Log.SetOutput(os.Stderr)
}
