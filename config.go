package bitstream

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Loads an optional .env file before reading the toggles below.
	// Absence of a .env file is not an error.
	_ = godotenv.Load()
	debugEnabled = os.Getenv("BITSTREAM_LOG_DEBUG") == "YES"
	logger.SetLevel(logLevelFromEnv())
}

// debugEnabled gates the cursor/state-transition trace logging in log.go.
// It is read once at package init.
var debugEnabled bool

func logLevelFromEnv() logrus.Level {
	switch os.Getenv("BITSTREAM_LOG_LEVEL") {
	case "debug":
		return logrus.DebugLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
