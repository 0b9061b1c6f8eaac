// Logs

package bitstream

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var logMutex = sync.Mutex{}

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logLevelFromEnv())
	return l
}

func logDebugCursor(op string, pos int64, n uint) {
	if !debugEnabled {
		return
	}
	logMutex.Lock()
	defer logMutex.Unlock()
	logger.WithFields(logrus.Fields{
		"op":  op,
		"pos": pos,
		"n":   n,
	}).Debug("bitstream cursor advance")
}

func logStateChange(kind string, s State) {
	if !debugEnabled {
		return
	}
	logMutex.Lock()
	defer logMutex.Unlock()
	logger.WithFields(logrus.Fields{
		"stream": kind,
		"state":  s.String(),
	}).Debug("bitstream state change")
}
