package bikeshareinsights

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// InitLogging configures the process-wide logger. Unknown levels fall back
// to info.
func InitLogging(level string) {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}
