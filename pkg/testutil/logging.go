package testutil

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LogLevelEnvName overrides the trace level tests log at.
const LogLevelEnvName = "LOG_LEVEL"

func init() {
	configureTestLogger(os.Args, os.Getenv(LogLevelEnvName))
}

// configureTestLogger discards log output unless the test binary runs
// verbose. LOG_LEVEL, when it parses, replaces the default trace level.
func configureTestLogger(args []string, level string) {
	var isVerbose bool
	for _, arg := range args {
		if arg == "-test.v=true" || arg == "-test.v" {
			isVerbose = true
		}
	}

	logrus.SetLevel(logrus.TraceLevel)
	if parsed, err := logrus.ParseLevel(level); err == nil {
		logrus.SetLevel(parsed)
	}

	if !isVerbose {
		logrus.StandardLogger().Out = io.Discard
	}
}

// DisableLogging discards log output until the returned reset is called.
func DisableLogging() (reset func()) {
	originalLogOutput := logrus.StandardLogger().Out
	logrus.StandardLogger().Out = io.Discard
	return func() {
		logrus.StandardLogger().Out = originalLogOutput
	}
}
