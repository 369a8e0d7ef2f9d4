package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"gopkg.in/natefinch/lumberjack.v2"
)

type SetupParams struct {
	LogFileName string
	LogToStderr bool
	LogLevel    string
}

// Setup configures the process-wide logrus logger. Without a file name,
// logs go to stderr only, keeping stdout clean for command output. With a
// file name, logs go to a rotating file, plus stderr if requested.
func Setup(params SetupParams) {
	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.LogFileName == "" {
		logrus.SetOutput(os.Stderr)
		return
	}

	if !strings.HasSuffix(params.LogFileName, ".log") {
		params.LogFileName += ".log"
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:  params.LogFileName,
		MaxSize:   10,    // megabytes
		LocalTime: false, // false -> use UTC
		Compress:  true,
	}

	if params.LogToStderr {
		logrus.SetOutput(newCombinedWriter(os.Stderr, lumberJackLogger))
		return
	}

	logrus.SetOutput(lumberJackLogger)
}

func GetLevel(logLevel string) logrus.Level {
	switch strings.ToLower(logLevel) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	default:
		return logrus.WarnLevel
	}
}

// combinedWriter fans every write out to all writers, combining their
// errors.
type combinedWriter struct {
	writers []io.Writer
}

func newCombinedWriter(writers ...io.Writer) combinedWriter {
	return combinedWriter{writers: writers}
}

// Write reports the fewest bytes any writer accepted, so a short write on
// either output surfaces to the caller.
func (cw combinedWriter) Write(p []byte) (n int, err error) {
	n = len(p)
	for _, w := range cw.writers {
		written, werr := w.Write(p)
		if werr != nil {
			err = multierr.Append(err, werr)
		}
		if written < n {
			n = written
		}
	}
	return n, err
}
