package logging

import (
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for the log file.
const (
	logFileMaxSizeMB  = 10
	logFileMaxBackups = 3
	logFileMaxAgeDays = 28
)

// NewFileWriter returns a size-rotated writer appending to path.
// The file is created on first write.
func NewFileWriter(path string) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    logFileMaxSizeMB,
		MaxBackups: logFileMaxBackups,
		MaxAge:     logFileMaxAgeDays,
	}
}

// New builds the CLI logger: stderr, plus a rotated file when logFile is set.
// The returned closer flushes and closes the file and is never nil.
func New(verbose bool, logFile string) (*ConsoleLogger, io.Closer) {
	if logFile == "" {
		return NewConsoleLogger(verbose), nopCloser{}
	}
	file := NewFileWriter(logFile)
	return NewConsoleLoggerTo(io.MultiWriter(os.Stderr, file), verbose), file
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
