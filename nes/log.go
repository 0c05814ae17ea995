package nes

import (
	"fmt"
	"log"
	"os"
	"time"
)

// Logger receives one line per executed instruction. The zero value of the
// package discards everything; a real sink is attached with SetLogger.
type Logger interface {
	Log(msg string)
}

type nopLogger struct{}

func (l *nopLogger) Log(msg string) {}

// fileLogger writes trace lines to a timestamped file under ./logs.
type fileLogger struct {
	l *log.Logger
}

func (l *fileLogger) Log(msg string) { l.l.Print(msg) }

// NewFileLogger creates the CPU trace log file, one per run.
func NewFileLogger() (Logger, error) {
	now := time.Now()
	logFile := fmt.Sprintf("./logs/cpu%s.log", now.Format("20060102-150405"))

	if err := os.MkdirAll("./logs", 0775); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE, 0664)
	if err != nil {
		return nil, err
	}

	return &fileLogger{log.New(f, "", 0)}, nil
}
