// Package logger provides the leveled application log. Output goes to
// stdout and to a size-rotated file under the configured directory.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	mu       sync.Mutex
	minLevel = LevelInfo
	std      = log.New(os.Stdout, "", log.Ldate|log.Ltime)
	rotator  *lumberjack.Logger
)

// Init routes log output to stdout plus a rotating file in logDir.
// debug enables Debug-level output (used by the request dump middleware).
func Init(logDir string, debug bool) error {
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	rotator = &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "fornsaga.log"),
		MaxSize:    20, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
	std = log.New(io.MultiWriter(os.Stdout, rotator), "", log.Ldate|log.Ltime)
	if debug {
		minLevel = LevelDebug
	}

	// Route the default logger through the same writers so stray
	// log.Printf calls from dependencies end up in the file too.
	log.SetOutput(io.MultiWriter(os.Stdout, rotator))
	return nil
}

// Close flushes and closes the rotated file, if any.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if rotator != nil {
		rotator.Close()
		rotator = nil
	}
}

func output(level Level, tag, format string, v ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if level < minLevel {
		return
	}
	std.Printf(tag+" "+format, v...)
}

func Debug(format string, v ...interface{}) { output(LevelDebug, "DEBUG:", format, v...) }
func Info(format string, v ...interface{})  { output(LevelInfo, "INFO:", format, v...) }
func Warn(format string, v ...interface{})  { output(LevelWarn, "WARNING:", format, v...) }
func Error(format string, v ...interface{}) { output(LevelError, "ERROR:", format, v...) }
