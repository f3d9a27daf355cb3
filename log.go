package main

import (
	"fmt"
	"log"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	debugOnce   sync.Once
	debugFile   *os.File
	debugLogger *log.Logger
)

// initDebugLogger opens a file-backed logger shared with Bubble Tea. The
// board owns the terminal, so debug output never goes to stderr.
func initDebugLogger(path string) error {
	var initErr error
	debugOnce.Do(func() {
		if path == "" {
			path = "debug.log"
		}
		f, err := tea.LogToFile(path, "statusicon")
		if err != nil {
			initErr = fmt.Errorf("opening debug log: %w", err)
			return
		}
		debugFile = f
		debugLogger = log.New(f, "", log.LstdFlags)
	})
	return initErr
}

func closeDebugLogger() {
	if debugFile != nil {
		_ = debugFile.Close()
	}
}

func logDebug(msg string) {
	if debugLogger == nil {
		return
	}
	debugLogger.Println(msg)
}
