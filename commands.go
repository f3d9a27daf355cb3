package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// --- BUBBLE TEA MESSAGES ---
// These messages are the results of commands.

type configLoadedMsg struct {
	config BoardConfig
	err    error
}

type configChangedMsg struct{}

type watcherErrMsg struct {
	err error
}

type frameMsg struct{}

type copiedToClipboardMsg struct {
	err error
}

type clearCopiedMsg struct{}

type cleanupCompleteMsg struct{}

const frameInterval = 125 * time.Millisecond

// --- CONFIG & CLIPBOARD COMMANDS ---

func loadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := loadBoardConfig(path)
		if err != nil {
			logDebug(fmt.Sprintf("loading %s failed: %v", path, err))
		}
		return configLoadedMsg{config: cfg, err: err}
	}
}

// watchConfigCmd waits for the next change to path. The parent directory is
// watched so that editors replacing the file by rename are still noticed.
func watchConfigCmd(watcher *fsnotify.Watcher, path string) tea.Cmd {
	target := filepath.Clean(path)
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
					logDebug(fmt.Sprintf("config event: %s", event))
					return configChangedMsg{}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				return watcherErrMsg{err: err}
			}
		}
	}
}

func newConfigWatcher(path string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(filepath.Clean(path))); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}
	return watcher, nil
}

func frameTickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func copyToClipboardCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedToClipboardMsg{err: clipboard.WriteAll(text)}
	}
}

func clearCopiedCmd() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

func cleanupCmd(watcher *fsnotify.Watcher) tea.Cmd {
	return func() tea.Msg {
		if watcher != nil {
			if err := watcher.Close(); err != nil {
				logDebug(fmt.Sprintf("closing watcher: %v", err))
			}
		}
		return cleanupCompleteMsg{}
	}
}
