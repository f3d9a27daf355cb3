package main

// --- STATE MANAGEMENT ---

// boardState represents the lifecycle of the board's config file.
type boardState int

const (
	boardLoading boardState = iota
	boardWatching
	boardReloading
	boardError
)

func (s boardState) String() string {
	return [...]string{
		"Loading...", "👀 Watching", "🔄 Reloading...", "🔥 Error",
	}[s]
}

// viewMode selects what the list shows.
type viewMode int

const (
	modeBoard viewMode = iota
	modeGallery
)
