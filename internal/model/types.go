// Package model defines shared data structures.
package model

// Config defines test settings.
type Config struct {
	Language     string
	Words        int
	LanguagesDir string
	Width        int
}

// Language is a named word list from the catalog.
type Language struct {
	Name  string
	Words []string
}

// LiveStats captures derived metrics for a session at a point in time.
// Elapsed is supplied by the caller; nothing here reads a clock.
type LiveStats struct {
	ElapsedSeconds float64
	TypedCount     int
	CorrectCount   int
	ErrorCount     int
	Accuracy       float64
	WPM            float64
}
