// Package stats contains pure scoring calculations for a typing session.
package stats

import (
	"time"

	"github.com/termitype/termitype/internal/model"
)

// Category classifies a target character for display.
type Category int

// Character categories, derived per render from target and typed input.
const (
	Correct Category = iota
	Incorrect
	Cursor
	Pending
)

// Classify returns the category of the target character at index i.
func Classify(target, typed []rune, i int) Category {
	switch {
	case i < len(typed) && i < len(target) && typed[i] == target[i]:
		return Correct
	case i < len(typed):
		return Incorrect
	case i == len(typed):
		return Cursor
	default:
		return Pending
	}
}

// Metrics computes live statistics from the target text, the typed input,
// and the elapsed duration. It is a pure function of its arguments: the
// caller owns the clock, so repeated calls with identical inputs yield
// identical results.
func Metrics(target, typed []rune, elapsed time.Duration) model.LiveStats {
	s := model.LiveStats{
		ElapsedSeconds: elapsed.Seconds(),
		TypedCount:     len(typed),
	}
	limit := len(typed)
	if len(target) < limit {
		limit = len(target)
	}
	for i := 0; i < limit; i++ {
		if typed[i] == target[i] {
			s.CorrectCount++
		} else {
			s.ErrorCount++
		}
	}
	if s.TypedCount > 0 {
		s.Accuracy = float64(s.CorrectCount) / float64(s.TypedCount) * 100
	}
	if s.ElapsedSeconds > 0 {
		// WPM counts only correct characters, five per word.
		s.WPM = (float64(s.CorrectCount) / 5.0) / (s.ElapsedSeconds / 60.0)
	}
	return s
}
