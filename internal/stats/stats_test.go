package stats

import (
	"math"
	"testing"
	"time"
)

func TestMetricsCatDog(t *testing.T) {
	target := []rune("cat dog")
	typed := []rune("cat dig")

	s := Metrics(target, typed, 10*time.Second)
	if s.CorrectCount != 6 {
		t.Fatalf("expected 6 correct, got %d", s.CorrectCount)
	}
	if s.ErrorCount != 1 {
		t.Fatalf("expected 1 error, got %d", s.ErrorCount)
	}
	if math.Abs(s.Accuracy-6.0/7.0*100) > 1e-9 {
		t.Fatalf("expected accuracy ~85.7, got %f", s.Accuracy)
	}
	// 6 correct chars in 10s: (6/5) / (10/60) = 7.2 WPM.
	if math.Abs(s.WPM-7.2) > 1e-9 {
		t.Fatalf("expected 7.2 WPM, got %f", s.WPM)
	}
}

func TestMetricsEmptyInput(t *testing.T) {
	s := Metrics([]rune("abc"), nil, 0)
	if s.TypedCount != 0 || s.CorrectCount != 0 || s.ErrorCount != 0 {
		t.Fatalf("expected zero counts, got %+v", s)
	}
	if s.Accuracy != 0 || s.WPM != 0 {
		t.Fatalf("expected zero accuracy and WPM, got %+v", s)
	}
}

func TestMetricsZeroElapsed(t *testing.T) {
	s := Metrics([]rune("ab"), []rune("ab"), 0)
	if s.WPM != 0 {
		t.Fatalf("expected zero WPM for zero elapsed, got %f", s.WPM)
	}
	if s.Accuracy != 100 {
		t.Fatalf("expected 100%% accuracy, got %f", s.Accuracy)
	}
}

func TestMetricsTypedBeyondTarget(t *testing.T) {
	target := []rune("ab")
	typed := []rune("abcd")
	s := Metrics(target, typed, time.Second)
	if s.CorrectCount > len(target) {
		t.Fatalf("correct count %d exceeds target length", s.CorrectCount)
	}
	if s.CorrectCount != 2 {
		t.Fatalf("expected 2 correct, got %d", s.CorrectCount)
	}
	// Overflow characters count toward typed but not correct.
	if math.Abs(s.Accuracy-50) > 1e-9 {
		t.Fatalf("expected 50%% accuracy, got %f", s.Accuracy)
	}
}

func TestMetricsBounds(t *testing.T) {
	cases := []struct {
		target, typed string
		elapsed       time.Duration
	}{
		{"", "", 0},
		{"abc", "xyz", time.Second},
		{"abc", "abc", time.Millisecond},
		{"a", "abcdef", time.Minute},
	}
	for _, tc := range cases {
		s := Metrics([]rune(tc.target), []rune(tc.typed), tc.elapsed)
		if s.Accuracy < 0 || s.Accuracy > 100 {
			t.Fatalf("accuracy out of range for %+v: %f", tc, s.Accuracy)
		}
		if s.WPM < 0 {
			t.Fatalf("negative WPM for %+v: %f", tc, s.WPM)
		}
		minLen := len(tc.target)
		if len(tc.typed) < minLen {
			minLen = len(tc.typed)
		}
		if s.CorrectCount > minLen {
			t.Fatalf("correct count exceeds min length for %+v", tc)
		}
	}
}

func TestMetricsIdempotent(t *testing.T) {
	target := []rune("hello world")
	typed := []rune("hellp wor")
	first := Metrics(target, typed, 3*time.Second)
	second := Metrics(target, typed, 3*time.Second)
	if first != second {
		t.Fatalf("metrics not idempotent: %+v vs %+v", first, second)
	}
}

func TestClassify(t *testing.T) {
	target := []rune("abc")
	typed := []rune("ax")

	if got := Classify(target, typed, 0); got != Correct {
		t.Fatalf("expected Correct at 0, got %v", got)
	}
	if got := Classify(target, typed, 1); got != Incorrect {
		t.Fatalf("expected Incorrect at 1, got %v", got)
	}
	if got := Classify(target, typed, 2); got != Cursor {
		t.Fatalf("expected Cursor at 2, got %v", got)
	}
	if got := Classify([]rune("abcd"), typed, 3); got != Pending {
		t.Fatalf("expected Pending at 3, got %v", got)
	}
}

func TestClassifyRecomputedAfterBackspace(t *testing.T) {
	target := []rune("ab")
	typed := []rune("ax")
	if got := Classify(target, typed, 1); got != Incorrect {
		t.Fatalf("expected Incorrect before backspace, got %v", got)
	}
	typed = typed[:1]
	if got := Classify(target, typed, 1); got != Cursor {
		t.Fatalf("expected Cursor after backspace, got %v", got)
	}
}
