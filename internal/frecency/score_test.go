package frecency

import (
	"testing"
	"time"
)

func TestWeightBuckets(t *testing.T) {
	tests := []struct {
		ageDays float64
		want    int
	}{
		{0, 100},
		{1.0 / 24, 100}, // one hour
		{3.99, 100},
		{4.0, 70}, // upper bounds are exclusive
		{10, 70},
		{13.99, 70},
		{14.0, 50},
		{20, 50},
		{31.0, 30},
		{60, 30},
		{90.0, 10},
		{120, 10},
		{1000, 10},
	}

	for _, tt := range tests {
		if got := Weight(tt.ageDays); got != tt.want {
			t.Errorf("Weight(%v) = %d, want %d", tt.ageDays, got, tt.want)
		}
	}
}

func TestScoreFixtures(t *testing.T) {
	now := time.Now().Unix()
	age := func(d time.Duration) int64 { return now - int64(d.Seconds()) }

	tests := []struct {
		name  string
		count int
		last  int64
		want  float64
	}{
		{"5 launches 1h ago", 5, age(time.Hour), 500},
		{"3 launches 10d ago", 3, age(10 * 24 * time.Hour), 210},
		{"4 launches 20d ago", 4, age(20 * 24 * time.Hour), 200},
		{"2 launches 60d ago", 2, age(60 * 24 * time.Hour), 60},
		{"10 launches 120d ago", 10, age(120 * 24 * time.Hour), 100},
	}

	for _, tt := range tests {
		if got := Score(tt.count, tt.last, now); got != tt.want {
			t.Errorf("%s: Score = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// For a fixed launch count the score never increases with age.
func TestScoreMonotonicInAge(t *testing.T) {
	now := time.Now().Unix()

	prev := Score(7, now, now)
	for days := 1; days <= 365; days++ {
		last := now - int64(days)*secondsPerDay
		got := Score(7, last, now)
		if got > prev {
			t.Fatalf("score increased with age at %d days: %v > %v", days, got, prev)
		}
		prev = got
	}
}
