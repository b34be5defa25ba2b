package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestComputeFee(t *testing.T) {
	entry := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)
	rate := decimal.NewFromInt(200)

	tests := []struct {
		name         string
		exit         time.Time
		wantDuration string
		wantAmount   int64
		expectError  bool
	}{
		{
			name:         "one hour",
			exit:         entry.Add(time.Hour),
			wantDuration: "1",
			wantAmount:   200,
		},
		{
			name:         "one and a half hours",
			exit:         entry.Add(90 * time.Minute),
			wantDuration: "1.5",
			wantAmount:   300,
		},
		{
			name:         "two hours",
			exit:         entry.Add(2 * time.Hour),
			wantDuration: "2",
			wantAmount:   400,
		},
		{
			name:         "duration rounds to two decimals",
			exit:         entry.Add(10 * time.Minute),
			wantDuration: "0.17",
			wantAmount:   34,
		},
		{
			name:         "zero duration",
			exit:         entry,
			wantDuration: "0",
			wantAmount:   0,
		},
		{
			name:        "exit before entry",
			exit:        entry.Add(-time.Minute),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee, err := ComputeFee(entry, tt.exit, rate)

			if tt.expectError {
				if err != ErrInvalidInterval {
					t.Fatalf("expected ErrInvalidInterval, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			want, _ := decimal.NewFromString(tt.wantDuration)
			if !fee.DurationHours.Equal(want) {
				t.Errorf("expected duration %s, got %s", want, fee.DurationHours)
			}

			if fee.Amount != tt.wantAmount {
				t.Errorf("expected amount %d, got %d", tt.wantAmount, fee.Amount)
			}
		})
	}
}

func TestComputeFee_Deterministic(t *testing.T) {
	entry := time.Date(2024, 1, 1, 8, 30, 0, 0, time.Local)
	exit := entry.Add(3*time.Hour + 17*time.Minute)
	rate := decimal.NewFromInt(200)

	first, err := ComputeFee(entry, exit, rate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := ComputeFee(entry, exit, rate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !first.DurationHours.Equal(second.DurationHours) || first.Amount != second.Amount {
		t.Errorf("expected identical fees, got %+v and %+v", first, second)
	}
}

func TestComputeFee_MonotonicInDuration(t *testing.T) {
	entry := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)
	rate := decimal.NewFromInt(200)

	var prev int64 = -1
	for _, d := range []time.Duration{
		0,
		10 * time.Minute,
		time.Hour,
		90 * time.Minute,
		4 * time.Hour,
		26 * time.Hour,
	} {
		fee, err := ComputeFee(entry, entry.Add(d), rate)
		if err != nil {
			t.Fatalf("unexpected error at %s: %v", d, err)
		}
		if fee.Amount < prev {
			t.Fatalf("amount decreased at %s: %d < %d", d, fee.Amount, prev)
		}
		prev = fee.Amount
	}
}
