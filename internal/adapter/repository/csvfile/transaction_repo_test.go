package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/parkpay/internal/domain"
)

func sampleTransaction() *domain.Transaction {
	return &domain.Transaction{
		Plate:         "ABC123",
		EntryTime:     time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local),
		ExitTime:      time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local),
		DurationHours: decimal.NewFromInt(2),
		Amount:        400,
		Status:        domain.StatusPaid,
	}
}

func TestTransactionRepository_Append_CreatesStore(t *testing.T) {
	// The parent directory does not exist yet either.
	path := filepath.Join(t.TempDir(), "data", "transactions.csv")
	repo := NewTransactionRepository(path)

	require.NoError(t, repo.Append(context.Background(), sampleTransaction()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "plate_number,entry_time,exit_time,duration_hr,amount,payment_status", lines[0])
	assert.Equal(t, "ABC123,2024-01-01T10:00:00,2024-01-01T12:00:00,2.00,400,1", lines[1])
}

func TestTransactionRepository_Append_NoDuplicateHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	repo := NewTransactionRepository(path)

	require.NoError(t, repo.Append(context.Background(), sampleTransaction()))
	require.NoError(t, repo.Append(context.Background(), sampleTransaction()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, lines[1], lines[2])
}

func TestTransactionRepository_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	repo := NewTransactionRepository(path)

	want := &domain.Transaction{
		Plate:         "XYZ789",
		EntryTime:     time.Date(2024, 3, 15, 9, 30, 0, 0, time.Local),
		ExitTime:      time.Date(2024, 3, 15, 11, 0, 0, 0, time.Local),
		DurationHours: decimal.RequireFromString("1.5"),
		Amount:        300,
		Status:        domain.StatusPaid,
	}
	require.NoError(t, repo.Append(context.Background(), want))

	txs, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, txs, 1)

	got := txs[0]
	assert.Equal(t, want.Plate, got.Plate)
	assert.True(t, got.EntryTime.Equal(want.EntryTime), "entry time: got %s", got.EntryTime)
	assert.True(t, got.ExitTime.Equal(want.ExitTime), "exit time: got %s", got.ExitTime)
	assert.True(t, got.DurationHours.Equal(want.DurationHours), "duration: got %s", got.DurationHours)
	assert.Equal(t, want.Amount, got.Amount)
	assert.Equal(t, want.Status, got.Status)
}

func TestTransactionRepository_List_AbsentStore(t *testing.T) {
	repo := NewTransactionRepository(filepath.Join(t.TempDir(), "missing.csv"))

	txs, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestTransactionRepository_List_BadRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	content := "plate_number,entry_time,exit_time,duration_hr,amount,payment_status\n" +
		"ABC123,2024-01-01T10:00:00,2024-01-01T12:00:00,2.00,not-a-number,1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := NewTransactionRepository(path).List(context.Background())
	assert.ErrorIs(t, err, domain.ErrStorage)
}
