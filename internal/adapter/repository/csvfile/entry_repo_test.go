package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/parkpay/internal/domain"
)

func writeEntryLog(t *testing.T, rows ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "plates_log.csv")
	content := "Plate Number,Payment Status,Timestamp\n" + strings.Join(rows, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestEntryRepository_FindOpen(t *testing.T) {
	path := writeEntryLog(t,
		"RAA001A,1,2024-01-01T08:00:00",
		"ABC123,0,2024-01-01T10:00:00",
		"ABC123,0,2024-01-01T11:00:00",
	)
	repo := NewEntryRepository(path)

	entry, err := repo.FindOpen(context.Background(), "ABC123")
	require.NoError(t, err)
	require.NotNil(t, entry)

	// First unpaid row in storage order wins.
	assert.Equal(t, "ABC123", entry.Plate)
	assert.Equal(t, domain.StatusUnpaid, entry.Status)
	assert.Equal(t, "2024-01-01T10:00:00", domain.FormatEntryTime(entry.Timestamp))
}

func TestEntryRepository_FindOpen_IgnoresPaid(t *testing.T) {
	path := writeEntryLog(t, "RAA001A,1,2024-01-01T08:00:00")
	repo := NewEntryRepository(path)

	entry, err := repo.FindOpen(context.Background(), "RAA001A")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestEntryRepository_FindOpen_AbsentStore(t *testing.T) {
	repo := NewEntryRepository(filepath.Join(t.TempDir(), "missing.csv"))

	entry, err := repo.FindOpen(context.Background(), "ABC123")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestEntryRepository_FindOpen_EmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plates_log.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	repo := NewEntryRepository(path)

	entry, err := repo.FindOpen(context.Background(), "ABC123")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestEntryRepository_MarkPaid(t *testing.T) {
	path := writeEntryLog(t,
		"RAA001A,1,2024-01-01T08:00:00",
		"ABC123,0,2024-01-01T10:00:00.500000",
		"XYZ789,0,2024-01-01T11:00:00",
	)
	repo := NewEntryRepository(path)

	require.NoError(t, repo.MarkPaid(context.Background(), "ABC123"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := "Plate Number,Payment Status,Timestamp\n" +
		"RAA001A,1,2024-01-01T08:00:00\n" +
		"ABC123,1,2024-01-01T10:00:00.500000\n" +
		"XYZ789,0,2024-01-01T11:00:00\n"
	assert.Equal(t, want, string(data))

	// The rewrite leaves no temp files behind.
	matches, err := filepath.Glob(filepath.Join(filepath.Dir(path), "*.tmp-*"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestEntryRepository_MarkPaid_FirstUnpaidOnly(t *testing.T) {
	path := writeEntryLog(t,
		"ABC123,0,2024-01-01T10:00:00",
		"ABC123,0,2024-01-01T11:00:00",
	)
	repo := NewEntryRepository(path)

	require.NoError(t, repo.MarkPaid(context.Background(), "ABC123"))

	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.StatusPaid, entries[0].Status)
	assert.Equal(t, domain.StatusUnpaid, entries[1].Status)
}

func TestEntryRepository_MarkPaid_NoMatch(t *testing.T) {
	path := writeEntryLog(t, "RAA001A,1,2024-01-01T08:00:00")
	repo := NewEntryRepository(path)

	err := repo.MarkPaid(context.Background(), "GHOST")
	assert.ErrorIs(t, err, domain.ErrNoOpenEntry)
}

func TestEntryRepository_List(t *testing.T) {
	path := writeEntryLog(t,
		"RAA001A,1,2024-01-01T08:00:00",
		"ABC123,0,2024-01-01T10:00:00",
	)
	repo := NewEntryRepository(path)

	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "RAA001A", entries[0].Plate)
	assert.Equal(t, "ABC123", entries[1].Plate)
}

func TestEntryRepository_ReadFailure(t *testing.T) {
	path := writeEntryLog(t, "ABC123,0")

	_, err := NewEntryRepository(path).FindOpen(context.Background(), "ABC123")
	assert.ErrorIs(t, err, domain.ErrStorage)
}
