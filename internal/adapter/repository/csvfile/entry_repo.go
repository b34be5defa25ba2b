package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iho/parkpay/internal/domain"
)

var entryHeader = []string{"Plate Number", "Payment Status", "Timestamp"}

const (
	colPlate     = 0
	colStatus    = 1
	colTimestamp = 2
)

// EntryRepository implements usecase.EntryRepository over the entry log.
// The log is owned jointly with the entry logger, so rewrites preserve every
// untouched row byte for byte.
type EntryRepository struct {
	path string
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(path string) *EntryRepository {
	return &EntryRepository{path: path}
}

// FindOpen returns the first unpaid entry for plate in storage order, or nil
// when there is none. An absent store is treated as empty.
func (r *EntryRepository) FindOpen(ctx context.Context, plate string) (*domain.Entry, error) {
	records, err := r.readRecords()
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		if rec[colPlate] == plate && rec[colStatus] == string(domain.StatusUnpaid) {
			return recordToEntry(rec)
		}
	}

	return nil, nil
}

// MarkPaid transitions the first unpaid entry for plate to paid and replaces
// the store atomically. Only the row the fee was computed from changes; any
// duplicate unpaid rows stay untouched.
func (r *EntryRepository) MarkPaid(ctx context.Context, plate string) error {
	records, err := r.readRecords()
	if err != nil {
		return err
	}

	found := false
	for _, rec := range records {
		if !found && rec[colPlate] == plate && rec[colStatus] == string(domain.StatusUnpaid) {
			rec[colStatus] = string(domain.StatusPaid)
			found = true
		}
	}

	if !found {
		return domain.ErrNoOpenEntry
	}

	return r.replace(records)
}

// List returns every entry in storage order.
func (r *EntryRepository) List(ctx context.Context) ([]*domain.Entry, error) {
	records, err := r.readRecords()
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.Entry, 0, len(records))
	for _, rec := range records {
		entry, err := recordToEntry(rec)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// readRecords returns the data rows (header stripped). nil means the store
// is absent or empty.
func (r *EntryRepository) readRecords() ([][]string, error) {
	f, err := os.Open(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("open entry log", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, storageErr("read entry log", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	return records[1:], nil
}

func (r *EntryRepository) replace(records [][]string) error {
	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return storageErr("create temp entry log", err)
	}

	w := csv.NewWriter(tmp)
	_ = w.Write(entryHeader)
	_ = w.WriteAll(records)
	w.Flush()

	err = w.Error()
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return storageErr("write entry log", err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return storageErr("replace entry log", err)
	}

	return nil
}

func recordToEntry(rec []string) (*domain.Entry, error) {
	if len(rec) < 3 {
		return nil, storageErr("decode entry row", fmt.Errorf("expected 3 columns, got %d", len(rec)))
	}

	ts, err := domain.ParseEntryTime(rec[colTimestamp])
	if err != nil {
		return nil, storageErr("decode entry timestamp", err)
	}

	return &domain.Entry{
		Plate:     rec[colPlate],
		Status:    domain.PaymentStatus(rec[colStatus]),
		Timestamp: ts,
	}, nil
}
