package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/iho/parkpay/internal/domain"
)

var transactionHeader = []string{"plate_number", "entry_time", "exit_time", "duration_hr", "amount", "payment_status"}

// TransactionRepository implements usecase.TransactionRepository over the
// append-only transaction log.
type TransactionRepository struct {
	path string
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(path string) *TransactionRepository {
	return &TransactionRepository{path: path}
}

// Append writes one transaction row, creating the parent directory and the
// header when the store does not exist yet.
func (r *TransactionRepository) Append(ctx context.Context, tx *domain.Transaction) error {
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return storageErr("create transaction log directory", err)
		}
	}

	_, statErr := os.Stat(r.path)
	writeHeader := errors.Is(statErr, os.ErrNotExist)

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return storageErr("open transaction log", err)
	}

	w := csv.NewWriter(f)
	if writeHeader {
		_ = w.Write(transactionHeader)
	}
	_ = w.Write([]string{
		tx.Plate,
		domain.FormatEntryTime(tx.EntryTime),
		domain.FormatEntryTime(tx.ExitTime),
		tx.DurationHours.StringFixed(2),
		strconv.FormatInt(tx.Amount, 10),
		string(tx.Status),
	})
	w.Flush()

	err = w.Error()
	if err == nil {
		err = f.Sync()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return storageErr("append transaction", err)
	}

	return nil
}

// List returns every recorded transaction in append order. An absent store
// is treated as empty.
func (r *TransactionRepository) List(ctx context.Context) ([]*domain.Transaction, error) {
	f, err := os.Open(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("open transaction log", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, storageErr("read transaction log", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	txs := make([]*domain.Transaction, 0, len(records)-1)
	for _, rec := range records[1:] {
		tx, err := recordToTransaction(rec)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}

	return txs, nil
}

func recordToTransaction(rec []string) (*domain.Transaction, error) {
	if len(rec) < 6 {
		return nil, storageErr("decode transaction row", fmt.Errorf("expected 6 columns, got %d", len(rec)))
	}

	entryTime, err := domain.ParseEntryTime(rec[1])
	if err != nil {
		return nil, storageErr("decode transaction entry time", err)
	}

	exitTime, err := domain.ParseEntryTime(rec[2])
	if err != nil {
		return nil, storageErr("decode transaction exit time", err)
	}

	duration, err := decimal.NewFromString(rec[3])
	if err != nil {
		return nil, storageErr("decode transaction duration", err)
	}

	amount, err := strconv.ParseInt(rec[4], 10, 64)
	if err != nil {
		return nil, storageErr("decode transaction amount", err)
	}

	return &domain.Transaction{
		Plate:         rec[0],
		EntryTime:     entryTime,
		ExitTime:      exitTime,
		DurationHours: duration,
		Amount:        amount,
		Status:        domain.PaymentStatus(rec[5]),
	}, nil
}
