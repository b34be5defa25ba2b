// Package csvfile implements the ledger repositories over the flat CSV
// stores shared with the gate-side entry logger. Reads tolerate an absent
// store; mutations follow a write-temp-then-rename discipline so a crash
// never leaves a half-written store visible.
package csvfile

import (
	"fmt"

	"github.com/iho/parkpay/internal/domain"
)

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrStorage, op, err)
}
