package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Wire protocol markers for one inbound event line:
//
//	PLATE:<plate>|BALANCE:<integer>
const (
	plateMarker    = "PLATE:"
	balanceMarker  = "BALANCE:"
	fieldDelimiter = "|"
)

// AckToken is the literal the device must return to confirm a deduction.
const AckToken = "DONE"

// PaymentEvent is an ephemeral inbound event reported by the device:
// a vehicle at the gate with a prepaid balance. Events are never persisted.
type PaymentEvent struct {
	Plate   string
	Balance int64
}

// ParseEvent parses a device line into a PaymentEvent. A line is a candidate
// event only when it carries both markers; anything else is malformed and
// the caller drops it.
func ParseEvent(line string) (PaymentEvent, error) {
	if !strings.Contains(line, plateMarker) || !strings.Contains(line, balanceMarker) {
		return PaymentEvent{}, fmt.Errorf("%w: %q", ErrMalformedEvent, line)
	}

	_, rest, _ := strings.Cut(line, plateMarker)
	plate, _, _ := strings.Cut(rest, fieldDelimiter)
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return PaymentEvent{}, fmt.Errorf("%w: empty plate in %q", ErrMalformedEvent, line)
	}

	_, rest, _ = strings.Cut(line, balanceMarker)
	raw, _, _ := strings.Cut(rest, fieldDelimiter)

	balance, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return PaymentEvent{}, fmt.Errorf("%w: bad balance in %q", ErrMalformedEvent, line)
	}

	return PaymentEvent{Plate: plate, Balance: balance}, nil
}

// PaymentRequest renders the outbound deduction command for an amount due.
func PaymentRequest(amount int64) string {
	return fmt.Sprintf("PAY:%d", amount)
}
