// Package device frames the newline-terminated wire protocol over a serial
// port. The core never touches raw bytes; everything above this package
// speaks whole lines.
package device

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/iho/parkpay/internal/domain"
	"github.com/iho/parkpay/internal/infrastructure/serial"
)

// pollInterval bounds a single blocking read so the caller's deadline is
// honored even when the port delivers nothing.
const pollInterval = 100 * time.Millisecond

// Channel implements usecase.DeviceChannel. A partial line received before
// an idle timeout is retained and completed by a later read. Channel is not
// safe for concurrent use; the listener serializes all access.
type Channel struct {
	port    serial.Port
	pending []byte

	closeOnce sync.Once
	closeErr  error
}

// NewChannel creates a Channel over an open port.
func NewChannel(port serial.Port) *Channel {
	return &Channel{port: port}
}

// WriteLine sends one line, appending the newline terminator.
func (c *Channel) WriteLine(line string) error {
	if _, err := c.port.Write([]byte(line + "\n")); err != nil {
		return fmt.Errorf("write device line: %w", err)
	}
	return nil
}

// ReadLine returns the next complete line with surrounding whitespace
// trimmed. It returns domain.ErrReadIdle when no full line arrives before
// the timeout and domain.ErrChannelClosed when the link is gone.
func (c *Channel) ReadLine(timeout time.Duration) (string, error) {
	if i := bytes.IndexByte(c.pending, '\n'); i >= 0 {
		return c.takeLine(i), nil
	}

	deadline := time.Now().Add(timeout)
	buf := make([]byte, 256)

	for {
		poll := pollInterval
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return "", domain.ErrReadIdle
		}
		if remaining < poll {
			poll = remaining
		}

		if err := c.port.SetReadTimeout(poll); err != nil {
			return "", fmt.Errorf("set read timeout: %w", err)
		}

		n, err := c.port.Read(buf)
		if n > 0 {
			c.pending = append(c.pending, buf[:n]...)
			if i := bytes.IndexByte(c.pending, '\n'); i >= 0 {
				return c.takeLine(i), nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", domain.ErrChannelClosed
			}
			return "", fmt.Errorf("read device line: %w", err)
		}
	}
}

// Close releases the port. Safe to call more than once.
func (c *Channel) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.port.Close()
	})
	return c.closeErr
}

func (c *Channel) takeLine(i int) string {
	line := strings.TrimSpace(string(c.pending[:i]))
	c.pending = append([]byte(nil), c.pending[i+1:]...)
	return line
}
