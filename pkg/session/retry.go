package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// sqlite primary result codes, extended codes keep them in the low byte
const (
	sqliteBusy   = 5
	sqliteLocked = 6
)

var errPermanent = errors.New("permanent store error")

// permanentError stops the retry loop, it unwraps to the original error
type permanentError struct{ err error }

func (e permanentError) Error() string        { return e.err.Error() }
func (e permanentError) Unwrap() error        { return e.err }
func (e permanentError) Is(target error) bool { return target == errPermanent }

// retry runs fn with backoff while SQLite reports lock errors, any other error stops it
func (s *Store) retry(ctx context.Context, op string, fn func() error) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		err := fn()
		if err == nil || isLockError(err) {
			return err
		}
		return permanentError{err: err}
	}, errPermanent)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// isLockError reports SQLITE_BUSY and SQLITE_LOCKED, by driver code when available
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	var coded interface{ Code() int }
	if errors.As(err, &coded) {
		code := coded.Code() & 0xff
		return code == sqliteBusy || code == sqliteLocked
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked")
}
