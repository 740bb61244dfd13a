// Package id mints the identifiers that key journal rows.
package id

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// New returns a fresh ULID string. ULIDs embed a millisecond timestamp,
// so sorting rows by ID matches insertion order across both journal
// backends. The library's default entropy source is monotonic within a
// millisecond and safe for concurrent use.
func New() string {
	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), ulid.DefaultEntropy()).String()
}
