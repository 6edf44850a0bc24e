package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"
)

const base36Chars = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID returns an opaque base-36 identifier built from the current time
// plus random tail, matching the widget's own id format. These ids are
// collision-improbable for site traffic volumes, not cryptographically
// unique, and must never be used for anything security-sensitive.
func NewID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)

	tail := make([]byte, 11)
	max := big.NewInt(int64(len(base36Chars)))
	for i := range tail {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failing is not worth surfacing for a cosmetic
			// id; fall back to a time-derived digit.
			tail[i] = base36Chars[time.Now().UnixNano()%36]
			continue
		}
		tail[i] = base36Chars[n.Int64()]
	}

	return ts + string(tail)
}

// NewMessageID mints a ULID for messages and analytics events. ULIDs sort
// lexically by creation time, which keeps the append-only message log in
// turn order under the store's created_at index.
func NewMessageID() string {
	return ulid.Make().String()
}
