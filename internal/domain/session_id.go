package domain

import (
	"crypto/rand"
	"strconv"
	"time"
)

// sessionIDPrefix namespaces capture session identifiers
const sessionIDPrefix = "rp"

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewSessionID produces an opaque identifier for one visitor's interaction
// with the capture form: a fixed prefix, the current time in base36, and a
// random base36 suffix. It is generated once per form instantiation and
// attached to every write for that visit.
func NewSessionID() string {
	now := strconv.FormatInt(time.Now().UnixMilli(), 36)

	suffix := make([]byte, 0, 6)
	var buf [16]byte
	for len(suffix) < cap(suffix) {
		// crypto/rand.Read aborts the program rather than return an error
		_, _ = rand.Read(buf[:])
		for _, b := range buf {
			// 252 is the largest multiple of 36 that fits in a byte;
			// values above it would skew the mapping
			if b >= 252 {
				continue
			}
			suffix = append(suffix, base36Alphabet[int(b)%len(base36Alphabet)])
			if len(suffix) == cap(suffix) {
				break
			}
		}
	}

	return sessionIDPrefix + "_" + now + "_" + string(suffix)
}
