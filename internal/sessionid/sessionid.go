// Package sessionid generates sortable identifiers for game sessions: a
// 48-bit millisecond timestamp followed by 80 random bits, encoded as 26
// characters of Crockford base32.
package sessionid

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/coder/quartz"
)

const (
	alphabet = "0123456789abcdefghjkmnpqrstvwxyz"
	// Length of every id.
	Length = 26
)

// New returns an id stamped with clock's current time and random bits from r.
func New(clock quartz.Clock, r io.Reader) (string, error) {
	var raw [16]byte

	ms := uint64(clock.Now().UnixMilli())
	raw[0] = byte(ms >> 40)
	raw[1] = byte(ms >> 32)
	raw[2] = byte(ms >> 24)
	raw[3] = byte(ms >> 16)
	raw[4] = byte(ms >> 8)
	raw[5] = byte(ms)

	if _, err := io.ReadFull(r, raw[6:]); err != nil {
		return "", fmt.Errorf("read session id entropy: %w", err)
	}
	return encode(raw), nil
}

// encode writes the 128-bit value as 130 bits (two leading zero bits), five
// bits per character, most significant first.
func encode(raw [16]byte) string {
	hi := binary.BigEndian.Uint64(raw[:8])
	lo := binary.BigEndian.Uint64(raw[8:])

	var out [Length]byte
	for i := Length - 1; i >= 0; i-- {
		out[i] = alphabet[lo&0x1f]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(out[:])
}

// Validate checks that id could have been produced by New.
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("session id must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("session id first character must be 0-7, got %c", id[0])
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("invalid character %c at position %d", c, i)
		}
	}
	return nil
}
