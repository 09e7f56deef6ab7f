// Package fairness implements the commit-reveal protocol that makes every
// random value the computer produces verifiable after the fact.
//
// A party commits by publishing HMAC-SHA256(key, decimal(value)) while keeping
// value and key secret. Once the counterpart has made its own move the value
// and key are disclosed and anyone can recompute the HMAC:
//
//	printf %s 3 | openssl dgst -sha256 -hmac <KEY>
//
// The key is the lowercase hex text of 32 random bytes and is used as the HMAC
// key verbatim (as text, not decoded).
package fairness

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// KeyBytes is the amount of entropy in every secret key.
const KeyBytes = 32

// ErrNegativeRange is returned by Commit for a range below zero.
var ErrNegativeRange = errors.New("negative range")

// Commitment binds a secret value to a published MAC. It is immutable; the
// value is only reachable through Disclose.
type Commitment struct {
	rangeMax int
	value    int
	key      string
	mac      string
}

// Disclosure is what a committed party reveals after the counterpart moved.
type Disclosure struct {
	Value int
	Key   string
}

// Commit draws a value uniformly from [0, rangeMax] and an independent key
// from src, and binds them with an HMAC. rangeMax is the number of possible
// outcomes minus one.
func Commit(src Source, rangeMax int) (*Commitment, error) {
	if rangeMax < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeRange, rangeMax)
	}

	value, err := src.Intn(rangeMax + 1)
	if err != nil {
		return nil, fmt.Errorf("draw value: %w: %w", ErrRandomSource, err)
	}

	raw := make([]byte, KeyBytes)
	if _, err := io.ReadFull(src, raw); err != nil {
		return nil, fmt.Errorf("draw key: %w: %w", ErrRandomSource, err)
	}
	key := hex.EncodeToString(raw)

	return &Commitment{
		rangeMax: rangeMax,
		value:    value,
		key:      key,
		mac:      ComputeMAC(key, value),
	}, nil
}

// MAC returns the hex HMAC to publish before the counterpart moves.
func (c *Commitment) MAC() string {
	return c.mac
}

// Range returns the inclusive upper bound the value was drawn from.
func (c *Commitment) Range() int {
	return c.rangeMax
}

// Disclose reveals the committed value and key.
func (c *Commitment) Disclose() Disclosure {
	return Disclosure{Value: c.value, Key: c.key}
}

// ComputeMAC returns the lowercase hex HMAC-SHA256 of the decimal value under key.
func ComputeMAC(key string, value int) string {
	h := hmac.New(sha256.New, []byte(key))
	h.Write([]byte(strconv.Itoa(value)))
	return hex.EncodeToString(h.Sum(nil))
}

// Verify reports whether d matches the previously published mac. The
// comparison is case-insensitive on the hex text and constant time.
func Verify(d Disclosure, mac string) bool {
	want, err := hex.DecodeString(strings.ToLower(strings.TrimSpace(mac)))
	if err != nil {
		return false
	}
	got, _ := hex.DecodeString(ComputeMAC(d.Key, d.Value))
	return hmac.Equal(got, want)
}
