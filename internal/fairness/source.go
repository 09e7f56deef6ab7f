package fairness

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	mrand "math/rand/v2"
)

// ErrRandomSource marks a failure of the underlying random source. It is not
// retryable: once the source has failed the fairness of the session can no
// longer be vouched for.
var ErrRandomSource = errors.New("random source failure")

// Source is the capability the protocol draws randomness from.
type Source interface {
	// Intn returns a uniformly distributed int in [0, n). n must be > 0.
	Intn(n int) (int, error)
	// Read fills p with random bytes.
	Read(p []byte) (int, error)
}

// CryptoSource is the production Source backed by crypto/rand.
type CryptoSource struct{}

// Intn returns a cryptographically secure int in [0, n).
func (CryptoSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("intn called with n=%d", n)
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// Read fills p from crypto/rand.
func (CryptoSource) Read(p []byte) (int, error) {
	return rand.Read(p)
}

const goldenRatio64 = 0x9e3779b97f4a7c15

// SeededSource is a deterministic Source for tests and replays. It must never
// back a real game: anyone who knows the seed can predict every commitment.
type SeededSource struct {
	rng *mrand.Rand
}

// NewSeededSource derives the two PCG seeds from one int64 so every call site
// with the same seed gets the same sequence.
func NewSeededSource(seed int64) *SeededSource {
	u := uint64(seed)
	return &SeededSource{rng: mrand.New(mrand.NewPCG(mix(u), mix(u+goldenRatio64)))}
}

// Intn returns the next int in [0, n) from the seeded sequence.
func (s *SeededSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("intn called with n=%d", n)
	}
	return s.rng.IntN(n), nil
}

// Read fills p from the seeded sequence, eight bytes per draw. It never fails.
func (s *SeededSource) Read(p []byte) (int, error) {
	var buf [8]byte
	for i := 0; i < len(p); i += len(buf) {
		binary.LittleEndian.PutUint64(buf[:], s.rng.Uint64())
		copy(p[i:], buf[:])
	}
	return len(p), nil
}

// splitmix64 finaliser
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
