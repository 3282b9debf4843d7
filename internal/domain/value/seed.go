package value

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// Seed drives the seating shuffle. Equal seeds give equal layouts.
type Seed int64

// DefaultSeed keeps layouts stable until someone asks to regenerate.
const DefaultSeed Seed = 42

// FreshSeed returns a non-reproducible seed for "regenerate".
func FreshSeed() Seed {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return Seed(time.Now().UnixNano())
	}
	return Seed(int64(binary.LittleEndian.Uint64(b[:]) >> 1))
}
