package finder

import (
	"math/rand"
	"time"
)

// Jitter supplies the tie-break draw in [0, 1).
//
// *rand.Rand satisfies it.
type Jitter interface {
	Float64() float64
}

// MaxJitter is the exclusive upper bound of the random score term.
const MaxJitter = 8.0

// NewJitter returns a seeded source. A zero seed means seed from the clock.
func NewJitter(seed int64) Jitter {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

type zeroJitter struct{}

func (zeroJitter) Float64() float64 { return 0 }

// Zero always draws 0, making [FindMatches] deterministic.
var Zero Jitter = zeroJitter{}
