package tests

import (
	"math/rand"
	"strconv"
	"time"
)

type Randomizer struct {
	Float64 func() float64
	Bool    func() bool
	Intn    func(n int) int
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().Unix())) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Intn:    random.Intn,
	}
}

// Price returns a CheapShark-formatted price between 0.00 and 99.99.
func (r Randomizer) Price() string {
	return strconv.FormatFloat(float64(r.Intn(10000))/100, 'f', 2, 64) //nolint:mnd // skip
}
