package tests

import (
	"math/rand"
	"time"
)

const printableASCII = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

type Randomizer struct {
	Intn func(n int) int
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().Unix())) //nolint:gosec // for tests

	return Randomizer{
		Intn: random.Intn,
	}
}

// String returns n characters drawn from alphabet, printable ASCII when empty.
func (r Randomizer) String(n int, alphabet string) string {
	if alphabet == "" {
		alphabet = printableASCII
	}

	chars := []rune(alphabet)
	result := make([]rune, n)

	for i := range result {
		result[i] = chars[r.Intn(len(chars))]
	}

	return string(result)
}
