package lobby

import (
	"math/rand"
	"strings"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	codeLength   = 4
)

// codeSpace is the number of distinct codes (26^4).
var codeSpace = func() int {
	n := 1
	for i := 0; i < codeLength; i++ {
		n *= len(codeAlphabet)
	}
	return n
}()

// CodeGenerator draws 4-letter uppercase room codes, retrying on collision
// against the caller's current key set. Retries are bounded so a saturated
// registry surfaces an error instead of hanging.
type CodeGenerator struct {
	rng *rand.Rand
}

func NewCodeGenerator(seed int64) *CodeGenerator {
	return &CodeGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a code for which inUse reports false.
func (g *CodeGenerator) Next(inUse func(code string) bool) (string, error) {
	var b strings.Builder
	for attempt := 0; attempt < codeSpace; attempt++ {
		b.Reset()
		for i := 0; i < codeLength; i++ {
			b.WriteByte(codeAlphabet[g.rng.Intn(len(codeAlphabet))])
		}
		code := b.String()
		if !inUse(code) {
			return code, nil
		}
	}
	return "", ErrCodeSpaceExhausted
}
