// Package shortcode generates unique short codes for new links.
package shortcode

import (
	"errors"
	"fmt"
	"math/rand"
)

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// Length of generated codes. 62^6 codes make collisions negligible,
	// so repeated retries indicate a corrupted or near-full code space.
	Length = 6

	maxAttempts = 10
)

// ErrSpaceExhausted is returned when the retry budget is used up without
// finding a free code. Callers should treat this as a service fault, not a
// client error.
var ErrSpaceExhausted = errors.New("short code space exhausted")

// ExistsFunc reports whether a code is already taken.
type ExistsFunc func(code string) (bool, error)

// Generator draws random codes and retries on collision. It is safe for
// concurrent use: draws go through the top-level math/rand source.
type Generator struct {
	exists ExistsFunc
}

// NewGenerator creates a generator backed by the given existence check.
func NewGenerator(exists ExistsFunc) *Generator {
	return &Generator{exists: exists}
}

// Generate returns a code that was free at the time of the existence check.
// A concurrent insert of the same code is still possible; the store's unique
// constraint is the final arbiter and the caller retries on that conflict.
func (g *Generator) Generate() (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		code := g.draw()
		taken, err := g.exists(code)
		if err != nil {
			return "", fmt.Errorf("failed to check short code: %w", err)
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrSpaceExhausted
}

func (g *Generator) draw() string {
	b := make([]byte, Length)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}
