package ygggo_building

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// DefaultAlphabet has 64 symbols, so a DefaultIDLength id spans 64^12 values.
	DefaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890_-"
	DefaultIDLength = 12
)

// GenerateID returns length symbols drawn uniformly at random from alphabet.
// Uniqueness is probabilistic; the primary key is what enforces it.
func GenerateID(alphabet string, length int) (string, error) {
	if length <= 0 {
		return "", newError(ErrConfiguration, "generate id", fmt.Errorf("length must be positive, got %d", length))
	}
	runes := []rune(alphabet)
	if len(runes) == 0 || len(runes) > 255 {
		return "", newError(ErrConfiguration, "generate id", fmt.Errorf("alphabet must have 1..255 symbols, got %d", len(runes)))
	}
	seen := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		if _, dup := seen[r]; dup {
			return "", newError(ErrConfiguration, "generate id", fmt.Errorf("alphabet repeats %q", r))
		}
		seen[r] = struct{}{}
	}
	id, err := gonanoid.Generate(alphabet, length)
	if err != nil {
		return "", newError(ErrConfiguration, "generate id", err)
	}
	return id, nil
}

// NewID returns a DefaultIDLength id over DefaultAlphabet.
func NewID() string {
	id, err := gonanoid.Generate(DefaultAlphabet, DefaultIDLength)
	if err != nil {
		// only reachable if the system random source fails
		panic(fmt.Sprintf("ygggo_building: generate id: %v", err))
	}
	return id
}
