package runner

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// maxChoiceLength bounds what is parsed and echoed back; any int fits in it.
const maxChoiceLength = 20

var (
	// ErrNotAChoice is returned when the input is not an integer.
	ErrNotAChoice = errors.New("input is not a choice number")

	// ErrControlCharacter is returned for input carrying control characters
	// such as terminal escape sequences.
	ErrControlCharacter = errors.New("input contains control characters")
)

// ParseChoice converts a line of input into a zero-based option index.
// Range checking is left to the engine; negative numbers parse fine.
func ParseChoice(input string) (int, error) {
	clean := strings.TrimSpace(input)
	if strings.IndexFunc(clean, unicode.IsControl) >= 0 {
		return 0, ErrControlCharacter
	}
	if len(clean) > maxChoiceLength {
		return 0, fmt.Errorf("%w: %d characters", ErrNotAChoice, len(clean))
	}

	n, err := strconv.Atoi(clean)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotAChoice, clean)
	}
	return n, nil
}
