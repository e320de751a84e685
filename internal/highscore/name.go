package highscore

import (
	"errors"
	"strings"
)

// MaxNameLength bounds a player name.
const MaxNameLength = 20

// ErrEmptyName is returned when no valid character survives sanitizing.
var ErrEmptyName = errors.New("highscore: empty player name")

// SanitizeName keeps only [A-Za-z0-9_-] and truncates to MaxNameLength.
func SanitizeName(name string) (string, error) {
	var b strings.Builder
	for _, r := range name {
		if b.Len() == MaxNameLength {
			break
		}
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "", ErrEmptyName
	}
	return b.String(), nil
}
