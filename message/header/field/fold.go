package field

import (
	"errors"
	"strings"
)

const (
	DefaultPreferredFoldLength = 78 // RFC 5322 recommended line length, excluding the line break
	DoNotFold                  = -1 // never fold
)

var (
	// DefaultFoldEncoding folds at the RFC 5322 recommended length.
	DefaultFoldEncoding = &FoldEncoding{DefaultPreferredFoldLength}

	// DoNotFoldEncoding writes every field on a single line.
	DoNotFoldEncoding = &FoldEncoding{DoNotFold}
)

// ErrFoldLengthTooShort is returned by NewFoldEncoding when the fold length is
// too short to hold anything useful.
var ErrFoldLengthTooShort = errors.New("preferred fold length is too short")

// FoldEncoding describes how to fold header fields on output. Folding only
// ever happens at existing whitespace in the field body. A body with a single
// word longer than the preferred length is left long.
type FoldEncoding struct {
	preferredFoldLength int
}

// NewFoldEncoding returns a FoldEncoding that prefers lines no longer than the
// given length. Pass DoNotFold to disable folding.
func NewFoldEncoding(preferredFoldLength int) (*FoldEncoding, error) {
	if preferredFoldLength != DoNotFold && preferredFoldLength < 10 {
		return nil, ErrFoldLengthTooShort
	}
	return &FoldEncoding{preferredFoldLength}, nil
}

// PreferredFoldLength returns the configured length or DoNotFold.
func (vf *FoldEncoding) PreferredFoldLength() int {
	return vf.preferredFoldLength
}

// Fold returns the field rendered as "Name: body" followed by lbr. Long lines
// are broken by inserting lbr before a space or tab, which leaves the
// unfolded value unchanged.
func (vf *FoldEncoding) Fold(f *Field, lbr string) string {
	line := f.String()
	limit := vf.preferredFoldLength
	if limit == DoNotFold || len(line) <= limit {
		return line + lbr
	}

	var out strings.Builder
	minCut := len(f.name) + 2
	for len(line) > limit {
		cut := -1
		if ix := strings.LastIndexAny(line[:limit+1], " \t"); ix >= minCut {
			cut = ix
		} else if ix := strings.IndexAny(line[limit:], " \t"); ix >= 0 {
			cut = limit + ix
		}

		if cut < minCut {
			break
		}

		out.WriteString(line[:cut])
		out.WriteString(lbr)
		line = line[cut:]
		minCut = 1
	}

	out.WriteString(line)
	out.WriteString(lbr)
	return out.String()
}
