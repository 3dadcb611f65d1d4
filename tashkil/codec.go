package tashkil

import (
	"fmt"
	"strings"

	"github.com/npillmayer/arnorm"
)

// Encoded holds a text separated from its Tashkil. EncodedTashkil has
// one ASCII symbol for every code-point of StrippedText:
//
//   0      Arabic letter without Tashkil
//   .      other code-point (space, punctuation, …) without Tashkil
//   a…g    Fathatan, Dammatan, Kasratan, Fatha, Damma, Kasra, Sukun
//   A…G    the same, combined with Shadda
//   W      Shadda alone
type Encoded struct {
	EncodedTashkil string
	StrippedText   string
}

// Symbols of the Tashkil code which do not denote a vowel.
const (
	CodeNone      = '0'
	CodeNonArabic = '.'
	CodeShadda    = 'W'
)

// EncodeTashkil separates text from its Tashkil.
//
// A letter may carry at most one vowel mark plus Shadda. If more vowel marks
// follow a letter, the last one wins. Marks at the very start of the text
// do not belong to any letter and are dropped.
func EncodeTashkil(text string) Encoded {
	rw := arnorm.NewPooledRewriter(text)
	defer rw.Release()
	var code strings.Builder
	code.Grow(rw.Len())
	i := rw.Skip(0, arnorm.IsDiacritic)
	if i > 0 {
		tracer().Infof("tashkil: dropping %d marks without base letter", i)
	}
	for i < rw.Len() {
		base := rw.At(i)
		rw.Emit(base)
		n := rw.Run(i+1, arnorm.IsDiacritic)
		var vowel rune
		shadda := false
		for j := i + 1; j <= i+n; j++ {
			if m := rw.At(j); m == arnorm.Shadda {
				shadda = true
			} else {
				if vowel != 0 {
					tracer().Debugf("tashkil: %s replaces %s at %d", arnorm.CharName(m),
						arnorm.CharName(vowel), j)
				}
				vowel = m
			}
		}
		code.WriteByte(symbolFor(base, vowel, shadda))
		i += n + 1
	}
	return Encoded{
		EncodedTashkil: code.String(),
		StrippedText:   rw.String(),
	}
}

func symbolFor(base, vowel rune, shadda bool) byte {
	if vowel == 0 {
		if shadda {
			return CodeShadda
		}
		if arnorm.IsArabic(base) {
			return CodeNone
		}
		return CodeNonArabic
	}
	var c byte
	if vowel == arnorm.Sukun {
		c = 'g'
	} else {
		c = 'a' + byte(vowel-arnorm.Fathatan)
	}
	if shadda {
		c -= 'a' - 'A'
	}
	return c
}

// DecodeTashkil re-creates a marked text from a text stripped of Tashkil and
// its Tashkil code, as produced by EncodeTashkil. Shadda is inserted before
// the vowel mark.
//
// If the code does not have exactly one symbol per code-point of stripped,
// contains unknown symbols, or if stripped still carries Tashkil,
// an error wrapping arnorm.ErrInvalidArgument is returned.
func DecodeTashkil(stripped, encoded string) (string, error) {
	base, code := []rune(stripped), []rune(encoded)
	if len(base) != len(code) {
		return "", fmt.Errorf("%w: Tashkil code has %d symbols for %d code-points",
			arnorm.ErrInvalidArgument, len(code), len(base))
	}
	var b strings.Builder
	b.Grow(len(stripped) + 2*len(code))
	for i, r := range base {
		if arnorm.IsDiacritic(r) {
			return "", fmt.Errorf("%w: stripped text has %s at position %d",
				arnorm.ErrInvalidArgument, arnorm.CharName(r), i)
		}
		shadda, vowel, ok := marksFor(code[i])
		if !ok {
			return "", fmt.Errorf("%w: illegal Tashkil code %q at position %d",
				arnorm.ErrInvalidArgument, code[i], i)
		}
		b.WriteRune(r)
		if shadda {
			b.WriteRune(arnorm.Shadda)
		}
		if vowel != 0 {
			b.WriteRune(vowel)
		}
	}
	return b.String(), nil
}

func marksFor(sym rune) (shadda bool, vowel rune, ok bool) {
	switch {
	case sym == CodeNone || sym == CodeNonArabic:
		return false, 0, true
	case sym == CodeShadda:
		return true, 0, true
	case sym >= 'A' && sym <= 'G':
		shadda = true
		sym += 'a' - 'A'
	}
	switch {
	case sym == 'g':
		vowel = arnorm.Sukun
	case sym >= 'a' && sym <= 'f':
		vowel = arnorm.Fathatan + (sym - 'a')
	default:
		return false, 0, false
	}
	return shadda, vowel, true
}
