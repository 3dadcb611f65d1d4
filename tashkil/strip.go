package tashkil

import (
	"github.com/npillmayer/arnorm"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Remover returns a transformer which removes all Tashkil from its input.
// If keepShadda is set, Shadda is passed through.
func Remover(keepShadda bool) transform.Transformer {
	if keepShadda {
		return runes.Remove(runes.Predicate(func(r rune) bool {
			return arnorm.IsDiacritic(r) && r != arnorm.Shadda
		}))
	}
	return runes.Remove(runes.In(arnorm.Tashkil))
}

// RemoveTashkil returns text without any Tashkil. If keepShadda is set,
// Shadda will not be removed.
func RemoveTashkil(text string, keepShadda bool) string {
	if text == "" {
		return text
	}
	s, _, err := transform.String(Remover(keepShadda), text)
	if err != nil {
		tracer().Errorf("tashkil: cannot remove marks: %v", err)
		return text
	}
	return s
}

// LastTashkil removes the word-final Tashkil of every word in text if remove
// is true. Otherwise it keeps only the word-final Tashkil and removes the
// short vowels and Sukun inside of words.
//
// The end of a word is reached when the next code-point is neither an
// Arabic letter nor a diacritic; the end of text is a word boundary as well.
// A Shadda after a vowel does not hide the end of a word.
// Shadda is never removed. Tanween is valid only word-finally: with remove set,
// Tanween inside a word is dropped as well.
func LastTashkil(text string, remove bool) string {
	if text == "" {
		return text
	}
	rw := arnorm.NewPooledRewriter(text)
	defer rw.Release()
	keep := keepForKeeping
	if remove {
		keep = keepForRemoval
	}
	for i := 0; i < rw.Len(); i++ {
		cc, ncc := rw.At(i), rw.At(rw.Skip(i+1, isShadda))
		if keep(cc, ncc) {
			rw.Emit(cc)
		}
	}
	return rw.String()
}

// keepForRemoval returns false if cc is Tashkil at the end of a word,
// or if cc is Tanween in the middle of a word.
func keepForRemoval(cc, ncc rune) bool {
	if arnorm.IsBoundary(ncc) {
		return !arnorm.IsDiacritic(cc) || cc == arnorm.Shadda
	}
	return !arnorm.IsTanween(cc)
}

// keepForKeeping returns false if cc is a short vowel or Sukun which is not
// at the end of a word.
func keepForKeeping(cc, ncc rune) bool {
	return arnorm.IsBoundary(ncc) ||
		!arnorm.IsDiacritic(cc) ||
		arnorm.IsTanween(cc) ||
		cc == arnorm.Shadda
}
