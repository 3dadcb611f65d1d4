package tashkil

import (
	"github.com/npillmayer/arnorm"
)

// MinReduceLength is the minimum length in code-points of a text for
// ReduceTashkil to operate on. Shorter texts are returned unchanged.
const MinReduceLength = 3

// ReduceTashkil removes Tashkil which is obvious to pronounce from the
// surrounding letters, producing lightly marked text. Shadda and Sukun are
// always kept, as is any Tashkil on the last letter of a word.
//
//   Fatha  is removed before any kind of Alef. Otherwise it is kept only
//          if it sits on Waw or Yeh (not at the start of a word), or
//          if it is followed by Waw or Yeh.
//   Damma  is removed if it sits on Waw or precedes Waw.
//   Kasra  is removed if it sits on Yeh, precedes Yeh, or sits
//          under Alef with Hamza below; it is kept under plain Alef.
//
// Waw includes Waw with Hamza above, Yeh in the context of Damma and Kasra
// includes Yeh with Hamza above. Marks may be in either order with respect
// to Shadda; the letter following a mark is looked up behind Shadda.
func ReduceTashkil(text string) string {
	rw := arnorm.NewPooledRewriter(text)
	defer rw.Release()
	if rw.Len() < MinReduceLength {
		return text
	}
	letter := -1 // position of the last code-point which is not a diacritic
	for i := 0; i < rw.Len(); i++ {
		cc := rw.At(i)
		if !arnorm.IsDiacritic(cc) {
			rw.Emit(cc)
			letter = i
			continue
		}
		bcc, ncc := rw.At(letter), rw.At(rw.Skip(i+1, isShadda))
		initial := letter >= 0 && arnorm.IsBoundary(rw.At(letter-1))
		if isObvious(cc, bcc, ncc, initial) {
			tracer().Debugf("reduce: dropping %s on %#U before %#U", arnorm.CharName(cc), bcc, ncc)
			continue
		}
		rw.Emit(cc)
	}
	return rw.String()
}

// isShadda is used to look past a Shadda following a vowel. Vowel marks have
// a lower canonical combining class than Shadda, so NFC puts them first.
func isShadda(r rune) bool {
	return r == arnorm.Shadda
}

// isObvious decides if a diacritic cc, sitting on letter bcc and followed by
// ncc, is predictable from its context. initial flags bcc as the first letter
// of a word.
func isObvious(cc, bcc, ncc rune, initial bool) bool {
	switch cc {
	case arnorm.Fatha:
		if arnorm.IsAlefVariant(ncc) {
			return true
		}
		if arnorm.IsBoundary(ncc) {
			return false
		}
		if (arnorm.IsWawVariant(bcc) || bcc == arnorm.Yeh) && !initial {
			return false
		}
		return !arnorm.IsWawVariant(ncc) && ncc != arnorm.Yeh
	case arnorm.Damma:
		if arnorm.IsBoundary(ncc) {
			return false
		}
		return arnorm.IsWawVariant(bcc) || arnorm.IsWawVariant(ncc)
	case arnorm.Kasra:
		if arnorm.IsBoundary(ncc) || bcc == arnorm.Alef {
			return false
		}
		if bcc == arnorm.AlefHamzaBelow {
			return true
		}
		return arnorm.IsYehVariant(bcc) || arnorm.IsYehVariant(ncc)
	}
	return false // Tanween, Shadda, Sukun
}
