package letters

import (
	"unicode/utf8"

	"github.com/npillmayer/arnorm"
	"golang.org/x/text/transform"
)

// lamAlefs maps Lam-Alef ligatures to the Alef variant following Lam.
var lamAlefs = map[rune]rune{
	arnorm.LamAlefMaddaAboveIsolated: arnorm.AlefMadda,
	arnorm.LamAlefMaddaAboveFinal:    arnorm.AlefMadda,
	arnorm.LamAlefHamzaAboveIsolated: arnorm.AlefHamzaAbove,
	arnorm.LamAlefHamzaAboveFinal:    arnorm.AlefHamzaAbove,
	arnorm.LamAlefHamzaBelowIsolated: arnorm.AlefHamzaBelow,
	arnorm.LamAlefHamzaBelowFinal:    arnorm.AlefHamzaBelow,
	arnorm.LamAlefIsolated:           arnorm.Alef,
	arnorm.LamAlefFinal:              arnorm.Alef,
}

// SeparateLamAlef replaces every Lam-Alef ligature by Lam followed by
// the appropriate Alef (plain, with Madda above, with Hamza above or below).
func SeparateLamAlef(text string) string {
	return apply(LamAlefSeparator(), text)
}

// LamAlefSeparator returns a transformer separating Lam-Alef ligatures.
func LamAlefSeparator() transform.Transformer {
	return lamAlefSeparator{}
}

type lamAlefSeparator struct {
	transform.NopResetter
}

// Lam and all Alef variants are 2 bytes in UTF-8.
const lamAlefLen = 4

func (lamAlefSeparator) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := rune(src[nSrc]), 1
		if r >= utf8.RuneSelf {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				err = transform.ErrShortSrc
				break
			}
			r, size = utf8.DecodeRune(src[nSrc:])
		}
		if alef, ok := lamAlefs[r]; ok {
			if nDst+lamAlefLen > len(dst) {
				err = transform.ErrShortDst
				break
			}
			nDst += utf8.EncodeRune(dst[nDst:], arnorm.Lam)
			nDst += utf8.EncodeRune(dst[nDst:], alef)
		} else {
			if nDst+size > len(dst) {
				err = transform.ErrShortDst
				break
			}
			nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		}
		nSrc += size
	}
	return
}
