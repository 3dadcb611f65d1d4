package letters

import (
	"github.com/npillmayer/arnorm"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// isolatedForms maps Arabic letters to their isolated presentation form.
var isolatedForms = makeIsolatedForms()

// Presentation forms of a letter are ordered isolated, final, initial, medial
// in block Arabic Presentation Forms-B. The first form which decomposes to
// a letter therefore is its isolated form.
func makeIsolatedForms() map[rune]rune {
	forms := make(map[rune]rune, 40)
	for r := rune(0xFE80); r <= 0xFEFC; r++ {
		d := []rune(norm.NFKC.String(string(r)))
		if len(d) != 1 || !arnorm.IsArabicLetter(d[0]) {
			continue
		}
		if _, ok := forms[d[0]]; !ok {
			forms[d[0]] = r
		}
	}
	return forms
}

// IsolatedForm returns the isolated presentation form of an Arabic letter,
// or r itself if there is none.
func IsolatedForm(r rune) rune {
	if f, ok := isolatedForms[r]; ok {
		return f
	}
	return r
}

// DisconnectChars replaces Arabic letters by their isolated presentation
// forms, so that they are displayed unconnected. Tatweel is removed.
func DisconnectChars(text string) string {
	t := transform.Chain(TatweelRemover(), runes.Map(IsolatedForm))
	return apply(t, text)
}

// FoldPresentationForms replaces Arabic presentation forms, as found
// in text extracted from PDF files, by their base letters (compatibility
// decomposition). Lam-Alef ligatures are decomposed as well. Other
// code-points are not touched.
func FoldPresentationForms(text string) string {
	return apply(PresentationFormFolder(), text)
}

// PresentationFormFolder returns a transformer folding presentation forms.
func PresentationFormFolder() transform.Transformer {
	return runes.If(runes.In(arnorm.PresentationForms), norm.NFKC, nil)
}
