package arnorm

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Punctuation and white space.
const (
	Tab                rune = 0x0009 // horizontal tab
	Newline            rune = 0x000A // line feed
	CarriageReturn     rune = 0x000D // carriage return
	Space              rune = 0x0020 // space
	ExclamationMark    rune = 0x0021 // !
	QuotationMark      rune = 0x0022 // "
	ParenLeft          rune = 0x0028 // (
	ParenRight         rune = 0x0029 // )
	Comma              rune = 0x002C // , Latin comma
	Dot                rune = 0x002E // .
	Slash              rune = 0x002F // /
	Colon              rune = 0x003A // :
	Semicolon          rune = 0x003B // ; Latin semicolon
	QuestionMark       rune = 0x003F // ? Latin question mark
	BracketLeft        rune = 0x005B // [
	Backslash          rune = 0x005C // \
	BracketRight       rune = 0x005D // ]
	BraceLeft          rune = 0x007B // {
	BraceRight         rune = 0x007D // }
	ArabicComma        rune = 0x060C // ،
	ArabicSemicolon    rune = 0x061B // ؛
	ArabicQuestionMark rune = 0x061F // ؟

	QuotationMarkLeftDouble  rune = 0x201C // “
	QuotationMarkRightDouble rune = 0x201D // ”
)

// Arabic letters U+0621…U+064A. U+063B…U+063F are extensions for other
// languages and are not named.
const (
	Hamza          rune = 0x0621 // ء
	AlefMadda      rune = 0x0622 // آ Alef with Madda above
	AlefHamzaAbove rune = 0x0623 // أ
	WawHamzaAbove  rune = 0x0624 // ؤ
	AlefHamzaBelow rune = 0x0625 // إ
	YehHamzaAbove  rune = 0x0626 // ئ
	Alef           rune = 0x0627 // ا
	Beh            rune = 0x0628 // ب
	TehMarbuta     rune = 0x0629 // ة
	Teh            rune = 0x062A // ت
	Theh           rune = 0x062B // ث
	Jeem           rune = 0x062C // ج
	Hah            rune = 0x062D // ح
	Khah           rune = 0x062E // خ
	Dal            rune = 0x062F // د
	Thal           rune = 0x0630 // ذ
	Reh            rune = 0x0631 // ر
	Zain           rune = 0x0632 // ز
	Seen           rune = 0x0633 // س
	Sheen          rune = 0x0634 // ش
	Sad            rune = 0x0635 // ص
	Dad            rune = 0x0636 // ض
	Tah            rune = 0x0637 // ط
	Zah            rune = 0x0638 // ظ
	Ain            rune = 0x0639 // ع
	Ghain          rune = 0x063A // غ
	Tatweel        rune = 0x0640 // ـ elongation, no phonetic value
	Feh            rune = 0x0641 // ف
	Qaf            rune = 0x0642 // ق
	Kaf            rune = 0x0643 // ك
	Lam            rune = 0x0644 // ل
	Meem           rune = 0x0645 // م
	Noon           rune = 0x0646 // ن
	Heh            rune = 0x0647 // ه
	Waw            rune = 0x0648 // و
	AlefMaksura    rune = 0x0649 // ى
	Yeh            rune = 0x064A // ي
)

// Tashkil. Fathatan…Sukun must stay a contiguous range.
const (
	Fathatan   rune = 0x064B // ً
	Dammatan   rune = 0x064C // ٌ
	Kasratan   rune = 0x064D // ٍ
	Fatha      rune = 0x064E // َ
	Damma      rune = 0x064F // ُ
	Kasra      rune = 0x0650 // ِ
	Shadda     rune = 0x0651 // ّ gemination
	Sukun      rune = 0x0652 // ْ absence of a vowel
	MaddaAbove rune = 0x0653 // ٓ
	HamzaAbove rune = 0x0654 // ٔ
	HamzaBelow rune = 0x0655 // ٕ
)

// Extended Alef variants.
const (
	AlefWasla          rune = 0x0671 // ٱ
	AlefWavyHamzaAbove rune = 0x0672 // ٲ
	AlefWavyHamzaBelow rune = 0x0673 // ٳ
)

// Lam-Alef ligatures from the Arabic Presentation Forms-B block.
const (
	LamAlefMaddaAboveIsolated rune = 0xFEF5 // ﻵ
	LamAlefMaddaAboveFinal    rune = 0xFEF6 // ﻶ
	LamAlefHamzaAboveIsolated rune = 0xFEF7 // ﻷ
	LamAlefHamzaAboveFinal    rune = 0xFEF8 // ﻸ
	LamAlefHamzaBelowIsolated rune = 0xFEF9 // ﻹ
	LamAlefHamzaBelowFinal    rune = 0xFEFA // ﻺ
	LamAlefIsolated           rune = 0xFEFB // ﻻ
	LamAlefFinal              rune = 0xFEFC // ﻼ
)

var charTable = []struct {
	name string
	r    rune
}{
	{"Tab", Tab}, {"Newline", Newline}, {"CarriageReturn", CarriageReturn},
	{"Space", Space}, {"ExclamationMark", ExclamationMark}, {"QuotationMark", QuotationMark},
	{"ParenLeft", ParenLeft}, {"ParenRight", ParenRight}, {"Comma", Comma}, {"Dot", Dot},
	{"Slash", Slash}, {"Colon", Colon}, {"Semicolon", Semicolon},
	{"QuestionMark", QuestionMark}, {"BracketLeft", BracketLeft}, {"Backslash", Backslash},
	{"BracketRight", BracketRight}, {"BraceLeft", BraceLeft}, {"BraceRight", BraceRight},
	{"ArabicComma", ArabicComma}, {"ArabicSemicolon", ArabicSemicolon},
	{"ArabicQuestionMark", ArabicQuestionMark},
	{"QuotationMarkLeftDouble", QuotationMarkLeftDouble},
	{"QuotationMarkRightDouble", QuotationMarkRightDouble},
	{"Hamza", Hamza}, {"AlefMadda", AlefMadda}, {"AlefHamzaAbove", AlefHamzaAbove},
	{"WawHamzaAbove", WawHamzaAbove}, {"AlefHamzaBelow", AlefHamzaBelow},
	{"YehHamzaAbove", YehHamzaAbove}, {"Alef", Alef}, {"Beh", Beh},
	{"TehMarbuta", TehMarbuta}, {"Teh", Teh}, {"Theh", Theh}, {"Jeem", Jeem},
	{"Hah", Hah}, {"Khah", Khah}, {"Dal", Dal}, {"Thal", Thal}, {"Reh", Reh},
	{"Zain", Zain}, {"Seen", Seen}, {"Sheen", Sheen}, {"Sad", Sad}, {"Dad", Dad},
	{"Tah", Tah}, {"Zah", Zah}, {"Ain", Ain}, {"Ghain", Ghain}, {"Tatweel", Tatweel},
	{"Feh", Feh}, {"Qaf", Qaf}, {"Kaf", Kaf}, {"Lam", Lam}, {"Meem", Meem},
	{"Noon", Noon}, {"Heh", Heh}, {"Waw", Waw}, {"AlefMaksura", AlefMaksura},
	{"Yeh", Yeh},
	{"Fathatan", Fathatan}, {"Dammatan", Dammatan}, {"Kasratan", Kasratan},
	{"Fatha", Fatha}, {"Damma", Damma}, {"Kasra", Kasra}, {"Shadda", Shadda},
	{"Sukun", Sukun}, {"MaddaAbove", MaddaAbove}, {"HamzaAbove", HamzaAbove},
	{"HamzaBelow", HamzaBelow},
	{"AlefWasla", AlefWasla}, {"AlefWavyHamzaAbove", AlefWavyHamzaAbove},
	{"AlefWavyHamzaBelow", AlefWavyHamzaBelow},
	{"LamAlefMaddaAboveIsolated", LamAlefMaddaAboveIsolated},
	{"LamAlefMaddaAboveFinal", LamAlefMaddaAboveFinal},
	{"LamAlefHamzaAboveIsolated", LamAlefHamzaAboveIsolated},
	{"LamAlefHamzaAboveFinal", LamAlefHamzaAboveFinal},
	{"LamAlefHamzaBelowIsolated", LamAlefHamzaBelowIsolated},
	{"LamAlefHamzaBelowFinal", LamAlefHamzaBelowFinal},
	{"LamAlefIsolated", LamAlefIsolated},
	{"LamAlefFinal", LamAlefFinal},
}

var (
	charByName map[string]rune
	nameByChar map[rune]string
)

func init() {
	charByName = make(map[string]rune, len(charTable))
	nameByChar = make(map[rune]string, len(charTable))
	for _, c := range charTable {
		charByName[c.name] = c.r
		nameByChar[c.r] = c.name
	}
}

// LookupChar returns the code-point for a semantic name, e.g. "Fatha".
func LookupChar(name string) (rune, bool) {
	r, ok := charByName[name]
	return r, ok
}

// CharName returns the semantic name of a code-point, or "" if r is not
// part of the table.
func CharName(r rune) string {
	return nameByChar[r]
}

// --- Range tables ----------------------------------------------------------

// Tashkil is the range table of the diacritics Fathatan…Sukun.
var Tashkil = rangetable.New(Fathatan, Dammatan, Kasratan, Fatha, Damma, Kasra, Shadda, Sukun)

// ArabicLetters is the range table of the Arabic base letters Hamza…Yeh,
// excluding Tatweel.
var ArabicLetters = makeArabicLetters()

// LamAlefLigatures is the range table of the Lam-Alef presentation forms.
var LamAlefLigatures = rangetable.New(
	LamAlefMaddaAboveIsolated, LamAlefMaddaAboveFinal,
	LamAlefHamzaAboveIsolated, LamAlefHamzaAboveFinal,
	LamAlefHamzaBelowIsolated, LamAlefHamzaBelowFinal,
	LamAlefIsolated, LamAlefFinal,
)

// PresentationForms covers the blocks Arabic Presentation Forms-A and -B.
var PresentationForms = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0xfb50, Hi: 0xfdff, Stride: 1},
		{Lo: 0xfe70, Hi: 0xfeff, Stride: 1},
	},
}

func makeArabicLetters() *unicode.RangeTable {
	letters := make([]rune, 0, Yeh-Hamza+1)
	for r := Hamza; r <= Yeh; r++ {
		if r != Tatweel {
			letters = append(letters, r)
		}
	}
	return rangetable.New(letters...)
}

// --- Predicates ------------------------------------------------------------

// IsDiacritic is true for Fathatan…Sukun.
func IsDiacritic(r rune) bool {
	return r >= Fathatan && r <= Sukun
}

// IsTanween is true for Fathatan, Dammatan and Kasratan. Tanween is only
// valid on the last letter of a word.
func IsTanween(r rune) bool {
	return r >= Fathatan && r <= Kasratan
}

// IsHaraka is true for the short vowels Fatha, Damma and Kasra.
func IsHaraka(r rune) bool {
	return r >= Fatha && r <= Kasra
}

// IsArabic is true for Arabic letters and diacritics, Hamza…Sukun.
// Tatweel is part of this range.
func IsArabic(r rune) bool {
	return r >= Hamza && r <= Sukun
}

// IsArabicLetter is true for the base letters Hamza…Yeh, excluding Tatweel.
func IsArabicLetter(r rune) bool {
	return r >= Hamza && r <= Yeh && r != Tatweel
}

// IsBoundary is true for every code-point which terminates an Arabic word,
// i.e. anything which is neither an Arabic letter nor a diacritic.
// rune(0) is a boundary.
func IsBoundary(r rune) bool {
	return !IsArabic(r)
}

// IsAlefVariant is true for Alef and Alef with Madda or Hamza.
func IsAlefVariant(r rune) bool {
	switch r {
	case Alef, AlefMadda, AlefHamzaAbove, AlefHamzaBelow:
		return true
	}
	return false
}

// IsWawVariant is true for Waw and Waw with Hamza above.
func IsWawVariant(r rune) bool {
	return r == Waw || r == WawHamzaAbove
}

// IsYehVariant is true for Yeh and Yeh with Hamza above.
func IsYehVariant(r rune) bool {
	return r == Yeh || r == YehHamzaAbove
}

// IsTatweel checks if r is the elongation character.
func IsTatweel(r rune) bool {
	return r == Tatweel
}

// IsLamAlef is true for the Lam-Alef ligatures, isolated or final.
func IsLamAlef(r rune) bool {
	return r >= LamAlefMaddaAboveIsolated && r <= LamAlefFinal
}

// IsSpace is true for space and tab. Line breaks are not spaces in the
// sense of this package.
func IsSpace(r rune) bool {
	return r == Space || r == Tab
}

// IsLineBreak is true for line feed and carriage return.
func IsLineBreak(r rune) bool {
	return r == Newline || r == CarriageReturn
}

// IsPresentationForm is true for code-points of the Arabic presentation
// form blocks.
func IsPresentationForm(r rune) bool {
	return unicode.Is(PresentationForms, r)
}
