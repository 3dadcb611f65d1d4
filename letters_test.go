package arnorm

import (
	"testing"
	"unicode"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTashkilIsContiguous(t *testing.T) {
	marks := []rune{Fathatan, Dammatan, Kasratan, Fatha, Damma, Kasra, Shadda, Sukun}
	for i, r := range marks {
		if r != Fathatan+rune(i) {
			t.Errorf("expected %s at offset %d of Tashkil range, is %#U", CharName(r), i, r)
		}
		if !IsDiacritic(r) {
			t.Errorf("expected %#U to be a diacritic", r)
		}
		if !unicode.Is(Tashkil, r) {
			t.Errorf("expected %#U to be in range table Tashkil", r)
		}
	}
	if IsDiacritic(Fathatan-1) || IsDiacritic(Sukun+1) {
		t.Errorf("diacritic range leaks beyond Fathatan…Sukun")
	}
}

func TestLookup(t *testing.T) {
	r, ok := LookupChar("QuotationMarkLeftDouble")
	if !ok || r != 0x201C {
		t.Errorf("expected QuotationMarkLeftDouble to be U+201C, is %#U (%v)", r, ok)
	}
	if _, ok := LookupChar("Nonsense"); ok {
		t.Errorf("expected lookup of unknown name to fail")
	}
	if name := CharName(Waw); name != "Waw" {
		t.Errorf("expected name of U+0648 to be Waw, is %q", name)
	}
	if name := CharName('x'); name != "" {
		t.Errorf("expected 'x' to have no name, has %q", name)
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		name string
		pred func(rune) bool
		yes  []rune
		no   []rune
	}{
		{"IsTanween", IsTanween, []rune{Fathatan, Dammatan, Kasratan}, []rune{Fatha, Shadda, 0}},
		{"IsHaraka", IsHaraka, []rune{Fatha, Damma, Kasra}, []rune{Fathatan, Sukun, Alef}},
		{"IsArabic", IsArabic, []rune{Hamza, Yeh, Tatweel, Sukun}, []rune{Space, 0, MaddaAbove, 'a'}},
		{"IsArabicLetter", IsArabicLetter, []rune{Hamza, Beh, Yeh}, []rune{Tatweel, Fatha, 0}},
		{"IsBoundary", IsBoundary, []rune{0, Space, Dot, ArabicComma, QuotationMarkRightDouble}, []rune{Alef, Kasra}},
		{"IsAlefVariant", IsAlefVariant, []rune{Alef, AlefMadda, AlefHamzaAbove, AlefHamzaBelow}, []rune{AlefMaksura, Hamza}},
		{"IsWawVariant", IsWawVariant, []rune{Waw, WawHamzaAbove}, []rune{Yeh}},
		{"IsYehVariant", IsYehVariant, []rune{Yeh, YehHamzaAbove}, []rune{AlefMaksura}},
		{"IsLamAlef", IsLamAlef, []rune{LamAlefIsolated, LamAlefFinal, LamAlefMaddaAboveIsolated}, []rune{Lam, 0xFEFD}},
		{"IsSpace", IsSpace, []rune{Space, Tab}, []rune{Newline, 0}},
		{"IsPresentationForm", IsPresentationForm, []rune{0xFE8D, 0xFB50, LamAlefIsolated}, []rune{Alef, 0xFF01}},
	}
	for _, tt := range tests {
		for _, r := range tt.yes {
			if !tt.pred(r) {
				t.Errorf("%s(%#U) should be true", tt.name, r)
			}
		}
		for _, r := range tt.no {
			if tt.pred(r) {
				t.Errorf("%s(%#U) should be false", tt.name, r)
			}
		}
	}
}

func TestRangeTables(t *testing.T) {
	if unicode.Is(ArabicLetters, Tatweel) {
		t.Errorf("Tatweel should not be an Arabic letter")
	}
	for r := Hamza; r <= Yeh; r++ {
		if unicode.Is(ArabicLetters, r) != IsArabicLetter(r) {
			t.Errorf("range table and predicate disagree for %#U", r)
		}
	}
	for r := rune(0xFEF0); r <= 0xFEFF; r++ {
		if unicode.Is(LamAlefLigatures, r) != IsLamAlef(r) {
			t.Errorf("range table and predicate disagree for %#U", r)
		}
	}
}

func TestRewriterWindow(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	rw := NewPooledRewriter("بـــا.")
	defer rw.Release()
	if rw.Len() != 6 {
		t.Fatalf("expected rewriter to hold 6 code-points, has %d", rw.Len())
	}
	if rw.At(-1) != 0 || rw.At(6) != 0 {
		t.Errorf("expected positions outside of input to be rune(0)")
	}
	if n := rw.Run(1, IsTatweel); n != 3 {
		t.Errorf("expected run of 3 Tatweel, have %d", n)
	}
	if j := rw.Skip(1, IsTatweel); rw.At(j) != Alef {
		t.Errorf("expected Alef after Tatweel run, have %#U", rw.At(j))
	}
	if !rw.IsLast(5) || rw.IsLast(4) {
		t.Errorf("IsLast reports wrong final position")
	}
	if rw.Last() != 0 {
		t.Errorf("expected no output yet")
	}
	rw.Emit(Beh, Alef)
	if rw.Last() != Alef || rw.Emitted() != 2 {
		t.Errorf("expected output to end with Alef after 2 code-points, is %#v", rw)
	}
	if rw.String() != "با" {
		t.Errorf("expected output 'با', is %q", rw.String())
	}
}

func TestRewriterReuse(t *testing.T) {
	rw := NewPooledRewriter("abc")
	rw.Emit('x')
	rw.Release()
	rw = NewPooledRewriter("de")
	defer rw.Release()
	if rw.Len() != 2 || rw.Emitted() != 0 {
		t.Errorf("expected pooled rewriter to be reset, is %#v", rw)
	}
}
