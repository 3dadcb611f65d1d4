package improve

import (
	"unicode"

	"github.com/npillmayer/arnorm"
	"github.com/npillmayer/arnorm/letters"
)

// MinImproveLength is the minimum length (in code-points) of a text for
// ImproveText to touch it.
const MinImproveLength = 2

// ImproveText normalizes spacing and punctuation of a text. See the package
// documentation for a list of rewrites.
func ImproveText(text string) string {
	rw := arnorm.NewPooledRewriter(text)
	defer rw.Release()
	if rw.Len() < MinImproveLength {
		return text
	}
	im := &improver{rw: rw, ignoreSpace: true}
	im.scan()
	return letters.SeparateLamAlef(rw.String())
}

// improver holds the state of a single ImproveText scan.
//
// insertSpace is set when a space is pending, i.e. whitespace has been read
// or punctuation wants a space after it. The pending space is emitted before
// the next visible code-point, unless ignoreSpace is set.
type improver struct {
	rw          *arnorm.Rewriter
	insertSpace bool
	ignoreSpace bool
	quoteOpen   bool
}

func (im *improver) scan() {
	rw := im.rw
	for i := 0; i < rw.Len(); i++ {
		cc := rw.At(i)
		switch cc {
		case arnorm.Space, arnorm.Tab:
			im.insertSpace = true
		case arnorm.Newline, arnorm.CarriageReturn:
			im.insertSpace = false
			im.ignoreSpace = true
			rw.Emit(cc)
		case arnorm.Comma:
			if im.inNumber(i) {
				im.visible(i, cc)
			} else {
				im.attach(arnorm.ArabicComma)
			}
		case arnorm.ArabicComma:
			im.attach(arnorm.ArabicComma)
		case arnorm.Semicolon, arnorm.ArabicSemicolon:
			im.attach(arnorm.ArabicSemicolon)
		case arnorm.QuestionMark, arnorm.ArabicQuestionMark:
			im.attach(arnorm.ArabicQuestionMark)
		case arnorm.ExclamationMark, arnorm.Colon:
			im.attach(cc)
		case arnorm.ParenRight, arnorm.BracketRight, arnorm.BraceRight:
			im.attach(cc)
		case arnorm.Dot:
			if im.inNumber(i) {
				im.visible(i, cc)
			} else if n := rw.Run(i, isDot); n > 1 {
				im.ellipsis()
				i += n - 1
			} else {
				im.attach(cc)
			}
		case arnorm.QuotationMark, arnorm.QuotationMarkLeftDouble, arnorm.QuotationMarkRightDouble:
			im.quote(i)
		case arnorm.ParenLeft, arnorm.BracketLeft, arnorm.BraceLeft:
			im.open(i, cc)
		case arnorm.Slash, arnorm.Backslash:
			im.insertSpace = false
			rw.Emit(arnorm.Slash)
			im.ignoreSpace = true
		case arnorm.Tatweel:
			n := rw.Run(i, arnorm.IsTatweel)
			if next := rw.Skip(i+n, arnorm.IsDiacritic); arnorm.IsArabicLetter(rw.At(next)) {
				tracer().Debugf("drop %d Tatweel at position %d", n, i)
			} else {
				im.visible(i, cc) // word-final, keeps one
			}
			i += n - 1
		case arnorm.Alef:
			if rw.At(i+1) == arnorm.Fathatan && !arnorm.IsBoundary(rw.At(i-1)) {
				im.visible(i, arnorm.Fathatan)
				rw.Emit(arnorm.Alef)
				i++
			} else {
				im.visible(i, cc)
			}
		case arnorm.Waw:
			im.visible(i, cc)
			if arnorm.IsBoundary(rw.At(i - 1)) {
				im.ignoreSpace = true // conjunction
			}
		default:
			im.visible(i, cc)
		}
	}
}

// visible emits a code-point, preceded by a pending space if there is one.
// A space is never emitted in front of the final code-point of a text.
func (im *improver) visible(i int, cc rune) {
	if im.insertSpace {
		if !im.ignoreSpace && !im.rw.IsLast(i) {
			im.rw.Emit(arnorm.Space)
		}
		im.insertSpace = false
	}
	if !arnorm.IsDiacritic(cc) {
		im.ignoreSpace = false
	}
	im.rw.Emit(cc)
}

// attach emits punctuation glued to the preceding word.
func (im *improver) attach(cc rune) {
	im.insertSpace = false
	im.rw.Emit(cc)
	im.insertSpace = true
	im.ignoreSpace = false
}

func (im *improver) open(i int, cc rune) {
	if !im.atOpening() && !im.rw.IsLast(i) {
		im.rw.Emit(arnorm.Space)
	}
	im.insertSpace = false
	im.rw.Emit(cc)
	im.ignoreSpace = true
}

func (im *improver) quote(i int) {
	if im.quoteOpen {
		im.attach(arnorm.QuotationMark)
		im.quoteOpen = false
		return
	}
	im.open(i, arnorm.QuotationMark)
	im.quoteOpen = true
}

func (im *improver) ellipsis() {
	if im.insertSpace && !im.ignoreSpace && !im.quoteOpen {
		im.rw.Emit(arnorm.Space)
	}
	im.insertSpace = false
	im.rw.Emit(arnorm.Dot, arnorm.Dot)
	im.insertSpace = true
	im.ignoreSpace = false
}

// atOpening is true if the output is empty or ends with a code-point after
// which no space is wanted.
func (im *improver) atOpening() bool {
	switch last := im.rw.Last(); last {
	case 0, arnorm.Space, arnorm.Newline, arnorm.CarriageReturn, arnorm.Slash,
		arnorm.ParenLeft, arnorm.BracketLeft, arnorm.BraceLeft:
		return true
	case arnorm.QuotationMark:
		return im.quoteOpen
	}
	return false
}

// inNumber is true for a separator between two digits.
func (im *improver) inNumber(i int) bool {
	return unicode.IsDigit(im.rw.At(i-1)) && unicode.IsDigit(im.rw.At(i+1))
}

func isDot(r rune) bool {
	return r == arnorm.Dot
}
