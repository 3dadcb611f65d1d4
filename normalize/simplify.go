package normalize

import (
	"io"

	"github.com/npillmayer/arnorm/letters"
	"github.com/npillmayer/arnorm/tashkil"
	"golang.org/x/text/transform"
)

// Simplifier returns a transformer producing the search-normalized form
// of its input. If ctx is nil, ArabicContext is used.
//
// Transformers are stateful, so every call returns a new one.
func Simplifier(ctx *Context) transform.Transformer {
	return transform.Chain(
		letters.TatweelRemover(),
		tashkil.Remover(false),
		letters.LamAlefSeparator(),
		letters.Unifier(ctx.UnifyOptions()...),
	)
}

// SimplifyText returns the search-normalized form of a text:
// Tatweel and Tashkil are removed, Lam-Alef ligatures are separated and
// letters are unified. Simplification is idempotent.
func SimplifyText(text string) string {
	return SimplifyTextFor(text, ArabicContext)
}

// SimplifyTextFor simplifies a text for a given orthography context.
func SimplifyTextFor(text string, ctx *Context) string {
	if text == "" {
		return text
	}
	s, _, err := transform.String(Simplifier(ctx), text)
	if err != nil {
		tracer().Errorf("normalize: cannot simplify text: %v", err)
		return text
	}
	return s
}

// NewReader returns a reader delivering the simplified content of r.
func NewReader(r io.Reader, ctx *Context) io.Reader {
	return transform.NewReader(r, Simplifier(ctx))
}
