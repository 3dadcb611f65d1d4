package letters

import (
	"github.com/npillmayer/arnorm"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Option configures letter unification.
type Option func(*unification)

type unification struct {
	maksura rune // replacement for Alef Maksura
}

// MaksuraAs sets the letter Alef Maksura is unified to. The default is Alef.
// Orthographies which write final Yeh without dots (e.g. in Egypt) will
// want Yeh.
func MaksuraAs(r rune) Option {
	return func(u *unification) {
		u.maksura = r
	}
}

func newUnification(opts []Option) *unification {
	u := &unification{maksura: arnorm.Alef}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *unification) mapping(r rune) rune {
	switch r {
	case arnorm.TehMarbuta:
		return arnorm.Heh
	case arnorm.AlefMaksura:
		return u.maksura
	case arnorm.AlefMadda, arnorm.AlefHamzaAbove, arnorm.AlefHamzaBelow,
		arnorm.AlefWavyHamzaAbove, arnorm.AlefWavyHamzaBelow:
		return arnorm.Alef
	case arnorm.WawHamzaAbove, arnorm.YehHamzaAbove:
		return arnorm.Hamza
	}
	return r
}

// Unifier returns a transformer unifying letter variants.
func Unifier(opts ...Option) transform.Transformer {
	return runes.Map(newUnification(opts).mapping)
}

// UnifyLetters replaces letters which look or sound alike by a single
// representative:
//
//   Teh Marbuta                        → Heh
//   Alef Maksura                       → Alef (see MaksuraAs)
//   Alef with Madda, Hamza above/below → Alef
//   Waw and Yeh with Hamza above       → Hamza
func UnifyLetters(text string, opts ...Option) string {
	return apply(Unifier(opts...), text)
}
