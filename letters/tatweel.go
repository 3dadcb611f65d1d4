package letters

import (
	"github.com/npillmayer/arnorm"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// IsTatweel checks if r is the elongation character ـ.
func IsTatweel(r rune) bool {
	return arnorm.IsTatweel(r)
}

// TatweelRemover returns a transformer removing every Tatweel.
func TatweelRemover() transform.Transformer {
	return runes.Remove(runes.Predicate(arnorm.IsTatweel))
}

// RemoveTatweel removes Tatweel from words.
func RemoveTatweel(text string) string {
	return apply(TatweelRemover(), text)
}
