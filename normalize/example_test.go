package normalize_test

import (
	"fmt"

	"github.com/npillmayer/arnorm/normalize"
	"golang.org/x/text/language"
)

func ExampleSimplifyText() {
	fmt.Println(normalize.SimplifyText("مُحَمَّدٌ"))
	// Output: محمد
}

func ExampleContextFor() {
	ctx := normalize.ContextFor(language.MustParse("ar-EG"))
	fmt.Println(normalize.SimplifyTextFor("مستشفى", ctx))
	// Output: مستشفي
}
