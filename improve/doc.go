/*
Package improve cleans up spacing and punctuation of Arabic text.

Text typed by people, or converted from other formats, often has the
spacing around punctuation wrong, mixes Latin and Arabic punctuation, or
uses Tatweel inside of words. ImproveText rewrites a text in a single
left-to-right scan, deciding on every code-point with a window of one
code-point to either side. It will

  - collapse runs of spaces and tabs, and drop leading and trailing space
  - attach , ; ? ! : and closing brackets to the preceding word, and
    put a space after them
  - replace Latin comma, semicolon and question mark by their Arabic forms
  - put a space before opening brackets and opening quotes
  - unify double quotation marks to " and drop spaces inside of quotes
  - shorten runs of dots to ".."
  - drop Tatweel inside of words, keep a single one at the end of a word
  - move Fathatan before a final Alef
  - join conjunctive Waw with the next word
  - separate Lam-Alef ligatures.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package improve

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
