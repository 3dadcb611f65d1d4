/*
Package tashkil removes, reduces and encodes Arabic diacritical marks.

Tashkil are the marks Fathatan, Dammatan, Kasratan (together called Tanween,
valid only on the last letter of a word), Fatha, Damma, Kasra (the short
vowels), Shadda (gemination) and Sukun (absence of a vowel). They are
combining code-points following the letter they belong to. Where a letter
carries both Shadda and a vowel, either order is accepted. Note that NFC puts
Fatha, Damma and Kasra before Shadda (lower combining class), while
DecodeTashkil always writes Shadda first. Encoding and decoding an NFC
text therefore yields the same marks, but not the same bytes.

Operations of this package:

  RemoveTashkil   remove all marks, optionally keeping Shadda
  LastTashkil     remove word-final marks, or keep only those
  ReduceTashkil   remove marks which are obvious to pronounce
  EncodeTashkil   separate marks from the base text into a compact code
  DecodeTashkil   re-create marked text from base text and code

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tashkil

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
