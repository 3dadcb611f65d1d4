/*
Package arnorm is about normalizing Arabic text.

Description

Arabic text as it is found in the wild comes in many shapes for what a reader
perceives as the same word. Writers may or may not put Tashkil (the vowel and
gemination marks) on letters, stretch words with Tatweel for justification,
use any of the Hamza-bearing Alef variants, mix Latin and Arabic punctuation
or paste text containing presentation forms from a PDF. Clients which
have to compare, index or spell-check Arabic text will want a canonical form.

Package arnorm and its sub-packages provide normalization operations working
on the level of Unicode code-points:

  tashkil     removing, reducing and encoding diacritical marks
  letters     Tatweel removal, Lam-Alef separation, letter unification
  improve     cleaning up spacing and punctuation
  normalize   search-normalized simplification and pipelines of operations

None of the operations tries to do morphological analysis, and none is aware
of grapheme clusters or rendering. All of them are pure functions from string
to string and may be called concurrently.

BSD License

Copyright (c) 2021–22, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Contents

Base package arnorm provides the means every normalization operation
needs: a table of named code-points, classification predicates over them,
and a scan buffer type called Rewriter.

Code-Point Classification

All decisions of the normalization algorithms are made by looking at single
code-points and a small window around them. The named constants of this
package (Fatha, Waw, Tatweel, QuotationMarkLeftDouble, …) are the only place
where code-point values appear. The diacritics Fathatan…Sukun occupy a
contiguous range

   Fathatan  Dammatan  Kasratan  Fatha  Damma  Kasra  Shadda  Sukun
   U+064B    U+064C    U+064D    U+064E U+064F U+0650 U+0651  U+0652

and a lot of the classification logic depends on this contiguity. Predicates
like IsDiacritic or IsArabic are total functions: any rune, including
rune(0) for positions outside of a text, is either classified or reported
as "nothing special".

Rewriters

Context sensitive operations scan a text from left to right, keeping track
of the previous letter, the current code-point and a lookahead. A Rewriter
holds the input as a slice of runes and collects output runes. Looking
outside of the input returns rune(0), so algorithms do not have to check
boundaries explicitly. Rewriters are short lived and are pooled.

   rw := arnorm.NewPooledRewriter(text)
   defer rw.Release()
   for i := 0; i < rw.Len(); i++ {
       … rw.At(i-1), rw.At(i), rw.At(i+1) …
       rw.Emit(r)
   }
   return rw.String()
*/
package arnorm

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
