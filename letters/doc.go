/*
Package letters implements code-point level substitutions on Arabic letters.

Operations of this package do not need any context: every output depends on
a single input code-point only. All of them are available as functions
on strings and as transformers (golang.org/x/text/transform), which
may be chained and applied to streams.

  RemoveTatweel          TatweelRemover      drop elongation characters
  SeparateLamAlef        LamAlefSeparator    decompose Lam-Alef ligatures
  UnifyLetters           Unifier             canonicalize letter variants
  DisconnectChars                            letters to isolated forms
  FoldPresentationForms                      presentation forms to letters

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package letters

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/transform"
)

// tracer traces to the core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// apply runs a transformer over a string. Transformers of this package
// never fail on valid or invalid UTF-8; should they still, text is returned
// unchanged.
func apply(t transform.Transformer, text string) string {
	if text == "" {
		return text
	}
	s, _, err := transform.String(t, text)
	if err != nil {
		tracer().Errorf("letters: transformation failed: %v", err)
		return text
	}
	return s
}
