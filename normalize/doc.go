/*
Package normalize creates search-normalized forms of Arabic text and
combines normalization operations into pipelines.

SimplifyText removes everything from a text which is irrelevant for
comparing words: Tatweel and Tashkil are dropped, Lam-Alef ligatures are
separated and letter variants are unified. The result is stable, i.e.
simplifying a simplified text does not change it any further.

Some decisions depend on the orthography of the writer. In Egypt and Sudan,
final Yeh is commonly written without dots, which makes it indistinguishable
from Alef Maksura. A Context carries this kind of locale-dependent
settings.

   ctx := normalize.ContextFor(language.MustParse("ar-EG"))
   key := normalize.SimplifyTextFor(word, ctx)

For large inputs, NewReader applies the simplification to a stream.

Pipelines

Clients needing a different sequence of operations may put together a
Pipeline of named steps:

   p, err := normalize.NewPipeline(ctx, "fold", "improve", "reduce")

Known step names are listed by StepNames.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package normalize

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
