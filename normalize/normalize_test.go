package normalize

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

func TestSimplifyText(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	tests := []struct {
		in, out, outEG string
	}{
		{"", "", ""},
		{"مُحَمَّدٌ", "محمد", "محمد"},
		{"ﻹسلام", "لاسلام", "لاسلام"},
		{"هـــــانــــــي", "هاني", "هاني"},
		{"إلى المدرسة", "الا المدرسه", "الي المدرسه"},
		{"سُؤَالٌ", "سءال", "سءال"},
		{"abc", "abc", "abc"},
	}
	for _, tt := range tests {
		if out := SimplifyText(tt.in); out != tt.out {
			t.Errorf("SimplifyText(%+q) = %+q, expected %+q", tt.in, out, tt.out)
		}
		if out := SimplifyTextFor(tt.in, EgyptianContext); out != tt.outEG {
			t.Errorf("SimplifyTextFor(%+q, EG) = %+q, expected %+q", tt.in, out, tt.outEG)
		}
		if SimplifyText(tt.out) != tt.out {
			t.Errorf("SimplifyText is not idempotent for %+q", tt.in)
		}
	}
}

func TestSimplifyReader(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	text := strings.Repeat("ﻹسـلامٌ ", 1500)
	var b strings.Builder
	if _, err := io.Copy(&b, NewReader(strings.NewReader(text), nil)); err != nil {
		t.Fatal(err)
	}
	if b.String() != strings.Repeat("لاسلام ", 1500) {
		t.Errorf("stream of %d bytes not simplified correctly", len(text))
	}
}

func TestContextFor(t *testing.T) {
	tests := []struct {
		tag          string
		maksuraToYeh bool
		locale       string
	}{
		{"ar", false, "ar"},
		{"ar-EG", true, "ar-EG"},
		{"ar-SD", true, "ar-SD"},
		{"ar-SA", false, "ar-SA"},
		{"en-US", false, "ar"},
	}
	for _, tt := range tests {
		ctx := ContextFor(language.MustParse(tt.tag))
		if ctx.MaksuraToYeh != tt.maksuraToYeh || ctx.Locale != tt.locale {
			t.Errorf("context for %s: expected %v/%s, have %+v", tt.tag, tt.maksuraToYeh, tt.locale, ctx)
		}
		if ctx.Script.String() != "Arab" {
			t.Errorf("context for %s: expected Arabic script, is %v", tt.tag, ctx.Script)
		}
	}
}

func TestContextFromEnvironment(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	ctx := ContextFromEnvironment()
	if ctx == nil || ctx.Locale == "" {
		t.Errorf("expected a context for the user environment, have %+v", ctx)
	}
}

func TestPipeline(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	p, err := NewPipeline(nil, "fold", "improve", "reduce")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"fold", "improve", "reduce"}, p.Names()); diff != "" {
		t.Errorf("step names mismatch (-want +got):\n%s", diff)
	}
	if out := p.Apply("ﺑﺎﺏ ﻛَﺘَﺐَ   ,"); out != "باب كتبَ،" {
		t.Errorf("pipeline produced %+q", out)
	}
	p.Append(Step{Name: "upper", Apply: strings.ToUpper})
	if p.Len() != 4 || p.Apply("ab ,") != "AB،" {
		t.Errorf("custom step not applied")
	}
}

func TestPipelineUnknownStep(t *testing.T) {
	_, err := NewPipeline(ArabicContext, "tatweel", "nonsense")
	if !errors.Is(err, ErrUnknownStep) {
		t.Errorf("expected ErrUnknownStep, have %v", err)
	}
	if _, err = StepFor("", nil); !errors.Is(err, ErrUnknownStep) {
		t.Errorf("expected ErrUnknownStep for empty name, have %v", err)
	}
}

func TestAllStepsAreKnown(t *testing.T) {
	names := StepNames()
	if len(names) != 12 {
		t.Errorf("expected 12 steps, have %d: %v", len(names), names)
	}
	p, err := NewPipeline(EgyptianContext, names...)
	if err != nil {
		t.Fatal(err)
	}
	if p.Apply("") != "" {
		t.Errorf("expected empty text to pass through all steps")
	}
}

func TestStepsPreserveSingleSpace(t *testing.T) {
	for _, name := range StepNames() {
		if name == "improve" { // spacing is its business
			continue
		}
		step, err := StepFor(name, nil)
		if err != nil {
			t.Fatal(err)
		}
		if out := step.Apply(" "); out != " " {
			t.Errorf("step %s changed single space to %+q", name, out)
		}
	}
}
