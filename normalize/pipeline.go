package normalize

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/arnorm/improve"
	"github.com/npillmayer/arnorm/letters"
	"github.com/npillmayer/arnorm/tashkil"
)

// ErrUnknownStep is returned when a pipeline is requested to contain a step
// with a name which is not registered.
var ErrUnknownStep = errors.New("normalize: unknown step")

// Step is a named normalization operation.
type Step struct {
	Name  string
	Apply func(string) string
}

// stepMakers creates steps by name. Some steps depend on the context.
var stepMakers = map[string]func(*Context) func(string) string{
	"tatweel": func(*Context) func(string) string { return letters.RemoveTatweel },
	"tashkil": func(*Context) func(string) string {
		return func(s string) string { return tashkil.RemoveTashkil(s, false) }
	},
	"shadda": func(*Context) func(string) string {
		return func(s string) string { return tashkil.RemoveTashkil(s, true) }
	},
	"last": func(*Context) func(string) string {
		return func(s string) string { return tashkil.LastTashkil(s, true) }
	},
	"lastkeep": func(*Context) func(string) string {
		return func(s string) string { return tashkil.LastTashkil(s, false) }
	},
	"reduce":     func(*Context) func(string) string { return tashkil.ReduceTashkil },
	"improve":    func(*Context) func(string) string { return improve.ImproveText },
	"lamalef":    func(*Context) func(string) string { return letters.SeparateLamAlef },
	"fold":       func(*Context) func(string) string { return letters.FoldPresentationForms },
	"disconnect": func(*Context) func(string) string { return letters.DisconnectChars },
	"unify": func(ctx *Context) func(string) string {
		opts := ctx.UnifyOptions()
		return func(s string) string { return letters.UnifyLetters(s, opts...) }
	},
	"simplify": func(ctx *Context) func(string) string {
		return func(s string) string { return SimplifyTextFor(s, ctx) }
	},
}

// StepNames returns the names of all known steps, sorted.
func StepNames() []string {
	names := make([]string, 0, len(stepMakers))
	for name := range stepMakers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StepFor returns the step with a given name, configured for a context.
func StepFor(name string, ctx *Context) (Step, error) {
	if ctx == nil {
		ctx = ArabicContext
	}
	maker, ok := stepMakers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Step{}, fmt.Errorf("%w: %q", ErrUnknownStep, name)
	}
	return Step{Name: name, Apply: maker(ctx)}, nil
}

// Pipeline is an ordered sequence of normalization steps.
// The zero value is not usable, create pipelines with NewPipeline.
type Pipeline struct {
	steps *arraylist.List
}

// NewPipeline creates a pipeline from step names. If a name is unknown,
// an error wrapping ErrUnknownStep is returned. If ctx is nil,
// ArabicContext is used.
func NewPipeline(ctx *Context, names ...string) (*Pipeline, error) {
	p := &Pipeline{steps: arraylist.New()}
	for _, name := range names {
		step, err := StepFor(name, ctx)
		if err != nil {
			return nil, err
		}
		p.Append(step)
	}
	return p, nil
}

// Append adds a step at the end of the pipeline.
func (p *Pipeline) Append(step Step) *Pipeline {
	p.steps.Add(step)
	return p
}

// Len is the number of steps in the pipeline.
func (p *Pipeline) Len() int {
	return p.steps.Size()
}

// Names returns the names of the steps, in order.
func (p *Pipeline) Names() []string {
	names := make([]string, 0, p.steps.Size())
	p.steps.Each(func(_ int, value interface{}) {
		names = append(names, value.(Step).Name)
	})
	return names
}

// Apply runs text through all steps of the pipeline.
func (p *Pipeline) Apply(text string) string {
	it := p.steps.Iterator()
	for it.Next() {
		step := it.Value().(Step)
		text = step.Apply(text)
		tracer().Debugf("normalize: after %s: %q", step.Name, text)
	}
	return text
}
