// Command arnorm normalizes Arabic text from the command line.
//
// Text is taken from the arguments or, if there are none, read from stdin.
//
//   arnorm simplify "مُحَمَّدٌ"
//   arnorm pipe --steps fold,improve,reduce < input.txt
//   arnorm --locale ar-EG unify "مستشفى"
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/npillmayer/arnorm"
	"github.com/npillmayer/arnorm/improve"
	"github.com/npillmayer/arnorm/letters"
	"github.com/npillmayer/arnorm/normalize"
	"github.com/npillmayer/arnorm/tashkil"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/text/language"
)

// Globals are flags available to every command.
type Globals struct {
	Trace  string `name:"trace" short:"t" default:"error" enum:"debug,info,error" env:"ARNORM_TRACE" help:"Trace level (debug, info, error)"`
	Locale string `name:"locale" short:"l" env:"ARNORM_LOCALE" help:"Locale of the text, e.g. ar-EG (default: user environment)"`
}

// CLI defines the command-line interface using Kong
type CLI struct {
	Globals `embed:""`

	Simplify   SimplifyCmd   `cmd:"" help:"Search-normalize text (Tatweel, Tashkil, Lam-Alef, letter variants)"`
	Improve    ImproveCmd    `cmd:"" help:"Clean up spacing and punctuation"`
	Strip      StripCmd      `cmd:"" help:"Remove Tashkil"`
	Last       LastCmd       `cmd:"" help:"Remove word-final Tashkil, or keep only word-final Tashkil"`
	Reduce     ReduceCmd     `cmd:"" help:"Remove Tashkil which is obvious from context"`
	Unify      UnifyCmd      `cmd:"" help:"Unify letter variants"`
	Lamalef    LamAlefCmd    `cmd:"" name:"lamalef" help:"Separate Lam-Alef ligatures"`
	Tatweel    TatweelCmd    `cmd:"" help:"Remove Tatweel"`
	Fold       FoldCmd       `cmd:"" help:"Fold presentation forms to letters"`
	Disconnect DisconnectCmd `cmd:"" help:"Replace letters by their isolated forms"`
	Encode     EncodeCmd     `cmd:"" help:"Separate Tashkil from text, print code and stripped text"`
	Decode     DecodeCmd     `cmd:"" help:"Re-apply a Tashkil code to stripped text"`
	Pipe       PipeCmd       `cmd:"" help:"Run text through a pipeline of steps"`
	Explain    ExplainCmd    `cmd:"" help:"List the code-points of a text"`
	Steps      StepsCmd      `cmd:"" help:"List the step names for pipe"`
}

// environment is bound to the Run methods of commands.
type environment struct {
	ctx    *normalize.Context
	stdin  io.Reader
	stdout io.Writer
}

func newEnvironment(g *Globals, stdin io.Reader, stdout io.Writer) *environment {
	setupTracing(g.Trace)
	env := &environment{stdin: stdin, stdout: stdout}
	if g.Locale == "" {
		env.ctx = normalize.ContextFromEnvironment()
	} else {
		env.ctx = normalize.ContextFor(language.Make(g.Locale))
	}
	gtrace.CoreTracer.Debugf("arnorm: context %+v", env.ctx)
	return env
}

func setupTracing(level string) {
	gtrace.CoreTracer = gologadapter.New()
	switch level {
	case "debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	case "info":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	default:
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
}

// Input is the text argument of a command.
type Input struct {
	Text []string `arg:"" optional:"" help:"Text to process (default: read from stdin)"`
}

func (in *Input) read(env *environment) (string, error) {
	if len(in.Text) > 0 {
		return strings.Join(in.Text, " "), nil
	}
	b, err := io.ReadAll(env.stdin)
	if err != nil {
		return "", fmt.Errorf("cannot read input: %w", err)
	}
	return string(b), nil
}

// apply reads the input, applies op and prints the result.
func (in *Input) apply(env *environment, op func(string) string) error {
	text, err := in.read(env)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(env.stdout, op(text))
	return err
}

// SimplifyCmd streams stdin through the simplifier.
type SimplifyCmd struct {
	Input `embed:""`
}

func (c *SimplifyCmd) Run(env *environment) error {
	if len(c.Text) > 0 {
		return c.apply(env, func(s string) string {
			return normalize.SimplifyTextFor(s, env.ctx)
		})
	}
	_, err := io.Copy(env.stdout, normalize.NewReader(env.stdin, env.ctx))
	return err
}

type ImproveCmd struct {
	Input `embed:""`
}

func (c *ImproveCmd) Run(env *environment) error {
	return c.apply(env, improve.ImproveText)
}

type StripCmd struct {
	Input      `embed:""`
	KeepShadda bool `name:"keep-shadda" short:"s" help:"Do not remove Shadda"`
}

func (c *StripCmd) Run(env *environment) error {
	return c.apply(env, func(s string) string {
		return tashkil.RemoveTashkil(s, c.KeepShadda)
	})
}

type LastCmd struct {
	Input `embed:""`
	Keep  bool `name:"keep" short:"k" help:"Keep word-final Tashkil only, instead of removing it"`
}

func (c *LastCmd) Run(env *environment) error {
	return c.apply(env, func(s string) string {
		return tashkil.LastTashkil(s, !c.Keep)
	})
}

type ReduceCmd struct {
	Input `embed:""`
}

func (c *ReduceCmd) Run(env *environment) error {
	return c.apply(env, tashkil.ReduceTashkil)
}

type UnifyCmd struct {
	Input      `embed:""`
	MaksuraYeh bool `name:"maksura-yeh" short:"y" help:"Unify Alef Maksura to Yeh (default depends on locale)"`
}

func (c *UnifyCmd) Run(env *environment) error {
	opts := env.ctx.UnifyOptions()
	if c.MaksuraYeh {
		opts = append(opts, letters.MaksuraAs(arnorm.Yeh))
	}
	return c.apply(env, func(s string) string {
		return letters.UnifyLetters(s, opts...)
	})
}

type LamAlefCmd struct {
	Input `embed:""`
}

func (c *LamAlefCmd) Run(env *environment) error {
	return c.apply(env, letters.SeparateLamAlef)
}

type TatweelCmd struct {
	Input `embed:""`
}

func (c *TatweelCmd) Run(env *environment) error {
	return c.apply(env, letters.RemoveTatweel)
}

type FoldCmd struct {
	Input `embed:""`
}

func (c *FoldCmd) Run(env *environment) error {
	return c.apply(env, letters.FoldPresentationForms)
}

type DisconnectCmd struct {
	Input `embed:""`
}

func (c *DisconnectCmd) Run(env *environment) error {
	return c.apply(env, letters.DisconnectChars)
}

type EncodeCmd struct {
	Input `embed:""`
}

func (c *EncodeCmd) Run(env *environment) error {
	text, err := c.read(env)
	if err != nil {
		return err
	}
	enc := tashkil.EncodeTashkil(text)
	_, err = fmt.Fprintf(env.stdout, "%s\n%s\n", enc.EncodedTashkil, enc.StrippedText)
	return err
}

type DecodeCmd struct {
	Input `embed:""`
	Code  string `name:"code" short:"c" required:"" help:"Tashkil code as printed by encode"`
}

func (c *DecodeCmd) Run(env *environment) error {
	text, err := c.read(env)
	if err != nil {
		return err
	}
	decoded, err := tashkil.DecodeTashkil(strings.TrimRight(text, "\r\n"), c.Code)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(env.stdout, decoded)
	return err
}

type PipeCmd struct {
	Input `embed:""`
	Steps []string `name:"steps" short:"s" sep:"," default:"improve,reduce" help:"Comma separated list of steps, see 'arnorm steps'"`
}

func (c *PipeCmd) Run(env *environment) error {
	p, err := normalize.NewPipeline(env.ctx, c.Steps...)
	if err != nil {
		return err
	}
	return c.apply(env, p.Apply)
}

type ExplainCmd struct {
	Input `embed:""`
}

func (c *ExplainCmd) Run(env *environment) error {
	text, err := c.read(env)
	if err != nil {
		return err
	}
	for _, r := range text {
		name := arnorm.CharName(r)
		if name == "" {
			name = "-"
		}
		if _, err = fmt.Fprintf(env.stdout, "%U\t%s\n", r, name); err != nil {
			return err
		}
	}
	return nil
}

type StepsCmd struct{}

func (c *StepsCmd) Run(env *environment) error {
	_, err := fmt.Fprintln(env.stdout, strings.Join(normalize.StepNames(), "\n"))
	return err
}

func options() []kong.Option {
	return []kong.Option{
		kong.Name("arnorm"),
		kong.Description("Normalization of Arabic text"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	}
}

// run parses args and executes the selected command.
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli, options()...)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return ctx.Run(newEnvironment(&cli.Globals, stdin, stdout))
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, options()...)
	err := ctx.Run(newEnvironment(&cli.Globals, os.Stdin, os.Stdout))
	ctx.FatalIfErrorf(err)
}
