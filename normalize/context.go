package normalize

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/arnorm"
	"github.com/npillmayer/arnorm/letters"
	"golang.org/x/text/language"
)

// Context represents information about the orthography of a text.
type Context struct {
	Script       language.Script // ISO 15924 script identifier
	Locale       string          // BCP 47 locale string
	MaksuraToYeh bool            // unify Alef Maksura to Yeh instead of Alef
}

// ArabicContext is the default context, for Modern Standard Arabic.
var ArabicContext = makeArabicContext()

// EgyptianContext is a context for Egyptian orthography, where final Yeh
// is written without dots.
var EgyptianContext = makeEgyptianContext()

func makeArabicContext() *Context {
	return &Context{
		Script: language.MustParseScript("Arab"),
		Locale: "ar",
	}
}

func makeEgyptianContext() *Context {
	return &Context{
		Script:       language.MustParseScript("Arab"),
		Locale:       "ar-EG",
		MaksuraToYeh: true,
	}
}

// Regions writing final Yeh without dots.
var dotlessYehRegions = map[string]bool{
	"EG": true,
	"SD": true,
}

// ContextFor creates a context for a language tag. Tags of languages other
// than Arabic result in a copy of ArabicContext.
func ContextFor(tag language.Tag) *Context {
	base, _ := tag.Base()
	if arabic, _ := language.Arabic.Base(); base != arabic {
		tracer().Debugf("normalize: %v is not Arabic, using default context", tag)
		ctx := *ArabicContext
		return &ctx
	}
	script, _ := tag.Script()
	ctx := &Context{
		Script: script,
		Locale: tag.String(),
	}
	if region, confidence := tag.Region(); confidence == language.Exact {
		ctx.MaksuraToYeh = dotlessYehRegions[region.String()]
	}
	return ctx
}

// ContextFromEnvironment creates a context for the locale of the user.
func ContextFromEnvironment() *Context {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracer().Errorf("normalize: %v", err)
		userLocale = "ar"
		tracer().Infof("normalize sets default user locale %v", userLocale)
	} else {
		tracer().Infof("normalize detected user locale %v", userLocale)
	}
	return ContextFor(language.Make(userLocale))
}

// UnifyOptions returns the options for letters.UnifyLetters matching ctx.
// A nil context is treated as ArabicContext.
func (ctx *Context) UnifyOptions() []letters.Option {
	if ctx != nil && ctx.MaksuraToYeh {
		return []letters.Option{letters.MaksuraAs(arnorm.Yeh)}
	}
	return nil
}
