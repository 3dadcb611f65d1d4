package tashkil

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/arnorm/internal/fixtures"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/transform"
)

// checkFixture runs the operations ops on the first field of every line of
// a fixture file and compares the results to the remaining fields.
func checkFixture(t *testing.T, filename string, ops ...func(string) string) {
	tf := fixtures.OpenTestFile(filepath.Join("testdata", filename), t)
	if tf == nil {
		t.FailNow()
	}
	defer tf.Close()
	cnt := 0
	for tf.Scan() {
		if tf.FieldCount() != len(ops)+1 {
			t.Fatalf("%s:%d: expected %d fields, have %d", filename, tf.Line(),
				len(ops)+1, tf.FieldCount())
		}
		in := tf.Field(1)
		for k, op := range ops {
			if out := op(in); out != tf.Field(k+2) {
				t.Errorf("%s:%d: %s expected %+q, have %+q", filename, tf.Line(),
					tf.Comment(), tf.Field(k+2), out)
			}
		}
		cnt++
	}
	if err := tf.Err(); err != nil {
		t.Fatal(err)
	}
	if cnt == 0 {
		t.Errorf("%s: no test cases", filename)
	}
}

func TestRemoveTashkil(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	checkFixture(t, "remove_tashkil.txt", func(s string) string {
		return RemoveTashkil(s, false)
	})
	checkFixture(t, "remove_tashkil_shadda.txt", func(s string) string {
		return RemoveTashkil(s, true)
	})
}

func TestRemoverOnStream(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	text := strings.Repeat("كَتَبَ ", 2000)
	r := transform.NewReader(strings.NewReader(text), Remover(false))
	var b strings.Builder
	if _, err := io.Copy(&b, r); err != nil {
		t.Fatal(err)
	}
	if b.String() != strings.Repeat("كتب ", 2000) {
		t.Errorf("stream of %d bytes not stripped correctly", len(text))
	}
}

func TestLastTashkil(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	checkFixture(t, "last_tashkil.txt",
		func(s string) string { return LastTashkil(s, true) },
		func(s string) string { return LastTashkil(s, false) },
	)
}

func TestLastTashkilKeepsShadda(t *testing.T) {
	for _, remove := range []bool{true, false} {
		out := LastTashkil("ربّ حقّ", remove)
		if strings.Count(out, "ّ") != 2 {
			t.Errorf("LastTashkil(remove=%v) lost Shadda: %+q", remove, out)
		}
	}
}

func TestRemoveTashkilKeepsLetters(t *testing.T) {
	if out := RemoveTashkil("وَاب", false); out != "واب" {
		t.Errorf("expected %+q, have %+q", "واب", out)
	}
	for _, text := range []string{"مُحَمَّدٌ", "رَبِّ العَالَمِينَ", "a ّ b"} {
		without, with := RemoveTashkil(text, false), RemoveTashkil(text, true)
		if strings.ReplaceAll(with, "ّ", "") != without {
			t.Errorf("keeping Shadda should only add Shadda: %+q vs. %+q", with, without)
		}
	}
}
