package tree

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var bracketInputs = []string{
	"a",
	"S[a, b]",
	"S[a, S[a, b], b]",
	"NP[N, $0]",
	"?P[$0, ?'[?, T'[T]]]",
	`DP[D, NP[""]]`,
	`TP[DP[D, NP], T'[T, VP[V, DP[D, NP]]]]`,
	`"a b"[x]`,
}

func TestParseRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.tree")
	defer teardown()
	//
	tracer().SetTraceLevel(tracing.LevelInfo)
	for i, input := range bracketInputs {
		tr, err := Parse(input)
		if err != nil {
			t.Errorf("#%d: cannot parse %q: %v", i, input, err)
			continue
		}
		if tr.String() != input {
			t.Errorf("#%d: expected %q to print as itself, is %q", i, input, tr.String())
		}
		again, err := Parse(tr.String())
		if err != nil || !again.Equal(tr) {
			t.Errorf("#%d: re-parsing %s does not yield an equal tree", i, tr)
		}
	}
}

func TestParseStructure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.tree")
	defer teardown()
	//
	tr, err := Parse("  S[ a,S[a , b]\n, b ] ")
	if err != nil {
		t.Fatal(err)
	}
	expected := New("S", New("a"), New("S", New("a"), New("b")), New("b"))
	if !tr.Equal(expected) {
		t.Errorf("expected %s, have %s", expected, tr)
	}
	tr, err = Parse("NP[N, $12]")
	if err != nil {
		t.Fatal(err)
	}
	if p := tr.Gorn(1); p == nil || !p.Label.IsPlaceholder() || p.Label.Index() != 12 {
		t.Errorf("expected placeholder $12 at [1], have %v", p)
	}
	tr, err = Parse("S[]")
	if err != nil || !tr.IsLeaf() || tr.Symbol() != "S" {
		t.Errorf("expected S[] to parse as leaf S, have %v (%v)", tr, err)
	}
}

var illegalInputs = []string{
	"",
	"S[a, b",
	"S[a, b]]",
	"S[a,, b]",
	"S[a, ]",
	"a b",
	"S[a], b",
	"$0[a]",
	"S{a}",
	"[a]",
	"S[a][b]",
	"S[][a]",
	"S[a, T[b][c]]",
	"S[a] b",
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.tree")
	defer teardown()
	//
	for i, input := range illegalInputs {
		if tr, err := Parse(input); err == nil {
			t.Errorf("#%d: expected %q to be rejected, got %s", i, input, tr)
		} else {
			t.Logf("#%d: %q: %v", i, input, err)
		}
	}
}

func TestParseErrorSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.tree")
	defer teardown()
	//
	_, err := Parse("S[a, T[b")
	if err == nil || !strings.Contains(err.Error(), "(6…8)") || !strings.Contains(err.Error(), "of T") {
		t.Errorf("expected unclosed '[' of T reported at (6…8), have %v", err)
	}
	_, err = Parse("S[a][b]")
	if err == nil || !strings.Contains(err.Error(), "(4…5)") {
		t.Errorf("expected second '[' reported at (4…5), have %v", err)
	}
	if _, err = Parse(""); err == nil || err.Error() != "empty input" {
		t.Errorf("expected empty input to be reported, have %v", err)
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected MustParse to panic on illegal input")
		}
	}()
	MustParse("S[a")
}
