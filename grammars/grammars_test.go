package grammars

import (
	"testing"

	"github.com/npillmayer/arbor/tree"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestValidity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.bottomup")
	defer teardown()
	//
	tracer().SetTraceLevel(tracing.LevelInfo)
	for name, G := range Acceptors {
		if !G().IsValid() {
			t.Errorf("expected acceptor %s to be valid", name)
		}
	}
	for name, T := range Transducers {
		if !T().IsValid() {
			t.Errorf("expected transducer %s to be valid", name)
		}
	}
}

func TestSamples(t *testing.T) {
	for _, name := range SampleNames() {
		if Sample(name) == nil {
			t.Errorf("cannot parse sample %s", name)
		}
	}
	if Sample("no-such-sample") != nil {
		t.Errorf("expected nil for unknown sample")
	}
}

func TestAcceptors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.bottomup")
	defer teardown()
	//
	for i, x := range []struct {
		grammar string
		sample  string
		accept  bool
	}{
		{"anbn", "anbn-1", true},
		{"anbn", "anbn-2", true},
		{"anbn", "anbn-3", true},
		{"anbn", "anbn-3x", false},
		{"simple", "simple", true},
		{"simple", "gb-np-n", false},
		{"gb", "gb-np-n", true},
		{"gb", "gb-np-d-n", true},
		{"gb", "gb-simple-trans", true},
		{"gb", "min-dp-d-n", false},
		{"minimalist", "min-dp-leaf", true},
		{"minimalist", "min-dp-d-n", true},
		{"minimalist", "min-simple-trans", true},
		{"minimalist", "gb-np-n", false},
	} {
		G := Acceptors[x.grammar]()
		if G.Recognizes(Sample(x.sample)) != x.accept {
			t.Errorf("#%d: expected %s.Recognizes(%s) = %v", i, x.grammar, x.sample, x.accept)
		}
	}
	if !Simple().Recognizes(tree.MustParse("NP[Det, N]")) {
		t.Errorf("expected simple grammar to accept a bare noun phrase")
	}
}

func TestReverseAnBn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.bottomup")
	defer teardown()
	//
	T := ReverseAnBn()
	out, ok := T.Transform(Sample("anbn-2"))
	if !ok || out.String() != "S[b, S[b, a], a]" {
		t.Errorf("expected S[b, S[b, a], a], have %s", out)
	}
	if _, ok := T.Transform(Sample("anbn-3x")); ok {
		t.Errorf("expected no output for tree not in a^n b^n")
	}
}

var gbToMin = []struct {
	sample string
	output string
}{
	{"gb-np-n", "DP[D, NP]"},
	{"gb-np-d-n", "DP[D, NP]"},
	{"gb-ip-simple-trans", "TP[DP[D, NP], T'[T, VP[V, DP[D, NP]]]]"},
	{"gb-xp-singleton", "XP"},
	{"gb-xp-w-comp", "XP[X, YP]"},
	{"gb-xp-w-comp-spec", "XP[ZP, X'[X, YP]]"},
	{"gb-xp-w-spec-no-comp", "?P[ZP, ?'[?, XP]]"},
	{"gb-pp-comp-cp-comp", "PP[P, CP]"},
}

func TestGBToMinimalist(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.bottomup")
	defer teardown()
	//
	T := GBToMinimalist()
	for i, x := range gbToMin {
		out, ok := T.Transform(Sample(x.sample))
		if !ok || out.String() != x.output {
			t.Errorf("#%d: expected %s → %s, have %s", i, x.sample, x.output, out)
		}
	}
}

func TestGBToMinimalistOutputIsMinimalist(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.bottomup")
	defer teardown()
	//
	T := GBToMinimalist()
	M := MinimalistBPS()
	for _, name := range []string{"gb-np-n", "gb-np-d-n", "gb-ip-simple-trans"} {
		out, ok := T.Transform(Sample(name))
		if !ok {
			t.Errorf("no output for %s", name)
			continue
		}
		if !M.Recognizes(out) {
			t.Errorf("expected output %s for %s to be a Minimalist tree", out, name)
		}
		if !out.Equal(tree.MustParse(out.String())) {
			t.Errorf("output %s does not survive printing", out)
		}
	}
}
