package dft

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/bottomup"
	"github.com/npillmayer/arbor/tree"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func reverse() *Transducer {
	b := NewBuilder("reverse")
	b.States("qa", "qb", "qS").Symbols("a", "b", "S").Finals("qS")
	b.Leaf("a").Goto("qa", "a")
	b.Leaf("b").Goto("qb", "b")
	b.From("qa", "qb").On("S").Goto("qS", "S[$1, $0]")
	b.From("qa", "qS", "qb").On("S").Goto("qS", "S[$2, $1, $0]")
	return b.Transducer()
}

func TestReverseAnBn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.bottomup")
	defer teardown()
	//
	tracer().SetTraceLevel(tracing.LevelInfo)
	T := reverse()
	if !T.IsValid() {
		t.Errorf("expected reversing transducer to be valid")
	}
	for i, x := range []struct{ input, output string }{
		{"a", ""},
		{"b", ""},
		{"S[a, b]", "S[b, a]"},
		{"S[a, S[a, b], b]", "S[b, S[b, a], a]"},
		{"S[a, S[a, S[a, b], b], b]", "S[b, S[b, S[b, a], a], a]"},
		{"S[a, b, S[a, S[a, b], b]]", ""},
	} {
		out, ok := T.Transform(tree.MustParse(x.input))
		if x.output == "" {
			if ok {
				t.Errorf("#%d: expected %s to be rejected, have %s", i, x.input, out)
			}
			continue
		}
		if !ok || out.String() != x.output {
			t.Errorf("#%d: expected %s → %s, have %s", i, x.input, x.output, out)
		}
	}
}

func nbar(finals ...string) *Transducer {
	b := NewBuilder("nbar")
	b.States("qN", "qNbar", "qXP").Symbols("N", "N'").Finals(finals...)
	b.Leaf("N").Goto("qN", "N")
	b.From("qN").On("N'").Goto("qNbar", "NP[N, $0]")
	return b.Transducer()
}

func TestOutputOnAccept(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.bottomup")
	defer teardown()
	//
	input := tree.MustParse("N'[N]")
	out, ok := nbar("qNbar").Transform(input)
	if !ok || out.String() != "NP[N, N]" {
		t.Errorf("expected N'[N] → NP[N, N], have %s", out)
	}
	T := nbar("qXP")
	if out, ok := T.Transform(input); ok {
		t.Errorf("expected no output for non-accepting root, have %s", out)
	}
	q, out, ok := T.Process(input)
	if !ok || q != "qNbar" || out.String() != "NP[N, N]" {
		t.Errorf("expected Process to reach qNbar with NP[N, N], have %s, %s", q, out)
	}
	if _, _, ok := T.Process(tree.MustParse("N'[N, N]")); ok {
		t.Errorf("expected no match for N'[N, N]")
	}
}

func TestNoSharing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.bottomup")
	defer teardown()
	//
	b := NewBuilder("dup")
	b.States("qa", "qP").Symbols("a", "P").Finals("qP")
	b.Leaf("a").Goto("qa", "x[y]")
	b.From("qa").On("P").Goto("qP", "P[$0, $0]")
	T := b.Transducer()
	input := tree.MustParse("P[a]")
	out, ok := T.Transform(input)
	if !ok || out.String() != "P[x[y], x[y]]" {
		t.Fatalf("expected P[x[y], x[y]], have %s", out)
	}
	if out.Children[0] == out.Children[1] || out.Children[0].Children[0] == out.Children[1].Children[0] {
		t.Errorf("output must not share subtrees")
	}
	out.Children[0].Children[0].Label = tree.Literal("z") // must not affect templates
	again, _ := T.Transform(input)
	if again.String() != "P[x[y], x[y]]" {
		t.Errorf("templates have been modified through an output: %s", again)
	}
}

func TestPassThrough(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.bottomup")
	defer teardown()
	//
	b := NewBuilder("pass")
	b.States("q").Symbols("a", "X").Finals("q")
	b.Leaf("a").Goto("q", `""`)
	b.From("q").On("X").Goto("q", "$0")
	b.From("q", "q").On("X").Goto("q", "Y[$1]")
	T := b.Transducer()
	out, ok := T.Transform(tree.MustParse("X[X[a], X[a, X[a]]]"))
	if !ok || out.String() != `Y[Y[""]]` {
		t.Errorf(`expected Y[Y[""]], have %s`, out)
	}
}

func TestDebugAndObserve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.bottomup")
	defer teardown()
	//
	T := reverse()
	cnt := 0
	input := tree.MustParse("S[a, S[a, b], b]")
	_, ok := T.Transform(input, bottomup.Debug(true), bottomup.Observe(func(bottomup.Step) {
		cnt++
	}))
	if !ok || cnt != input.Size() {
		t.Errorf("expected %d steps, have %d", input.Size(), cnt)
	}
}

func TestValidity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.bottomup")
	defer teardown()
	//
	states := arbor.States("qa", "qS")
	alpha := []string{"a", "S"}
	valid := []Rule{{Children: arbor.Tuple{}, Label: "a", Target: "qa", Output: tree.New("a")}}
	for i, r := range []Rule{
		{Children: arbor.States("qa"), Label: "S", Target: "qS", Output: tree.MustParse("S[$1]")},
		{Children: arbor.States("qa"), Label: "S", Target: "qS",
			Output: &tree.Tree{Label: tree.Placeholder(0), Children: []*tree.Tree{tree.New("x")}}},
		{Children: arbor.States("qa"), Label: "S", Target: "qS", Output: nil},
		{Children: arbor.States("qx"), Label: "S", Target: "qS", Output: tree.New("S")},
		{Children: arbor.States("qa"), Label: "T", Target: "qS", Output: tree.New("S")},
		{Children: arbor.States("qa"), Label: "S", Target: "qT", Output: tree.New("S")},
	} {
		T := New("T", states, alpha, states[1:], append(valid, r))
		if T.IsValid() {
			t.Errorf("#%d: expected rule %s to make transducer invalid", i, r)
		}
	}
	T := New("T", states, alpha, states[1:], append(valid,
		Rule{Children: arbor.States("qa"), Label: "S", Target: "qS", Output: tree.MustParse("S[$0]")}))
	if !T.IsValid() {
		t.Errorf("expected transducer to be valid")
	}
}

// outOfRange has a template referring to a second child on a unary node.
func outOfRange() *Transducer {
	states := arbor.States("qa", "qS")
	return New("out-of-range", states, []string{"a", "S"}, states[1:], []Rule{
		{Children: arbor.Tuple{}, Label: "a", Target: "qa", Output: tree.New("a")},
		{Children: arbor.States("qa"), Label: "S", Target: "qS", Output: tree.MustParse("S[$1]")},
	})
}

func TestTemplateOutOfRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.bottomup")
	defer teardown()
	//
	T := outOfRange()
	if T.IsValid() {
		t.Errorf("expected transducer with $1 on unary node to be invalid")
	}
	out, ok := T.Transform(tree.MustParse("S[a]"))
	if ok || out != nil {
		t.Errorf("expected no output for out-of-range placeholder, have %s", out)
	}
	if _, _, ok := T.Process(tree.MustParse("S[a]")); ok {
		t.Errorf("expected node with out-of-range placeholder to fail")
	}
}

func TestTemplateOutOfRangePanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.bottomup")
	defer teardown()
	//
	gconf.Initialize(testconfig.Conf{"panic-on-invalid-template": true})
	defer gconf.Initialize(testconfig.Conf{})
	T := outOfRange()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected out-of-range placeholder to panic")
		}
	}()
	T.Transform(tree.MustParse("S[a]"))
}

func TestOverrideAndFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.bottomup")
	defer teardown()
	//
	b := NewBuilder("over")
	b.States("q").Symbols("a").Finals("q")
	b.Leaf("a").Goto("q", "x")
	b.Leaf("a").Goto("q", "y")
	T1 := b.Transducer()
	if out, _ := T1.Transform(tree.New("a")); out.String() != "y" {
		t.Errorf("expected later rule to win, have %s", out)
	}
	T2 := FromMap("other", arbor.States("q"), []string{"a"}, arbor.States("q"),
		map[bottomup.Key]Result{bottomup.MakeKey("a"): {State: "q", Template: tree.New("y")}})
	if T1.Fingerprint() != T2.Fingerprint() {
		t.Errorf("expected equal fingerprints")
	}
	T3 := FromMap("other", arbor.States("q"), []string{"a"}, arbor.States("q"),
		map[bottomup.Key]Result{bottomup.MakeKey("a"): {State: "q", Template: tree.New("x")}})
	if T1.Fingerprint() == T3.Fingerprint() {
		t.Errorf("expected different fingerprints for different templates")
	}
}

func TestPrinting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.bottomup")
	defer teardown()
	//
	T := reverse()
	T.Dump()
	if s := T.String(); !strings.Contains(s, "(qa, qb) S → qS, S[$1, $0]") {
		t.Errorf("unexpected transducer string\n%s", s)
	}
	rules := T.Rules()
	rules[0].Output.AddSubtree(tree.New("junk"))
	if T.Rules()[0].Output.Size() != rules[0].Output.Size()-1 {
		t.Errorf("rules should hand out copies of templates")
	}
	var dot bytes.Buffer
	if err := T.ToGraphViz(&dot); err != nil || !strings.Contains(dot.String(), `S / S[$1, $0]`) {
		t.Errorf("unexpected Graphviz output: %v\n%s", err, dot.String())
	}
	var html bytes.Buffer
	if err := T.TableAsHTML(&html); err != nil || !strings.Contains(html.String(), "qS, S[$2, $1, $0]") {
		t.Errorf("unexpected HTML output: %v\n%s", err, html.String())
	}
}
