package main

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/arbor/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLeveledList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.cli")
	defer teardown()
	//
	ll := leveledList(tree.MustParse("S[a, S[a, b], b]"))
	expected := []struct {
		level int
		text  string
	}{{0, "S"}, {1, "a"}, {1, "S"}, {2, "a"}, {2, "b"}, {1, "b"}}
	if len(ll) != len(expected) {
		t.Fatalf("expected %d items, have %d", len(expected), len(ll))
	}
	for i, x := range expected {
		if ll[i].Level != x.level || ll[i].Text != x.text {
			t.Errorf("#%d: expected %s at level %d, have %s at %d", i, x.text, x.level, ll[i].Text, ll[i].Level)
		}
	}
}

func TestEval(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.cli")
	defer teardown()
	//
	intp := &Intp{}
	if err := intp.selectGrammar("gb"); err != nil {
		t.Fatal(err)
	}
	if err := intp.selectTransducer("gb2min"); err != nil {
		t.Fatal(err)
	}
	if _, err := intp.Eval("IP[NP[N'[N]], I'[I, VP[V'[V]]]]"); err != nil {
		t.Fatal(err)
	}
	if intp.lastOutput == nil || intp.lastOutput.String() != "TP[DP[D, NP], T'[T, VP]]" {
		t.Errorf("unexpected transducer output %s", intp.lastOutput)
	}
	for _, line := range []string{":grammar minimalist", ":transducer none", ":debug on", ":list", ":valid", ":sample min-dp-d-n"} {
		if quit, err := intp.Eval(line); quit || err != nil {
			t.Errorf("command %q failed: %v", line, err)
		}
	}
	if intp.transducer != nil || !intp.debug || intp.lastTree.String() != "DP[D, NP]" {
		t.Errorf("commands did not take effect")
	}
	for _, line := range []string{":nosuch", ":", ":grammar", ":grammar nosuch", "S[a", ":sample nosuch", ":debug maybe"} {
		if _, err := intp.Eval(line); err == nil {
			t.Errorf("expected %q to fail", line)
		}
	}
	if quit, _ := intp.Eval(":quit"); !quit {
		t.Errorf("expected :quit to quit")
	}
}

func TestWorkspace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.cli")
	defer teardown()
	//
	intp := &Intp{}
	intp.selectGrammar("minimalist")
	intp.selectTransducer("gb2min")
	for _, line := range []string{":let np NP[DP[D'[D]], N'[N]]", ":eval np", ":names"} {
		if _, err := intp.Eval(line); err != nil {
			t.Errorf("command %q failed: %v", line, err)
		}
	}
	it := intp.workspace().Resolve(lastOutputName)
	if it == nil || it.String() != "DP[D, NP]" {
		t.Fatalf("expected 'it' to be bound to DP[D, NP], is %v", it)
	}
	if !intp.acceptor.Recognizes(it) {
		t.Errorf("expected minimalist grammar to accept %s", it)
	}
	if _, err := intp.Eval(":eval nosuch"); err == nil {
		t.Errorf("expected evaluation of undefined name to fail")
	}
	if _, err := intp.workspace().Define("", it); err == nil {
		t.Errorf("expected empty name to be rejected")
	}
	if old, _ := intp.workspace().Define("np", it); old == nil || old.String() != "NP[DP[D'[D]], N'[N]]" {
		t.Errorf("expected redefinition to return the old tree, have %v", old)
	}
}

func TestSaveAndLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.cli")
	defer teardown()
	//
	intp := &Intp{}
	intp.selectGrammar("simple")
	intp.selectTransducer("reverse-anbn")
	dir := t.TempDir()
	fp := intp.transducer.Fingerprint()
	if _, err := intp.Eval(":save " + dir + "/reverse.yaml"); err != nil {
		t.Fatal(err)
	}
	intp.selectTransducer("gb2min")
	if _, err := intp.Eval(":load " + dir + "/reverse.yaml"); err != nil {
		t.Fatal(err)
	}
	if intp.transducer.Fingerprint() != fp {
		t.Errorf("expected saved and loaded transducer to be equal")
	}
	if _, err := intp.Eval(":load " + dir + "/nosuch.yaml"); err == nil {
		t.Errorf("expected loading a non-existing file to fail")
	}
}

func TestExport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.cli")
	defer teardown()
	//
	intp := &Intp{}
	intp.selectGrammar("anbn")
	intp.selectTransducer("reverse-anbn")
	dir := t.TempDir()
	for _, x := range []struct{ line, file, content string }{
		{":dot " + dir + "/a.dot", "a.dot", "digraph"},
		{":dot acceptor " + dir + "/a2.dot", "a2.dot", "digraph"},
		{":dot transducer " + dir + "/t.dot", "t.dot", "S / S[$1, $0]"},
		{":html transducer " + dir + "/t.html", "t.html", "S[$2, $1, $0]"},
		{":html " + dir + "/a.html", "a.html", "<table"},
	} {
		if _, err := intp.Eval(x.line); err != nil {
			t.Errorf("command %q failed: %v", x.line, err)
			continue
		}
		b, err := ioutil.ReadFile(filepath.Join(dir, x.file))
		if err != nil || !strings.Contains(string(b), x.content) {
			t.Errorf("expected %s to contain %q, have %v\n%s", x.file, x.content, err, string(b))
		}
	}
	if _, err := intp.Eval(":dot parser " + dir + "/p.dot"); err == nil {
		t.Errorf("expected unknown export target to fail")
	}
	intp.selectTransducer("none")
	if _, err := intp.Eval(":html transducer " + dir + "/none.html"); err == nil {
		t.Errorf("expected export of missing transducer to fail")
	}
}
