package cfg

import (
	"reflect"
	"testing"
)

func block(label string, lines ...string) Block {
	return Block{Label: label, Stmts: stmts(lines...)}
}

func TestBuildEdgesConditional(t *testing.T) {
	// x = 1; if (x > 0) { y = 2; } z = 3;
	blocks := []Block{
		block("B0", "x = 1;"),
		block("B1", "if (x > 0) {"),
		block("B2", "y = 2; }"),
		block("B3", "z = 3;"),
	}

	got := BuildEdges(blocks)
	want := []Edge{
		{From: "B0", To: "B1", Kind: EdgePlain},
		{From: "B1", To: "B2", Kind: EdgeTrue},
		{From: "B1", To: "B3", Kind: EdgeFalse},
		{From: "B2", To: "B3", Kind: EdgePlain},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildEdges = %v, want %v", got, want)
	}
}

func TestBuildEdgesLoop(t *testing.T) {
	blocks := []Block{
		block("B0", "while (n > 0) {"),
		block("B1", "n = n - 1; }"),
		block("B2", "return n;"),
	}

	got := BuildEdges(blocks)
	want := []Edge{
		{From: "B0", To: "B1", Kind: EdgeTrue},
		{From: "B1", To: "B0", Kind: EdgeBack},
		{From: "B0", To: "B2", Kind: EdgeLoopExit},
		{From: "B1", To: "B2", Kind: EdgePlain},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildEdges = %v, want %v", got, want)
	}
}

func TestBuildEdgesLoopWithoutExitBlock(t *testing.T) {
	blocks := []Block{
		block("B0", "while (n > 0) {"),
		block("B1", "n = n - 1; }"),
	}

	got := BuildEdges(blocks)
	want := []Edge{
		{From: "B0", To: "B1", Kind: EdgeTrue},
		{From: "B1", To: "B0", Kind: EdgeBack},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildEdges = %v, want %v", got, want)
	}
}

func TestBuildEdgesElse(t *testing.T) {
	blocks := []Block{
		block("B0", "} else {"),
		block("B1", "y = 3;"),
	}

	got := BuildEdges(blocks)
	want := []Edge{{From: "B0", To: "B1", Kind: EdgePlain}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildEdges = %v, want %v", got, want)
	}
}

func TestBuildEdgesReturnIsTerminal(t *testing.T) {
	blocks := []Block{
		block("B0", "return x;"),
		block("B1", "y = 2;"),
	}

	for _, e := range BuildEdges(blocks) {
		if e.From == "B0" {
			t.Errorf("return block must not emit a forward edge, got %v", e)
		}
	}
}

func TestBuildEdgesNoNextBlock(t *testing.T) {
	if got := BuildEdges([]Block{block("B0", "x = 1;")}); len(got) != 0 {
		t.Errorf("single block graph must have no edges, got %v", got)
	}
}

func TestDedupeEdges(t *testing.T) {
	e := Edge{From: "B0", To: "B1", Kind: EdgeTrue}
	got := dedupeEdges([]Edge{e, {From: "B1", To: "B0", Kind: EdgeBack}, e})
	if len(got) != 2 {
		t.Fatalf("got %d edges, want 2", len(got))
	}
	if got[0] != e {
		t.Errorf("dedupe must keep first-emission order, got %v first", got[0])
	}
}
