package aoc

import (
	"errors"
	"reflect"
	"slices"
	"strconv"
	"testing"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=142

1abc2
pqr3stu8vwx
*/`,
			want: sample{
				want: "142",
				input: `1abc2
pqr3stu8vwx
`,
			},
		},
		{
			comment: `// want=281`,
			want: sample{
				want: "281",
			},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample(tt.comment); !ok || got != tt.want {
			t.Errorf("parseSample(%q) = %v, want %v", tt.comment, got, tt.want)
		}
	}
	if _, ok := parseSample("// Package foo does things."); ok {
		t.Errorf("parseSample matched a comment without want=")
	}
}

const samplesSrc = `package main

/*
want=2

a
b
*/
func (s solver) D1p1() any { return 2 }

// want=3
func (s solver) D1p2() any { return 3 }

// D2p1 has no sample.
func (s solver) D2p1() any { return 0 }
`

func TestExtractSamples(t *testing.T) {
	got := extractSamples([]byte(samplesSrc))
	want := map[string]sample{
		"D1p1": {want: "2", input: "a\nb\n"},
		"D1p2": {want: "3", input: "a\nb\n"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("extractSamples = %v, want %v", got, want)
	}
}

type testSolver struct {
	*Puzzle
}

func (s testSolver) D2p1() any { return "two" }
func (s testSolver) D10p2() any { return s.SampleMode }
func (s testSolver) D10p1() any { return 1 }
func (s testSolver) Helper() any { return nil }

func TestExtractMethods(t *testing.T) {
	days := extractMethods(&testSolver{})
	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}
	d := days[10]
	var names []string
	for _, p := range d.parts {
		names = append(names, p.Name)
	}
	if want := []string{"D10p1", "D10p2"}; !slices.Equal(names, want) {
		t.Errorf("day 10 parts = %v, want %v", names, want)
	}
	if got := days[2].parts[0].fn(); got != "two" {
		t.Errorf("D2p1() = %v, want two", got)
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\nb\n", []string{"a", "b"}},
		{"a\r\n\r\nb", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		if got := Lines(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("Lines(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	_, err := ParseInts(3, "1 2 x")
	if !errors.Is(err, ErrParse) {
		t.Fatalf("ParseInts error %v does not match ErrParse", err)
	}
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Line != 3 {
		t.Errorf("ParseInts error = %#v, want line 3", err)
	}
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Errorf("ParseInts error %v does not wrap strconv.ErrSyntax", err)
	}

	if _, err := CutPrefix(1, "Card 1", "Game "); !errors.Is(err, ErrParse) {
		t.Errorf("CutPrefix error = %v", err)
	}
	if got := Errorf(0, "bad").Error(); got != "parse error: bad" {
		t.Errorf("Errorf(0) = %q", got)
	}
	if got := Errorf(7, "bad %d", 1).Error(); got != "parse error on line 7: bad 1" {
		t.Errorf("Errorf(7) = %q", got)
	}
}

func TestExtrapolate(t *testing.T) {
	tests := []struct {
		in             []int
		next, previous int
	}{
		{[]int{0, 3, 6, 9, 12, 15}, 18, -3},
		{[]int{1, 3, 6, 10, 15, 21}, 28, 0},
		{[]int{10, 13, 16, 21, 30, 45}, 68, 5},
		{[]int{7}, 7, 7},
	}
	for _, tt := range tests {
		if got := Extrapolate(tt.in, true); got != tt.next {
			t.Errorf("Extrapolate(%v, true) = %v, want %v", tt.in, got, tt.next)
		}
		if got := Extrapolate(tt.in, false); got != tt.previous {
			t.Errorf("Extrapolate(%v, false) = %v, want %v", tt.in, got, tt.previous)
		}
	}
}

func TestLCM(t *testing.T) {
	tests := []struct {
		in   []int
		want int
	}{
		{[]int{6}, 6},
		{[]int{2, 3}, 6},
		{[]int{4, 6, 10}, 60},
		{[]int{20093, 12169, 22357, 14999, 13301, 17263}, 10371555451871},
	}
	for _, tt := range tests {
		if got := LCM(tt.in...); got != tt.want {
			t.Errorf("LCM(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSolveQuad(t *testing.T) {
	hi, lo, ok := SolveQuad(1, -7, 10)
	if !ok || hi != 5 || lo != 2 {
		t.Errorf("SolveQuad(1, -7, 10) = %v, %v, %v; want 5, 2, true", hi, lo, ok)
	}
	if _, _, ok := SolveQuad(1, 0, 1); ok {
		t.Errorf("SolveQuad(1, 0, 1) found real roots")
	}
}

func TestByteGrid(t *testing.T) {
	g := ByteGrid([]string{"ab", "cde"}, '.')
	if want := (Grid[byte]{[]byte("ab."), []byte("cde")}); !reflect.DeepEqual(g, want) {
		t.Errorf("ByteGrid = %q, want %q", g, want)
	}
}

func TestHash(t *testing.T) {
	type state struct {
		node string
		step int
	}
	if Hash(state{"AAA", 1}) != Hash(state{"AAA", 1}) {
		t.Errorf("equal values hash differently")
	}
	if Hash(state{"AAA", 1}) == Hash(state{"AAA", 2}) {
		t.Errorf("different values hash the same")
	}
	g := ByteGrid([]string{"ab", "cd"}, '.')
	h := Hash(g)
	g[1][1] = 'x'
	if Hash(g) == h {
		t.Errorf("grid hash ignores its contents")
	}
}

func TestGridAtOk(t *testing.T) {
	g := Grid[byte]{[]byte("abc"), []byte("d")}
	for _, p := range []Pt{{-1, 0}, {0, -1}, {3, 0}, {1, 1}, {0, 2}} {
		if _, ok := g.AtOk(p); ok {
			t.Errorf("AtOk(%v) = ok", p)
		}
	}
	if v, ok := g.AtOk(Pt{0, 1}); !ok || v != 'd' {
		t.Errorf("AtOk({0 1}) = %q, %v", v, ok)
	}
}

func TestGraph(t *testing.T) {
	var g Graph[string]
	g.AddEdge("AAA", "BBB")
	g.AddEdge("AAA", "CCC")
	g.AddEdge("BBB", "AAA")
	g.AddNode("ZZZ")

	if v, ok := g.Succ("AAA", 1); !ok || v != "CCC" {
		t.Errorf("Succ(AAA, 1) = %v, %v", v, ok)
	}
	if _, ok := g.Succ("CCC", 0); ok {
		t.Errorf("Succ(CCC, 0) found an edge")
	}
	r := g.ReachableNodes("BBB")
	if !r["AAA"] || !r["BBB"] || !r["CCC"] || r["ZZZ"] {
		t.Errorf("ReachableNodes(BBB) = %v", r)
	}
	ends := g.NodesWhere(func(s string) bool { return s[2] == 'Z' || s[2] == 'C' })
	slices.Sort(ends)
	if want := []string{"CCC", "ZZZ"}; !slices.Equal(ends, want) {
		t.Errorf("NodesWhere = %v, want %v", ends, want)
	}
}
