// Package day8 follows left/right instructions through the desert's
// network of nodes.
package day8

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/snowdrift/aoc"
	"tailscale.com/util/deephash"
)

const (
	Start = "AAA"
	End   = "ZZZ"
)

var (
	// ErrUnreachable is returned when a walk can never end. It is a parse
	// error: the input describes a network with no answer.
	ErrUnreachable = aoc.Errorf(0, "end unreachable")
	// ErrIrregularCycle is reported by CheckCycle when a ghost doesn't
	// revisit its end node at a fixed cadence.
	ErrIrregularCycle = errors.New("ghost does not cycle regularly")
)

// Map is the instruction route plus the network. Each node has exactly two
// successors: left first.
type Map struct {
	Route   string
	Network aoc.Graph[string]
}

// Next returns the node reached from node at step i.
func (m *Map) Next(node string, step int) (string, error) {
	side := 0
	if m.Route[step%len(m.Route)] == 'R' {
		side = 1
	}
	next, ok := m.Network.Succ(node, side)
	if !ok {
		return "", aoc.Errorf(0, "node %q has no way out", node)
	}
	return next, nil
}

type state struct {
	node string
	step int // position in the route
}

func (s state) key() deephash.Sum {
	return aoc.Hash(s)
}

// walk follows the route from start. Each time it lands on a node isEnd
// accepts, it calls atEnd with the node and the steps taken so far, and
// stops once atEnd returns true. It fails if the walk loops without
// landing on an end node.
func (m *Map) walk(start string, isEnd func(string) bool, atEnd func(node string, steps int) (done bool)) error {
	seen := make(map[deephash.Sum]bool)
	node := start
	for steps := 0; ; steps++ {
		k := state{node, steps % len(m.Route)}.key()
		if isEnd(node) {
			// Ends may legitimately revisit states.
			clear(seen)
		} else if seen[k] {
			return fmt.Errorf("walk from %s: %w", start, ErrUnreachable)
		}
		seen[k] = true
		next, err := m.Next(node, steps)
		if err != nil {
			return err
		}
		node = next
		if isEnd(node) && atEnd(node, steps+1) {
			return nil
		}
	}
}

// Parse parses the route and nodes:
//
//	LLR
//
//	AAA = (BBB, BBB)
func Parse(input string) (*Map, error) {
	lines := aoc.Lines(input)
	if len(lines) < 3 {
		return nil, aoc.Errorf(0, "want route, blank line and nodes")
	}
	m := &Map{Route: strings.TrimSpace(lines[0])}
	if m.Route == "" {
		return nil, aoc.Errorf(1, "empty route")
	}
	if i := strings.IndexFunc(m.Route, func(r rune) bool { return r != 'L' && r != 'R' }); i >= 0 {
		return nil, aoc.Errorf(1, "bad direction %q in route", m.Route[i])
	}
	if strings.TrimSpace(lines[1]) != "" {
		return nil, aoc.Errorf(2, "want blank line after route")
	}
	for i, l := range lines[2:] {
		line := i + 3
		name, lr, err := aoc.Cut(line, l, " = ")
		if err != nil {
			return nil, err
		}
		name = strings.TrimSpace(name)
		if m.Network.Nodes[name] && len(m.Network.Edges[name]) > 0 {
			return nil, aoc.Errorf(line, "node %q defined twice", name)
		}
		lr, ok := strings.CutPrefix(strings.TrimSpace(lr), "(")
		if ok {
			lr, ok = strings.CutSuffix(lr, ")")
		}
		if !ok {
			return nil, aoc.Errorf(line, "want (LEFT, RIGHT), got %q", lr)
		}
		left, right, err := aoc.Cut(line, lr, ", ")
		if err != nil {
			return nil, err
		}
		m.Network.AddEdge(name, strings.TrimSpace(left))
		m.Network.AddEdge(name, strings.TrimSpace(right))
	}
	if undef := m.Network.NodesWhere(func(n string) bool { return len(m.Network.Edges[n]) == 0 }); len(undef) > 0 {
		slices.Sort(undef)
		return nil, aoc.Errorf(0, "nodes referenced but not defined: %v", undef)
	}
	return m, nil
}

// PartOne counts the steps from AAA to ZZZ.
func PartOne(m *Map) (int, error) {
	if !m.Network.Nodes[Start] {
		return 0, fmt.Errorf("no %s node: %w", Start, ErrUnreachable)
	}
	if !m.Network.ReachableNodes(Start)[End] {
		return 0, fmt.Errorf("%s from %s: %w", End, Start, ErrUnreachable)
	}
	var n int
	err := m.walk(Start, func(s string) bool { return s == End }, func(_ string, steps int) bool {
		n = steps
		return true
	})
	return n, err
}

func isGhostEnd(s string) bool {
	return strings.HasSuffix(s, "Z")
}

// CycleLength returns the number of steps a ghost starting at start takes
// to first reach a node ending in Z.
func (m *Map) CycleLength(start string) (int, error) {
	var n int
	err := m.walk(start, isGhostEnd, func(_ string, steps int) bool {
		n = steps
		return true
	})
	return n, err
}

// CheckCycle reports whether the ghost starting at start is back on its
// first Z node after exactly CycleLength steps again. Only then do all its
// later arrivals fall on multiples of the length, which PartTwo assumes.
func (m *Map) CheckCycle(start string) error {
	var (
		first, second int
		end, next     string
	)
	err := m.walk(start, isGhostEnd, func(node string, steps int) bool {
		if first == 0 {
			first, end = steps, node
			return false
		}
		second, next = steps, node
		return true
	})
	if err != nil {
		return err
	}
	if second != 2*first || next != end {
		return fmt.Errorf("ghost from %s: reached %s after %d steps, then %s after %d: %w", start, end, first, next, second, ErrIrregularCycle)
	}
	return nil
}

// PartTwo counts the steps until ghosts starting from every node ending in
// A are all on nodes ending in Z at once: the LCM of each ghost's
// CycleLength.
func PartTwo(m *Map) (int, error) {
	starts := m.Network.NodesWhere(func(s string) bool { return strings.HasSuffix(s, "A") })
	if len(starts) == 0 {
		return 0, fmt.Errorf("no start nodes: %w", ErrUnreachable)
	}
	slices.Sort(starts)
	var cycles []int
	for _, s := range starts {
		n, err := m.CycleLength(s)
		if err != nil {
			return 0, err
		}
		if err := m.CheckCycle(s); err != nil {
			aoc.Debugf("warning: %v; the answer assumes it does", err)
		}
		aoc.Debugf("ghost %s: cycle of %d steps", s, n)
		cycles = append(cycles, n)
	}
	return aoc.LCM(cycles...), nil
}

func Solve(input string) (aoc.Answer, error) {
	m, err := Parse(input)
	if err != nil {
		return aoc.Answer{}, err
	}
	one, err := PartOne(m)
	if err != nil {
		return aoc.Answer{}, err
	}
	two, err := PartTwo(m)
	if err != nil {
		return aoc.Answer{}, err
	}
	return aoc.Answer{One: one, Two: two}, nil
}
