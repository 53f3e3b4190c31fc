// Package day5 walks seeds through the almanac's category maps to find
// the nearest location.
package day5

import (
	"math"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/snowdrift/aoc"
	"golang.org/x/sync/errgroup"
)

// Conversion maps [Src, Src+Size) onto [Dst, Dst+Size).
type Conversion struct {
	Dst, Src, Size int
}

func (c Conversion) source() Range {
	return Range{Start: c.Src, End: c.Src + c.Size}
}

// CategoryMap converts values of category From into category To.
type CategoryMap struct {
	From, To    string
	Conversions []Conversion
}

// Convert maps v through the first conversion whose source holds it. Values
// no conversion holds map to themselves.
func (m CategoryMap) Convert(v int) int {
	for _, c := range m.Conversions {
		if c.source().Contains(v) {
			return v - c.Src + c.Dst
		}
	}
	return v
}

// ConvertRanges maps every value of rs through m, returning the results as
// ranges. Each range is split at the conversion boundaries it crosses.
func (m CategoryMap) ConvertRanges(rs []Range) []Range {
	var out []Range
	pending := rs
	for _, c := range m.Conversions {
		var rest []Range
		for _, r := range pending {
			in := r.Intersect(c.source())
			if in.Empty() {
				rest = append(rest, r)
				continue
			}
			out = append(out, Range{Start: in.Start - c.Src + c.Dst, End: in.End - c.Src + c.Dst})
			if r.Start < in.Start {
				rest = append(rest, Range{Start: r.Start, End: in.Start})
			}
			if in.End < r.End {
				rest = append(rest, Range{Start: in.End, End: r.End})
			}
		}
		pending = rest
	}
	return append(out, pending...)
}

// Range is the half-open interval [Start, End).
type Range struct {
	Start, End int
}

func (r Range) Len() int {
	return max(r.End-r.Start, 0)
}

func (r Range) Empty() bool {
	return r.End <= r.Start
}

func (r Range) Contains(v int) bool {
	return v >= r.Start && v < r.End
}

func (r Range) Intersect(o Range) Range {
	return Range{Start: max(r.Start, o.Start), End: min(r.End, o.End)}
}

type Almanac struct {
	Seeds []int
	Maps  []CategoryMap
}

// Location maps seed through every map in order.
func (a *Almanac) Location(seed int) int {
	v := seed
	for _, m := range a.Maps {
		v = m.Convert(v)
	}
	return v
}

// SeedRanges reads the seeds as (start, length) pairs. Empty ranges are
// dropped.
func (a *Almanac) SeedRanges() ([]Range, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, aoc.Errorf(1, "odd number of seeds (%d) can't form ranges", len(a.Seeds))
	}
	var out []Range
	for i := 0; i < len(a.Seeds); i += 2 {
		start, n := a.Seeds[i], a.Seeds[i+1]
		if n < 0 {
			return nil, aoc.Errorf(1, "seed range %d has negative length %d", i/2, n)
		}
		if n > 0 {
			out = append(out, Range{Start: start, End: start + n})
		}
	}
	return out, nil
}

// ErrNoSeeds is returned when there is nothing to locate.
var ErrNoSeeds = aoc.Errorf(1, "no seeds")

// Parse parses an almanac:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// Each map must start from the category the previous one ends in; the
// first starts from seed.
func Parse(input string) (*Almanac, error) {
	lines := aoc.Lines(input)
	if len(lines) == 0 {
		return nil, aoc.Errorf(0, "empty almanac")
	}
	seeds, err := aoc.CutPrefix(1, lines[0], "seeds:")
	if err != nil {
		return nil, err
	}
	a := &Almanac{}
	if a.Seeds, err = aoc.ParseInts(1, seeds); err != nil {
		return nil, err
	}
	from := "seed"
	for i, l := range lines[1:] {
		line := i + 2
		switch {
		case strings.TrimSpace(l) == "":
		case strings.HasSuffix(l, " map:"):
			src, dst, err := aoc.Cut(line, strings.TrimSuffix(l, " map:"), "-to-")
			if err != nil {
				return nil, err
			}
			if src != from {
				return nil, aoc.Errorf(line, "map from %q does not follow %q", src, from)
			}
			a.Maps = append(a.Maps, CategoryMap{From: src, To: dst})
			from = dst
		default:
			if len(a.Maps) == 0 {
				return nil, aoc.Errorf(line, "conversion %q before any map header", l)
			}
			nums, err := aoc.ParseInts(line, l)
			if err != nil {
				return nil, err
			}
			if len(nums) != 3 {
				return nil, aoc.Errorf(line, "want 3 numbers, got %d", len(nums))
			}
			if nums[2] < 0 {
				return nil, aoc.Errorf(line, "negative range size %d", nums[2])
			}
			m := &a.Maps[len(a.Maps)-1]
			m.Conversions = append(m.Conversions, Conversion{Dst: nums[0], Src: nums[1], Size: nums[2]})
		}
	}
	return a, nil
}

// PartOne returns the lowest location of any seed.
func PartOne(a *Almanac) (int, error) {
	if len(a.Seeds) == 0 {
		return 0, ErrNoSeeds
	}
	best := math.MaxInt
	for _, s := range a.Seeds {
		best = min(best, a.Location(s))
	}
	return best, nil
}

// PartTwo returns the lowest location of any seed in the seed ranges,
// pushing whole ranges through the maps.
func PartTwo(a *Almanac) (int, error) {
	rs, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	if len(rs) == 0 {
		return 0, ErrNoSeeds
	}
	for _, m := range a.Maps {
		rs = m.ConvertRanges(rs)
		aoc.Debugf("%s-to-%s: %d ranges", m.From, m.To, len(rs))
	}
	best := math.MaxInt
	for _, r := range rs {
		best = min(best, r.Start)
	}
	return best, nil
}

// PartTwoBruteForce is PartTwo computed by locating every seed, one
// worker per seed range.
func PartTwoBruteForce(a *Almanac) (int, error) {
	rs, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	if len(rs) == 0 {
		return 0, ErrNoSeeds
	}

	var (
		mu     sync.Mutex
		minima []int
	)
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, r := range rs {
		i, r := i, r
		g.Go(func() error {
			best := math.MaxInt
			for s := r.Start; s < r.End; s++ {
				best = min(best, a.Location(s))
			}
			aoc.Debugf("seed range %d: %s seeds, lowest location %d", i, humanize.Comma(int64(r.Len())), best)
			mu.Lock()
			defer mu.Unlock()
			minima = append(minima, best)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return slices.Min(minima), nil
}

func Solve(input string) (aoc.Answer, error) {
	a, err := Parse(input)
	if err != nil {
		return aoc.Answer{}, err
	}
	one, err := PartOne(a)
	if err != nil {
		return aoc.Answer{}, err
	}
	two, err := PartTwo(a)
	if err != nil {
		return aoc.Answer{}, err
	}
	return aoc.Answer{One: one, Two: two}, nil
}
