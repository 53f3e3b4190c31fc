package day5

import (
	"math/rand"
	"testing"

	"github.com/snowdrift/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

func TestSolve(t *testing.T) {
	a, err := Solve(sample)
	require.NoError(t, err)
	assert.Equal(t, aoc.Answer{One: 35, Two: 46}, a)
}

func TestParse(t *testing.T) {
	a, err := Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, []int{79, 14, 55, 13}, a.Seeds)
	require.Len(t, a.Maps, 7)
	assert.Equal(t, CategoryMap{
		From: "seed",
		To:   "soil",
		Conversions: []Conversion{
			{Dst: 50, Src: 98, Size: 2},
			{Dst: 52, Src: 50, Size: 48},
		},
	}, a.Maps[0])
	assert.Equal(t, "location", a.Maps[6].To)
}

func TestLocation(t *testing.T) {
	a, err := Parse(sample)
	require.NoError(t, err)
	for seed, want := range map[int]int{79: 82, 14: 43, 55: 86, 13: 35} {
		assert.Equal(t, want, a.Location(seed), "seed %d", seed)
	}
	// Outside every conversion.
	assert.Equal(t, 10, a.Maps[0].Convert(10))
	// Last value of a source range.
	assert.Equal(t, 51, a.Maps[0].Convert(99))
	assert.Equal(t, 100, a.Maps[0].Convert(100))
}

func TestConvertRanges(t *testing.T) {
	m := CategoryMap{Conversions: []Conversion{
		{Dst: 100, Src: 10, Size: 5},
		{Dst: 0, Src: 20, Size: 10},
	}}
	got := m.ConvertRanges([]Range{{Start: 5, End: 25}})
	assert.ElementsMatch(t, []Range{
		{Start: 100, End: 105},
		{Start: 0, End: 5},
		{Start: 5, End: 10},
		{Start: 15, End: 20},
	}, got)
}

func TestBruteForceAgrees(t *testing.T) {
	a, err := Parse(sample)
	require.NoError(t, err)
	got, err := PartTwoBruteForce(a)
	require.NoError(t, err)
	assert.Equal(t, 46, got)

	r := rand.New(rand.NewSource(5))
	for i := 0; i < 50; i++ {
		a := randomAlmanac(r)
		want, err := PartTwoBruteForce(a)
		require.NoError(t, err)
		got, err := PartTwo(a)
		require.NoError(t, err)
		require.Equal(t, want, got, "almanac %+v", a)
	}
}

// randomAlmanac makes an almanac whose conversions don't overlap within a
// map.
func randomAlmanac(r *rand.Rand) *Almanac {
	a := &Almanac{}
	for n := 1 + r.Intn(4); n > 0; n-- {
		a.Seeds = append(a.Seeds, r.Intn(200), 1+r.Intn(50))
	}
	from := "seed"
	for n := 1 + r.Intn(5); n > 0; n-- {
		m := CategoryMap{From: from, To: from + "'"}
		src := r.Intn(20)
		for k := r.Intn(5); k > 0; k-- {
			size := 1 + r.Intn(40)
			m.Conversions = append(m.Conversions, Conversion{Dst: r.Intn(300), Src: src, Size: size})
			src += size + r.Intn(20)
		}
		r.Shuffle(len(m.Conversions), func(i, j int) {
			m.Conversions[i], m.Conversions[j] = m.Conversions[j], m.Conversions[i]
		})
		a.Maps = append(a.Maps, m)
		from = m.To
	}
	return a
}

func TestSeedRanges(t *testing.T) {
	_, err := (&Almanac{Seeds: []int{1, 2, 3}}).SeedRanges()
	assert.ErrorIs(t, err, aoc.ErrParse)

	rs, err := (&Almanac{Seeds: []int{1, 0, 3, 2}}).SeedRanges()
	require.NoError(t, err)
	assert.Equal(t, []Range{{Start: 3, End: 5}}, rs)

	_, err = PartTwo(&Almanac{Seeds: []int{1, 0}})
	assert.ErrorIs(t, err, ErrNoSeeds)
	assert.ErrorIs(t, err, aoc.ErrParse)

	_, err = Solve("seeds:\n\nseed-to-soil map:\n1 2 3\n")
	assert.ErrorIs(t, err, ErrNoSeeds)
	assert.ErrorIs(t, err, aoc.ErrParse)
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"seed: 1 2",
		"seeds: 1 x",
		"seeds: 1 2\n\n1 2 3\n",
		"seeds: 1 2\n\nsoil-to-water map:\n1 2 3\n",
		"seeds: 1 2\n\nseed-to-soil map:\n1 2\n",
		"seeds: 1 2\n\nseed-to-soil map:\n1 2 -3\n",
		"seeds: 1 2\n\nseed-soil map:\n1 2 3\n",
	} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, aoc.ErrParse, in)
	}
}
