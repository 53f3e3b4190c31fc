package day4

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/snowdrift/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
`

func TestSolve(t *testing.T) {
	a, err := Solve(sample)
	require.NoError(t, err)
	assert.Equal(t, aoc.Answer{One: 13, Two: 30}, a)
}

func TestCard(t *testing.T) {
	cards, err := Parse(sample)
	require.NoError(t, err)
	require.Len(t, cards, 6)

	var wins, scores []int
	for _, c := range cards {
		wins = append(wins, c.Wins())
		scores = append(scores, c.Score())
	}
	assert.Equal(t, []int{4, 2, 2, 1, 0, 0}, wins)
	assert.Equal(t, []int{8, 2, 2, 1, 0, 0}, scores)
	assert.True(t, cards[2].Winning.Contains(1))
	assert.Equal(t, 8, cards[0].Scratched.Len())
}

func TestCopiesStopAtLastCard(t *testing.T) {
	cards, err := Parse("Card 1: 1 2 3 | 1 2 3\nCard 2: 4 | 5\n")
	require.NoError(t, err)
	assert.Equal(t, 3, PartTwo(cards))
}

func TestLineOrderIndependent(t *testing.T) {
	lines := aoc.Lines(sample)
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 10; i++ {
		r.Shuffle(len(lines), func(i, j int) { lines[i], lines[j] = lines[j], lines[i] })
		a, err := Solve(strings.Join(lines, "\n"))
		require.NoError(t, err)
		assert.Equal(t, aoc.Answer{One: 13, Two: 30}, a)
	}

	// Last and first card swapped.
	lines = aoc.Lines(sample)
	lines[0], lines[5] = lines[5], lines[0]
	a, err := Solve(strings.Join(lines, "\n"))
	require.NoError(t, err)
	assert.Equal(t, aoc.Answer{One: 13, Two: 30}, a)
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"Card 1: 1 2 3 1 2 3",
		"Card 2: 1 | 1",
		"Game 1: 1 | 1",
		"Card 1: 1 x | 1",
		"Card 1: 0 | 1",
		strings.Replace(sample, "Card 3", "Card 4", 1),
		strings.Replace(sample, "Card 6", "Card 7", 1),
	} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, aoc.ErrParse, in)
	}
}
