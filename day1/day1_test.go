package day1

import (
	"testing"

	"github.com/snowdrift/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOne = `1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
`

const sampleTwo = `two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
`

func TestPartOne(t *testing.T) {
	assert.Equal(t, 142, PartOne(aoc.Lines(sampleOne)))
}

func TestPartTwo(t *testing.T) {
	got, err := PartTwo(aoc.Lines(sampleTwo))
	require.NoError(t, err)
	assert.Equal(t, 281, got)
}

func TestSolve(t *testing.T) {
	a, err := Solve(sampleOne)
	require.NoError(t, err)
	assert.Equal(t, aoc.Answer{One: 142, Two: 142}, a)
	assert.Equal(t, "Part one: 142\nPart two: 142", a.String())
}

func TestValue(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"treb7uchet", 77},
		{"7", 77},
		{"a1b2c3d4e5f", 15},
		{"0x0", 0},
	}
	for _, tt := range tests {
		got, ok := Value(tt.line)
		assert.True(t, ok, tt.line)
		assert.Equal(t, tt.want, got, tt.line)
	}
	_, ok := Value("abc")
	assert.False(t, ok)
}

func TestDespell(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"oneight", 18},
		{"twone", 21},
		{"eightwothree", 83},
		{"sevenine", 79},
		{"zerone", 1},
		{"xtwone3four", 24},
	}
	for _, tt := range tests {
		got, ok := Value(Despell(tt.line))
		assert.True(t, ok, tt.line)
		assert.Equal(t, tt.want, got, tt.line)
	}
}

func TestNoDigit(t *testing.T) {
	_, err := Solve("12\nnope\n")
	require.ErrorIs(t, err, aoc.ErrParse)
	var pe *aoc.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)

	// Lines with only spelled out digits are fine, and worth nothing in
	// part one.
	a, err := Solve(sampleTwo)
	require.NoError(t, err)
	assert.Equal(t, aoc.Answer{One: 11 + 22 + 33 + 42 + 24 + 77, Two: 281}, a)
}
