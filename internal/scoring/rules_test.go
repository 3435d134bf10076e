package scoring

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	testCases := []struct {
		name     string
		roll     []int
		expected int
	}{
		{name: "five ones", roll: []int{1, 1, 1, 1, 1}, expected: 1200},
		{name: "four ones and a five", roll: []int{1, 1, 1, 5, 1}, expected: 1150},
		{name: "nothing scores", roll: []int{2, 3, 4, 6, 2}, expected: 0},
		{name: "triple threes and a five", roll: []int{3, 4, 5, 3, 3}, expected: 350},
		{name: "two leftover fives", roll: []int{6, 5, 6, 5, 4}, expected: 100},
		{name: "triple ones", roll: []int{1, 1, 1, 2, 3}, expected: 1000},
		{name: "triple twos", roll: []int{2, 2, 2, 3, 4}, expected: 200},
		{name: "triple threes", roll: []int{3, 3, 3, 2, 4}, expected: 300},
		{name: "triple fours", roll: []int{4, 4, 4, 2, 3}, expected: 400},
		{name: "triple fives", roll: []int{5, 5, 5, 2, 3}, expected: 500},
		{name: "triple sixes", roll: []int{6, 6, 6, 2, 3}, expected: 600},
		{name: "five fives", roll: []int{5, 5, 5, 5, 5}, expected: 600},
		{name: "single one and single five", roll: []int{1, 5, 2, 3, 4}, expected: 150},
		{name: "pairs of ones and fives", roll: []int{1, 1, 5, 5, 6}, expected: 300},
		{name: "four sixes", roll: []int{6, 6, 6, 6, 2}, expected: 600},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			score, err := Score(tc.roll)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, score)
		})
	}
}

func TestScoreInvalidRoll(t *testing.T) {
	testCases := []struct {
		name string
		roll []int
	}{
		{name: "nil roll", roll: nil},
		{name: "too few dice", roll: []int{1}},
		{name: "too many dice", roll: []int{1, 2, 3, 4, 5, 6}},
		{name: "negative face", roll: []int{1, -2, 3, 4, 3}},
		{name: "zero face", roll: []int{0, 2, 3, 4, 5}},
		{name: "face above six", roll: []int{1, 2, 3, 4, 7}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			score, err := Score(tc.roll)
			assert.ErrorIs(t, err, ErrInvalidRoll)
			assert.Zero(t, score)
		})
	}
}

func TestScoreIgnoresDiceOrder(t *testing.T) {
	rules := Standard()

	roll := make([]int, DiceCount)
	var walk func(i int)
	walk = func(i int) {
		if i == DiceCount {
			score, err := rules.Score(roll)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, score, 0)

			sorted := slices.Clone(roll)
			slices.Sort(sorted)
			sortedScore, err := rules.Score(sorted)
			require.NoError(t, err)

			reversed := slices.Clone(sorted)
			slices.Reverse(reversed)
			reversedScore, err := rules.Score(reversed)
			require.NoError(t, err)

			if score != sortedScore || score != reversedScore {
				t.Fatalf("roll %v scored %d, sorted %d, reversed %d", roll, score, sortedScore, reversedScore)
			}
			return
		}
		for face := 1; face <= Sides; face++ {
			roll[i] = face
			walk(i + 1)
		}
	}
	walk(0)
}

func TestValidate(t *testing.T) {
	rules := Standard()

	assert.NoError(t, rules.Validate([]int{6, 5, 4, 3, 2}))

	err := rules.Validate([]int{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidRoll)
	assert.Contains(t, err.Error(), "expected 5 dice, got 3")

	err = rules.Validate([]int{1, 2, 9, 4, 5})
	assert.ErrorIs(t, err, ErrInvalidRoll)
	assert.Contains(t, err.Error(), "die 3 shows 9")
}
