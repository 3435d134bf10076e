package scoring

import "fmt"

const (
	// DiceCount is the number of dice thrown each turn
	DiceCount = 5

	// Sides is the number of faces on each die
	Sides = 6
)

// Rules is an immutable scoring table. Values are indexed by face; index 0 is unused.
type Rules struct {
	// DiceCount is the exact number of dice a roll must contain
	DiceCount int

	// TripleValues is the value of three of a kind for each face
	TripleValues [Sides + 1]int

	// SingleValues is the value of each die left over after triples are taken
	SingleValues [Sides + 1]int
}

// Standard returns the Greed scoring table
func Standard() Rules {
	return Rules{
		DiceCount:    DiceCount,
		TripleValues: [Sides + 1]int{0, 1000, 200, 300, 400, 500, 600},
		SingleValues: [Sides + 1]int{0, 100, 0, 0, 0, 50, 0},
	}
}

// Score scores a roll under the standard table
func Score(roll []int) (int, error) {
	return Standard().Score(roll)
}

// Validate checks the roll length and that every face is on the die
func (r Rules) Validate(roll []int) error {
	if len(roll) != r.DiceCount {
		return fmt.Errorf("%w: expected %d dice, got %d", ErrInvalidRoll, r.DiceCount, len(roll))
	}

	for i, face := range roll {
		if face < 1 || face > Sides {
			return fmt.Errorf("%w: die %d shows %d, must be between 1 and %d", ErrInvalidRoll, i+1, face, Sides)
		}
	}

	return nil
}

// Score counts each face and scores triples first, then leftover dice.
// The result depends only on the multiset of faces.
func (r Rules) Score(roll []int) (int, error) {
	if err := r.Validate(roll); err != nil {
		return 0, err
	}

	var counts [Sides + 1]int
	for _, face := range roll {
		counts[face]++
	}

	total := 0
	for face := 1; face <= Sides; face++ {
		triples := counts[face] / 3
		remainder := counts[face] - triples*3
		total += triples*r.TripleValues[face] + remainder*r.SingleValues[face]
	}

	return total, nil
}
