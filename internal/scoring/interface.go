package scoring

//go:generate mockgen -package=mocks -destination=mocks/mock_scorer.go github.com/KirkDiggler/greed/internal/scoring Scorer

// Scorer converts one turn's dice into points
type Scorer interface {
	// Score returns the points for a roll, or ErrInvalidRoll
	Score(roll []int) (int, error)
}
