package bot

import (
	"github.com/mcoot/tictactoe/internal/dependencies/random"
	"github.com/mcoot/tictactoe/internal/model"
)

// RandomStrategy picks uniformly among the available cells
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChoosePosition picks a random available cell
func (s *RandomStrategy) ChoosePosition(available []model.Position) model.Position {
	if len(available) == 0 {
		return model.Position{Row: 0, Col: 0}
	}
	return available[s.random.Intn(len(available))]
}
