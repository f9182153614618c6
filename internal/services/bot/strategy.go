package bot

import "github.com/mcoot/tictactoe/internal/model"

// Strategy defines how the computer picks a cell
type Strategy interface {
	// ChoosePosition selects one of the available cells, which is never empty
	ChoosePosition(available []model.Position) model.Position
}
