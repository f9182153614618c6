package model

// OpponentKind is the player 1 choice of who to play against
type OpponentKind string

const (
	OpponentComputer OpponentKind = "C"
	OpponentHuman    OpponentKind = "H"
)

// OpponentDisplayName returns a human-readable label for an opponent kind
func OpponentDisplayName(kind OpponentKind) string {
	switch kind {
	case OpponentComputer:
		return "Computer"
	case OpponentHuman:
		return "Human"
	default:
		return string(kind)
	}
}

// PlayerKind maps the opponent choice to the kind of player 2
func (k OpponentKind) PlayerKind() PlayerKind {
	if k == OpponentComputer {
		return PlayerKindComputer
	}
	return PlayerKindHuman
}

// ValidOpponentKinds returns all valid opponent kinds
func ValidOpponentKinds() []OpponentKind {
	return []OpponentKind{OpponentComputer, OpponentHuman}
}
