package game

// Player identifies one of the two sides.
type Player int

const (
	PlayerA Player = iota
	PlayerB
)

func (p Player) String() string {
	if p == PlayerA {
		return "A"
	}
	return "B"
}

// Opponent returns the other side.
func (p Player) Opponent() Player {
	if p == PlayerA {
		return PlayerB
	}
	return PlayerA
}
