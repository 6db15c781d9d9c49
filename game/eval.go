package game

// Evaluate scores a board from the maximizing player's perspective. Higher
// is better for that player.
type Evaluate func(b *Board, maximizing Player) float64

// ScoreDifference is the store differential: the maximizing player's store
// minus the opponent's. Pure and O(1).
func ScoreDifference(b *Board, maximizing Player) float64 {
	return float64(b.Score(maximizing) - b.Score(maximizing.Opponent()))
}
