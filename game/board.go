package game

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
)

// ErrInvalidMove is returned by Move when the selected pocket is out of
// range, belongs to the opponent, names a store, or is empty.
var ErrInvalidMove = errors.New("invalid move")

type StateHash uint64

// Board represents the dynamic state of a game: the pocket array plus the
// two store cells, laid out as a single ring. Index 0 is player B's store,
// index SideSize+1 is player A's store, A owns raw indices 1..SideSize and
// B owns SideSize+2..2*SideSize+1. Player-facing pocket numbers are always
// 1..SideSize regardless of side.
type Board struct {
	SideSize       int
	StartingPieces int
	Pockets        []int
}

// NewBoard initializes a board with the given row length and per-pocket
// bead count. Both stores start empty.
func NewBoard(sideSize, startingPieces int) *Board {
	if sideSize < 1 || startingPieces < 1 {
		panic("sideSize and startingPieces must be positive")
	}
	b := &Board{
		SideSize:       sideSize,
		StartingPieces: startingPieces,
		Pockets:        make([]int, 2*sideSize+2),
	}
	for i := range b.Pockets {
		if i != b.storeA() && i != b.storeB() {
			b.Pockets[i] = startingPieces
		}
	}
	return b
}

// NewStandardBoard returns the common 6-pocket, 4-bead configuration.
func NewStandardBoard() *Board {
	return NewBoard(6, 4)
}

func (b *Board) storeA() int { return b.SideSize + 1 }
func (b *Board) storeB() int { return 0 }

// Store returns the raw index of the given player's store.
func (b *Board) Store(player Player) int {
	if player == PlayerA {
		return b.storeA()
	}
	return b.storeB()
}

// PocketValues returns the given player's row as a view into the board.
// Mutating the board is visible through the returned slice.
func (b *Board) PocketValues(player Player) []int {
	if player == PlayerA {
		return b.Pockets[b.storeB()+1 : b.storeA()]
	}
	return b.Pockets[b.storeA()+1:]
}

// Score returns the value of the given player's store.
func (b *Board) Score(player Player) int {
	return b.Pockets[b.Store(player)]
}

// PossibleMoves lists the player's nonempty pockets as 1-indexed pocket
// numbers, in ascending order.
func (b *Board) PossibleMoves(player Player) []int {
	moves := []int{}
	for pocket, value := range b.PocketValues(player) {
		if value > 0 {
			moves = append(moves, pocket+1)
		}
	}
	return moves
}

// rawIndex maps a 1-indexed player pocket to its index in the ring.
func (b *Board) rawIndex(pocket int, player Player) int {
	if player == PlayerA {
		return pocket
	}
	return pocket + b.SideSize + 1
}

// validPocket reports whether the raw index names a playable, nonempty
// pocket on the player's own side. One failed condition makes the whole
// selection invalid.
func (b *Board) validPocket(raw int, player Player) bool {
	invalid := raw <= 0 ||
		raw >= len(b.Pockets) ||
		raw == b.storeA() ||
		raw == b.storeB() ||
		(player == PlayerA && raw > b.SideSize) ||
		(player == PlayerB && raw <= b.SideSize+1) ||
		b.Pockets[raw] == 0
	return !invalid
}

// distribute takes all beads from the start index and drops them one per
// pocket counterclockwise, skipping the opponent's store. Returns the index
// that received the last bead.
func (b *Board) distribute(start int, player Player) int {
	beads := b.Pockets[start]
	b.Pockets[start] = 0
	skip := b.Store(player.Opponent())

	current := start
	for beads > 0 {
		current = (current + 1) % len(b.Pockets)
		if current == skip {
			continue
		}
		b.Pockets[current]++
		beads--
	}
	return current
}

// ownsPocket reports whether the raw index is one of the player's own
// non-store pockets.
func (b *Board) ownsPocket(raw int, player Player) bool {
	if player == PlayerA {
		return raw >= 1 && raw <= b.SideSize
	}
	return raw >= b.SideSize+2 && raw <= 2*b.SideSize+1
}

// Move plays the player's 1-indexed pocket: distributes its beads, applies
// the capture rule, and sweeps both rows into the stores if either side
// emptied. It reports whether the mover earned an extra turn and whether
// the game is over. The board is untouched when the move is invalid.
func (b *Board) Move(pocket int, player Player) (extraTurn, endgame bool, err error) {
	start := b.rawIndex(pocket, player)
	if !b.validPocket(start, player) {
		return false, false, fmt.Errorf("%w: pocket %d for player %s is empty, a store, or not theirs", ErrInvalidMove, pocket, player)
	}

	final := b.distribute(start, player)

	extraTurn = final == b.Store(player)

	// Landing in one of the mover's own pockets that was empty before this
	// drop captures the opposite pocket plus the landed bead.
	if b.ownsPocket(final, player) && b.Pockets[final] == 1 {
		opposite := 2*(b.SideSize+1) - final
		b.Pockets[b.Store(player)] += b.Pockets[opposite] + 1
		b.Pockets[opposite] = 0
		b.Pockets[final] = 0
	}

	endgame = sum(b.PocketValues(PlayerA)) == 0 || sum(b.PocketValues(PlayerB)) == 0
	if endgame {
		b.sweep()
	}

	return extraTurn, endgame, nil
}

// sweep moves every remaining bead into its owner's store.
func (b *Board) sweep() {
	for _, player := range []Player{PlayerA, PlayerB} {
		row := b.PocketValues(player)
		b.Pockets[b.Store(player)] += sum(row)
		for i := range row {
			row[i] = 0
		}
	}
}

// Clone returns an independent deep copy of the board.
func (b *Board) Clone() *Board {
	pockets := make([]int, len(b.Pockets))
	copy(pockets, b.Pockets)
	return &Board{
		SideSize:       b.SideSize,
		StartingPieces: b.StartingPieces,
		Pockets:        pockets,
	}
}

// Hash returns a digest of the pocket array, usable for deduplication and
// determinism checks.
func (b *Board) Hash() StateHash {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, int64(b.SideSize))
	for _, count := range b.Pockets {
		binary.Write(hasher, binary.LittleEndian, int64(count))
	}
	return StateHash(hasher.Sum64())
}

// String formats the board with B's row reversed on top so both rows read
// in play direction. Debug output only.
func (b *Board) String() string {
	rowB := b.PocketValues(PlayerB)
	reversed := make([]int, len(rowB))
	for i, v := range rowB {
		reversed[len(rowB)-1-i] = v
	}
	return fmt.Sprintf("%d %v\n  %v %d", b.Score(PlayerB), reversed, b.PocketValues(PlayerA), b.Score(PlayerA))
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
