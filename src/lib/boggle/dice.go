package boggle

import (
	"encoding/binary"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"

	"gitlab.com/pnathan/boggle/src/lib/utility"
)

// Dice is the classic sixteen-die set. Q is a single-letter face.
var Dice = [16]string{
	"AAEEGN", "ELTTY", "AOOTTW", "ABBJOO", "EHRTVW", "CIMOTU",
	"DISTTY", "EIOSST", "DELRVY", "ACHOPS", "HIMNQU", "EEINSU",
	"EEGHNW", "AFFKPS", "HLNNRZ", "DEILRX",
}

// Roll shakes an n by n board: the dice are shuffled into the cells and
// each shows one random face. Boards with more than sixteen cells reuse
// the set in order before shuffling.
func Roll(rng *rand.Rand, n int) (*Board, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBoardSize, n)
	}
	dice := make([]string, n*n)
	for i := range dice {
		dice[i] = Dice[i%len(Dice)]
	}
	rng.Shuffle(len(dice), func(i, j int) {
		dice[i], dice[j] = dice[j], dice[i]
	})

	cells := make([]string, len(dice))
	for i, die := range dice {
		face := die[rng.Intn(len(die))]
		cells[i] = strings.ToLower(string(face))
	}
	return NewBoard(cells)
}

// SeedFor derives the rand seed that rolls the board named by id at edge n.
func SeedFor(id uuid.UUID, n int) int64 {
	buf := utility.Concat(id[:], utility.UintToBytes(uint64(n)))
	h := make([]byte, 8)
	sha3.ShakeSum256(h, buf)
	return int64(binary.BigEndian.Uint64(h))
}

// RollFor rolls the board identified by id. The same id and n always give
// the same board.
func RollFor(id uuid.UUID, n int) (*Board, error) {
	return Roll(rand.New(rand.NewSource(SeedFor(id, n))), n)
}
