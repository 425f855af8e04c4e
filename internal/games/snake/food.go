package snake

import (
	"fmt"
	"math/rand"
)

// FoodPolicy selects how the spawner picks a food cell.
type FoodPolicy string

const (
	// FoodUniform draws over the whole grid, snake cells included.
	FoodUniform FoodPolicy = "uniform"
	// FoodFree draws only over cells the snake does not occupy.
	FoodFree FoodPolicy = "free"
)

// ParseFoodPolicy validates a policy name.
func ParseFoodPolicy(s string) (FoodPolicy, error) {
	switch p := FoodPolicy(s); p {
	case FoodUniform, FoodFree:
		return p, nil
	}
	return "", fmt.Errorf("snake: unknown food policy %q (want %q or %q)", s, FoodUniform, FoodFree)
}

// Spawner places food using a single random source that lives as long as the game.
type Spawner struct {
	rng    *rand.Rand
	policy FoodPolicy
}

// NewSpawner creates a spawner. The rng is seeded once by the caller and reused.
func NewSpawner(rng *rand.Rand, policy FoodPolicy) *Spawner {
	if policy == "" {
		policy = FoodFree
	}
	return &Spawner{rng: rng, policy: policy}
}

// Policy returns the active placement policy.
func (s *Spawner) Policy() FoodPolicy {
	return s.policy
}

// Spawn picks a food cell. It returns false only under FoodFree
// when every cell is occupied.
func (s *Spawner) Spawn(board Board, body Body) (Cell, bool) {
	if s.policy == FoodUniform {
		col := s.rng.Intn(board.Cols)
		row := s.rng.Intn(board.Rows)
		return Cell{Col: col, Row: row}, true
	}

	free := make([]Cell, 0, max(board.Area()-body.Len(), 0))
	for row := 0; row < board.Rows; row++ {
		for col := 0; col < board.Cols; col++ {
			c := Cell{Col: col, Row: row}
			if !body.Contains(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return Cell{Col: -1, Row: -1}, false
	}
	return free[s.rng.Intn(len(free))], true
}
