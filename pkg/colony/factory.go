package colony

import (
	"math"
	"math/rand"

	"github.com/Logta/aco-simulation/internal/domain"
)

// CreateAnts generates the full colony at the nest with randomized headings.
// Муравьи создаются только пачкой: при инициализации, сбросе и ресайзе.
func CreateAnts(count int, nest domain.Position, rng *rand.Rand) []*domain.Ant {
	ants := make([]*domain.Ant, 0, count)
	for i := 0; i < count; i++ {
		ants = append(ants, &domain.Ant{
			ID:        domain.AntID(i + 1),
			Pos:       nest,
			Direction: rng.Float64()*2*math.Pi - math.Pi,
		})
	}
	return ants
}

// BuildWorld создает мир с колонией в гнезде и опциональным списком еды.
func BuildWorld(params domain.SimParams, rng *rand.Rand, foods []domain.Food) *domain.World {
	w := domain.NewWorld(params.Width, params.Height)
	w.Ants = CreateAnts(params.AntCount, w.Nest, rng)
	for _, f := range foods {
		w.AddFood(f.Pos, f.Amount)
	}
	return w
}
