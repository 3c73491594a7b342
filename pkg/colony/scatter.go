package colony

import (
	"math/rand"

	"github.com/Logta/aco-simulation/internal/domain"
)

// ScatterFood добавляет count источников еды в случайных точках мира
// со случайным количеством в фиксированном диапазоне.
func ScatterFood(w *domain.World, count int, rng *rand.Rand) []*domain.Food {
	added := make([]*domain.Food, 0, count)
	for i := 0; i < count; i++ {
		pos := domain.Position{
			X: rng.Float64() * w.Width,
			Y: rng.Float64() * w.Height,
		}
		amount := domain.ScatterAmountMin + rng.Intn(domain.ScatterAmountMax-domain.ScatterAmountMin+1)
		added = append(added, w.AddFood(pos, amount))
	}
	return added
}
