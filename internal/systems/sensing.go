package systems

import (
	"github.com/Logta/aco-simulation/internal/domain"
)

// FollowPheromone выбирает направление по градиенту феромонов типа t.
// Три сенсора: влево, прямо, вправо (+-SensorAngle), каждый проецируется
// на SensorDistance вперед; в точке проекции замеряется сила поля в
// радиусе SensorRadius. Побеждает максимальный замер.
// Если максимум слабее MinSignal - градиента нет, возвращаем исходное
// направление без изменений.
// При равенстве замеров побеждает первый в порядке обхода
// (левый, центральный, правый).
func FollowPheromone(pos domain.Position, field domain.PheromoneField, t domain.PheromoneType, dir, w, h float64) float64 {
	candidates := [3]float64{
		dir - domain.SensorAngle, // левый
		dir,                      // центральный
		dir + domain.SensorAngle, // правый
	}

	bestDir := dir
	bestStrength := 0.0
	found := false

	for _, cand := range candidates {
		probe := pos.Step(cand, domain.SensorDistance).Wrap(w, h)
		s := field.StrengthAt(probe, t, domain.SensorRadius, w, h)
		// Строгое > сохраняет первого при равенстве
		if !found || s > bestStrength {
			bestStrength = s
			bestDir = cand
			found = true
		}
	}

	if bestStrength < domain.MinSignal {
		return dir
	}
	return bestDir
}

// FindNearestFood возвращает ближайший источник еды по тороидальному
// расстоянию. maxDist <= 0 означает "без ограничения".
// Строгое < оставляет первый встреченный при равных расстояниях.
// nil, если источников нет или все дальше maxDist.
func FindNearestFood(pos domain.Position, foods []*domain.Food, w, h, maxDist float64) *domain.Food {
	var nearest *domain.Food
	best := 0.0

	for _, f := range foods {
		d := pos.DistanceTo(f.Pos, w, h)
		if maxDist > 0 && d > maxDist {
			continue
		}
		if nearest == nil || d < best {
			nearest = f
			best = d
		}
	}
	return nearest
}

// FoodsInRadius возвращает все источники в радиусе (граница включительно).
func FoodsInRadius(pos domain.Position, foods []*domain.Food, radius, w, h float64) []*domain.Food {
	var out []*domain.Food
	for _, f := range foods {
		if pos.DistanceTo(f.Pos, w, h) <= radius {
			out = append(out, f)
		}
	}
	return out
}
