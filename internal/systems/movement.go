package systems

import (
	"math/rand"

	"github.com/Logta/aco-simulation/internal/domain"
)

// MoveResult - результат вычисления шага
type MoveResult struct {
	Pos       domain.Position
	Direction float64
}

// RandomWalk вычисляет шаг случайного блуждания: направление получает
// равномерный шум в [-turnRange/2, turnRange/2], затем шаг speed.
// Не меняет состояние мира!
func RandomWalk(pos domain.Position, dir, w, h, speed, turnRange float64, rng *rand.Rand) MoveResult {
	newDir := dir + (rng.Float64()-0.5)*turnRange
	return MoveResult{
		Pos:       pos.Step(newDir, speed).Wrap(w, h),
		Direction: newDir,
	}
}

// Seek вычисляет прямой шаг к цели по кратчайшему тороидальному пути.
// Если до цели меньше speed - встаем ТОЧНО на цель (иначе муравей
// будет вечно перепрыгивать ее туда-сюда).
func Seek(pos, target domain.Position, w, h, speed float64) domain.Position {
	dx, dy := pos.DeltaTo(target, w, h)
	dist := pos.DistanceTo(target, w, h)

	if dist < speed {
		return target.Wrap(w, h)
	}

	// dist >= speed > 0, деление безопасно
	return pos.Shift(dx/dist*speed, dy/dist*speed).Wrap(w, h)
}

// BiasedSeek вычисляет шаг с притяжением к цели: угловая разница до
// цели с весом bias смешивается со случайным шумом с весом (1-bias)
// и добавляется к текущему направлению.
// bias=1 дает чистое преследование (пошаговое, без снапа Seek),
// bias=0 вырождается в случайное блуждание.
func BiasedSeek(pos domain.Position, dir float64, target domain.Position, w, h, bias, turnRange, speed float64, rng *rand.Rand) MoveResult {
	delta := domain.NormalizeAngle(pos.BearingTo(target, w, h) - dir)
	noise := (rng.Float64() - 0.5) * turnRange

	newDir := dir + bias*delta + (1-bias)*noise
	return MoveResult{
		Pos:       pos.Step(newDir, speed).Wrap(w, h),
		Direction: newDir,
	}
}
