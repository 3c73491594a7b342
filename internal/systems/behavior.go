package systems

import (
	"math"
	"math/rand"

	"github.com/Logta/aco-simulation/internal/domain"
)

// AntAction - описание исхода одного тика одного муравья.
// ComputeAntAction НЕ мутирует мир: она читает снимок и возвращает
// намерения. Оркестратор собирает намерения всех муравьев и коммитит
// их разом - поэтому никто не видит чужих правок того же тика.
type AntAction struct {
	AntID domain.AntID

	// Новое состояние муравья
	Pos        domain.Position
	Direction  float64
	HasFood    bool
	TargetFood domain.FoodID
	FoodAmount int

	// CollectFood - источник, из которого муравей забрал порцию
	// в этом тике (0 - не забирал). Коммит уменьшит Amount на 1.
	CollectFood domain.FoodID

	// Deposit - намерение оставить феромон (nil - не оставлял).
	Deposit *domain.Deposit

	// Delivered true, если муравей донес порцию до гнезда в этом тике.
	Delivered bool
}

// ComputeAntAction - политика одного муравья на один тик.
// Состояний два: Foraging (ищем еду) и Returning (несем домой).
func ComputeAntAction(ant *domain.Ant, w *domain.World, p domain.SimParams, rng *rand.Rand) AntAction {
	act := AntAction{
		AntID:      ant.ID,
		Pos:        ant.Pos,
		Direction:  ant.Direction,
		HasFood:    ant.HasFood,
		TargetFood: ant.TargetFood,
		FoodAmount: ant.FoodAmount,
	}

	if ant.State() == domain.StateReturning {
		computeReturning(ant, w, p, &act)
	} else {
		computeForaging(ant, w, p, rng, &act)
	}
	return act
}

// computeReturning - муравей несет еду в гнездо.
func computeReturning(ant *domain.Ant, w *domain.World, p domain.SimParams, act *AntAction) {
	distNest := ant.Pos.DistanceTo(w.Nest, w.Width, w.Height)

	// ПРИБЫТИЕ: сдаем еду, чистим состояние, этот тик - терминальный
	// (муравей не двигается)
	if distNest < domain.NestRadius {
		act.HasFood = false
		act.TargetFood = 0
		act.FoodAmount = 0
		act.Delivered = true
		return
	}

	// След кладем в ТОЧКУ ДО ШАГА: феромон отмечает, где мы были,
	// а не куда пришли. Богатый источник - след сильнее (1x..3x).
	quality := 1.0
	if ant.FoodAmount > 0 {
		quality = 1 + math.Min(float64(ant.FoodAmount)/domain.QualityDivisor, domain.QualityMaxBonus)
	}
	act.Deposit = &domain.Deposit{
		Pos:    ant.Pos,
		Type:   domain.PheromoneToFood,
		Amount: p.DepositAmount * quality,
	}

	// Движение: прямой seek к гнезду. Направление пересчитываем из
	// тороидального азимута на гнездо, а не из внутренностей Seek -
	// иначе на финальном снапе взгляд прыгает
	act.Pos = Seek(ant.Pos, w.Nest, w.Width, w.Height, domain.AntSpeed)
	act.Direction = ant.Pos.BearingTo(w.Nest, w.Width, w.Height)

	applyAvoidance(ant.ID, w, act)
}

// computeForaging - муравей ищет еду.
func computeForaging(ant *domain.Ant, w *domain.World, p domain.SimParams, rng *rand.Rand, act *AntAction) {
	// 1. Еда в радиусе подбора: переход Foraging -> Returning.
	// Снимаем снимок количества (для силы следа) и забираем порцию.
	// Тик терминальный, движения нет.
	if food := FindNearestFood(ant.Pos, w.Foods, w.Width, w.Height, domain.PickupRadius); food != nil {
		act.HasFood = true
		act.TargetFood = food.ID
		act.FoodAmount = food.Amount
		act.CollectFood = food.ID
		return
	}

	// 2. Еда видна, но дальше радиуса подбора: идем на нее с
	// притяжением. Феромоны на подходе НЕ кладем - след оставляет
	// только возвращающийся муравей (как настоящие муравьи).
	if food := FindNearestFood(ant.Pos, w.Foods, w.Width, w.Height, domain.FoodDetectionRadius); food != nil {
		mv := BiasedSeek(ant.Pos, ant.Direction, food.Pos, w.Width, w.Height,
			domain.SeekBias, domain.AntTurnRange, domain.AntSpeed, rng)
		act.Pos = mv.Pos
		act.Direction = mv.Direction
		applyAvoidance(ant.ID, w, act)
		return
	}

	// 3. Еды не видно: с вероятностью TrackingStrength пробуем идти по
	// градиенту следов "к еде".
	if rng.Float64() < p.TrackingStrength {
		newDir := FollowPheromone(ant.Pos, w.Field, domain.PheromoneToFood,
			ant.Direction, w.Width, w.Height)

		// Идем по градиенту, только если он реально куда-то зовет.
		// Пустое поле (или слабый сигнал) возвращает исходное
		// направление - тогда дергать муравья незачем
		if math.Abs(domain.NormalizeAngle(newDir-ant.Direction)) > domain.MinHeadingDelta {
			act.Direction = newDir
			act.Pos = ant.Pos.Step(newDir, domain.AntSpeed).Wrap(w.Width, w.Height)
			applyAvoidance(ant.ID, w, act)
			return
		}
	}

	// 4. Случайное блуждание
	mv := RandomWalk(ant.Pos, ant.Direction, w.Width, w.Height,
		domain.AntSpeed, domain.AntTurnRange, rng)
	act.Pos = mv.Pos
	act.Direction = mv.Direction
	applyAvoidance(ant.ID, w, act)
}

// applyAvoidance корректирует уже вычисленный шаг расталкиванием от
// соседей. Применяется после движения в каждой движущейся ветке.
func applyAvoidance(selfID domain.AntID, w *domain.World, act *AntAction) {
	res := Avoid(selfID, act.Pos, act.Direction, w.Ants,
		domain.AvoidanceRadius, w.Width, w.Height)
	act.Pos = res.Pos
	act.Direction = res.Direction
}
