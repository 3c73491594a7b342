package engine

import (
	"math/rand"
	"testing"

	"github.com/Logta/aco-simulation/internal/domain"
)

// мир без муравьев и еды: тик корректно пустой
func TestStepEmptyWorld(t *testing.T) {
	w := domain.NewWorld(800, 600)
	params := domain.DefaultParams()
	rng := rand.New(rand.NewSource(1))

	next := Step(w, params, rng, false)

	if next.Tick != 1 {
		t.Errorf("Tick = %d, want 1", next.Tick)
	}
	if len(next.Ants) != 0 || len(next.Foods) != 0 || len(next.Field) != 0 {
		t.Error("пустой мир должен остаться пустым")
	}
	// prev не тронут
	if w.Tick != 0 {
		t.Error("Step не должен мутировать входной снимок")
	}
}

// подбор еды: муравей рядом с источником берет порцию за один тик,
// без движения и без следа в этом тике
func TestStepPickup(t *testing.T) {
	w := domain.NewWorld(800, 600)
	w.Ants = append(w.Ants, &domain.Ant{ID: 1, Pos: domain.Position{X: 100, Y: 100}})
	food := w.AddFood(domain.Position{X: 102, Y: 100}, 30)

	params := domain.DefaultParams()
	params.DepositAmount = 2.0
	rng := rand.New(rand.NewSource(42))

	next := Step(w, params, rng, false)

	ant := next.Ants[0]
	if !ant.HasFood {
		t.Fatal("муравей рядом с едой должен ее подобрать")
	}
	if ant.TargetFood != food.ID {
		t.Errorf("TargetFood = %d, want %d", ant.TargetFood, food.ID)
	}
	if ant.FoodAmount != 30 {
		t.Errorf("FoodAmount = %d, want 30 (снимок качества на момент подбора)", ant.FoodAmount)
	}
	if ant.Pos != (domain.Position{X: 100, Y: 100}) {
		t.Error("тик подбора терминален: муравей не двигается")
	}
	if f := next.FindFood(food.ID); f == nil || f.Amount != 29 {
		t.Error("источник должен потерять ровно одну порцию")
	}
	if len(next.Field) != 0 {
		t.Error("в тик подбора след не оставляется")
	}
}

// возвращение: след оставляется на ПРЕДЫДУЩЕЙ позиции, муравей идет к
// гнезду; по прибытии еда засчитывается
func TestStepReturnAndDeliver(t *testing.T) {
	w := domain.NewWorld(800, 600)
	start := domain.Position{X: 100, Y: 300}
	w.Ants = append(w.Ants, &domain.Ant{
		ID: 1, Pos: start, HasFood: true, TargetFood: 7, FoodAmount: 30,
	})

	params := domain.DefaultParams()
	params.DepositAmount = 2.0
	rng := rand.New(rand.NewSource(42))

	next := Step(w, params, rng, false)

	ant := next.Ants[0]
	if !ant.HasFood {
		t.Fatal("до гнезда далеко, муравей еще несет еду")
	}
	if ant.Pos.DistanceTo(next.Nest, 800, 600) >= start.DistanceTo(w.Nest, 800, 600) {
		t.Error("возвращающийся муравей должен приближаться к гнезду")
	}

	// след лег в ячейку стартовой позиции, с множителем качества
	key := domain.CellKeyFor(start)
	p, ok := next.Field[key]
	if !ok {
		t.Fatal("след должен лежать в ячейке позиции ДО движения")
	}
	if p.Type != domain.PheromoneToFood {
		t.Errorf("возвращающийся муравей метит дорогу к еде, а оставил %v", p.Type)
	}
	// качество: 1 + min(30/30, 2) = 2, вклад 2.0 * 2 = 4.0
	if p.Intensity != 4.0 {
		t.Errorf("Intensity = %v, want 4.0", p.Intensity)
	}

	// гоним его до гнезда
	cur := next
	for i := 0; i < 500 && cur.Ants[0].HasFood; i++ {
		cur = Step(cur, params, rng, false)
	}
	if cur.Ants[0].HasFood {
		t.Fatal("муравей так и не донес еду до гнезда")
	}
	if cur.FoodDelivered != 1 {
		t.Errorf("FoodDelivered = %d, want 1", cur.FoodDelivered)
	}
	if cur.Ants[0].TargetFood != 0 {
		t.Error("после доставки ссылка на источник должна очиститься")
	}
}

// сквозной сценарий: фуражировка -> подбор -> возвращение -> доставка
func TestStepFullForagingCycle(t *testing.T) {
	w := domain.NewWorld(800, 600)
	w.Ants = append(w.Ants, &domain.Ant{
		ID: 1, Pos: domain.Position{X: 100, Y: 100}, Direction: 0.5,
	})
	w.AddFood(domain.Position{X: 103, Y: 100}, 30)

	params := domain.DefaultParams()
	params.DepositAmount = 2.0
	rng := rand.New(rand.NewSource(7))

	cur := w
	picked := false
	for i := 0; i < 1000; i++ {
		cur = Step(cur, params, rng, false)
		if cur.Ants[0].HasFood {
			picked = true
		}
		if picked && !cur.Ants[0].HasFood {
			break
		}
	}

	if !picked {
		t.Fatal("муравей не подобрал еду рядом с собой")
	}
	if cur.Ants[0].HasFood {
		t.Fatal("муравей не донес еду до гнезда")
	}
	if cur.FoodDelivered != 1 {
		t.Errorf("FoodDelivered = %d, want 1", cur.FoodDelivered)
	}

	// по дороге домой должен остаться хотя бы один след toFood
	found := false
	for _, p := range cur.Field {
		if p.Type == domain.PheromoneToFood {
			found = true
			break
		}
	}
	if !found {
		t.Error("на обратном пути должны остаться следы toFood")
	}
}

// два муравья берут из источника с одной порцией в один тик: оба
// считали один снимок, оба подобрали, источник исчез - слабые ссылки
// это переживают
func TestStepConcurrentPickupExhaustsFood(t *testing.T) {
	w := domain.NewWorld(800, 600)
	w.Ants = append(w.Ants,
		&domain.Ant{ID: 1, Pos: domain.Position{X: 100, Y: 100}},
		&domain.Ant{ID: 2, Pos: domain.Position{X: 101, Y: 101}},
	)
	food := w.AddFood(domain.Position{X: 100, Y: 102}, 1)

	params := domain.DefaultParams()
	rng := rand.New(rand.NewSource(3))

	next := Step(w, params, rng, false)

	if !next.Ants[0].HasFood || !next.Ants[1].HasFood {
		t.Fatal("оба муравья читали один снимок и оба должны подобрать")
	}
	if next.FindFood(food.ID) != nil {
		t.Error("исчерпанный источник должен быть удален")
	}
	if len(next.Foods) != 0 {
		t.Errorf("len(Foods) = %d, want 0", len(next.Foods))
	}
}

// флаг decay: испарение применяется только когда каденция подошла
func TestStepDecayFlag(t *testing.T) {
	params := domain.DefaultParams()
	params.DecayRate = 0.9

	mk := func() *domain.World {
		w := domain.NewWorld(800, 600)
		w.Field.Add(domain.Deposit{
			Pos: domain.Position{X: 50, Y: 50}, Type: domain.PheromoneToNest, Amount: 10,
		})
		return w
	}
	rng := rand.New(rand.NewSource(1))

	noDecay := Step(mk(), params, rng, false)
	key := domain.CellKeyFor(domain.Position{X: 50, Y: 50})
	if p := noDecay.Field[key]; p == nil || p.Intensity != 10 {
		t.Error("без флага decay интенсивность не меняется")
	}

	withDecay := Step(mk(), params, rng, true)
	if p := withDecay.Field[key]; p == nil || p.Intensity != 9 {
		t.Error("с флагом decay интенсивность умножается на rate")
	}
}

// изоляция чтения: намерения считаются против prev, поэтому prev
// остается нетронутым вне зависимости от числа муравьев
func TestStepReadIsolation(t *testing.T) {
	w := domain.NewWorld(800, 600)
	for i := 1; i <= 20; i++ {
		w.Ants = append(w.Ants, &domain.Ant{
			ID:  domain.AntID(i),
			Pos: domain.Position{X: float64(i * 10), Y: 300},
		})
	}
	w.AddFood(domain.Position{X: 400, Y: 300}, 30)

	before := w.Clone()
	params := domain.DefaultParams()
	Step(w, params, rand.New(rand.NewSource(9)), true)

	for i := range w.Ants {
		if *w.Ants[i] != *before.Ants[i] {
			t.Fatalf("муравей %d во входном снимке изменен", w.Ants[i].ID)
		}
	}
	if w.Tick != before.Tick || len(w.Foods) != len(before.Foods) {
		t.Error("входной снимок изменен")
	}
}
