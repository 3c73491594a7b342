package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Logta/aco-simulation/internal/domain"
)

// Helper: пустой мир 800x600 с гнездом в центре
func setupBehaviorWorld() *domain.World {
	return domain.NewWorld(800, 600)
}

func TestBehavior_PickupTransition(t *testing.T) {
	w := setupBehaviorWorld()
	rng := rand.New(rand.NewSource(1))

	food := w.AddFood(domain.Position{X: 103, Y: 100}, 10)
	ant := &domain.Ant{ID: 1, Pos: domain.Position{X: 100, Y: 100}}
	w.Ants = append(w.Ants, ant)

	act := ComputeAntAction(ant, w, domain.DefaultParams(), rng)

	if !act.HasFood {
		t.Error("ant within pickup radius did not take food")
	}
	if act.TargetFood != food.ID {
		t.Errorf("targetFood = %v, want %v", act.TargetFood, food.ID)
	}
	if act.FoodAmount != 10 {
		t.Errorf("foodAmount snapshot = %d, want 10", act.FoodAmount)
	}
	if act.CollectFood != food.ID {
		t.Errorf("collectFood = %v, want %v", act.CollectFood, food.ID)
	}
	// Подбор терминален: движения в этом тике нет
	if act.Pos != ant.Pos {
		t.Errorf("ant moved during pickup: %v -> %v", ant.Pos, act.Pos)
	}
	// И феромонов на подходе не кладем
	if act.Deposit != nil {
		t.Error("pheromone deposited during pickup")
	}
}

func TestBehavior_ArrivalTransition(t *testing.T) {
	w := setupBehaviorWorld()
	rng := rand.New(rand.NewSource(1))

	// Несем еду, стоим в пределах радиуса гнезда
	ant := &domain.Ant{
		ID:         1,
		Pos:        w.Nest.Shift(3, 0),
		HasFood:    true,
		TargetFood: 42,
		FoodAmount: 10,
	}
	w.Ants = append(w.Ants, ant)

	act := ComputeAntAction(ant, w, domain.DefaultParams(), rng)

	if act.HasFood {
		t.Error("ant at nest still carrying food")
	}
	if act.TargetFood != 0 || act.FoodAmount != 0 {
		t.Error("carry state not cleared on arrival")
	}
	if !act.Delivered {
		t.Error("delivery not reported")
	}
	// Прибытие терминально: движения нет
	if act.Pos != ant.Pos {
		t.Errorf("ant moved on arrival tick: %v -> %v", ant.Pos, act.Pos)
	}
	if act.Deposit != nil {
		t.Error("deposit on arrival tick")
	}
}

func TestBehavior_ReturningDepositsAtPreMovePosition(t *testing.T) {
	w := setupBehaviorWorld()
	rng := rand.New(rand.NewSource(1))
	p := domain.DefaultParams()
	p.DepositAmount = 2.0

	start := domain.Position{X: 100, Y: 100}
	ant := &domain.Ant{ID: 1, Pos: start, HasFood: true, FoodAmount: 30}
	w.Ants = append(w.Ants, ant)

	act := ComputeAntAction(ant, w, p, rng)

	if act.Deposit == nil {
		t.Fatal("returning ant left no pheromone")
	}
	if act.Deposit.Pos != start {
		t.Errorf("deposit at %v, want pre-move position %v", act.Deposit.Pos, start)
	}
	if act.Deposit.Type != domain.PheromoneToFood {
		t.Errorf("deposit type = %v, want toFood", act.Deposit.Type)
	}

	// Качество: amount=30 дает множитель 1 + min(30/30, 2) = 2
	if math.Abs(act.Deposit.Amount-4.0) > 1e-9 {
		t.Errorf("deposit amount = %v, want 4.0 (2.0 x quality 2)", act.Deposit.Amount)
	}

	// Муравей шагнул к гнезду
	if act.Pos == start {
		t.Error("returning ant did not move")
	}
	distBefore := start.DistanceTo(w.Nest, w.Width, w.Height)
	distAfter := act.Pos.DistanceTo(w.Nest, w.Width, w.Height)
	if distAfter >= distBefore {
		t.Errorf("ant moved away from nest: %v -> %v", distBefore, distAfter)
	}

	// Взгляд - тороидальный азимут на гнездо из точки ДО шага
	wantDir := start.BearingTo(w.Nest, w.Width, w.Height)
	if math.Abs(domain.NormalizeAngle(act.Direction-wantDir)) > 1e-9 {
		t.Errorf("facing = %v, want bearing to nest %v", act.Direction, wantDir)
	}
}

func TestBehavior_QualityMultiplierBounds(t *testing.T) {
	w := setupBehaviorWorld()
	p := domain.DefaultParams()
	p.DepositAmount = 2.0

	cases := []struct {
		amount int
		want   float64
	}{
		{0, 2.0},   // снимка нет - множитель 1
		{15, 3.0},  // 1 + 15/30 = 1.5
		{30, 4.0},  // 1 + 1 = 2
		{300, 6.0}, // бонус зажат двойкой: 1 + 2 = 3
	}
	for _, c := range cases {
		ant := &domain.Ant{ID: 1, Pos: domain.Position{X: 100, Y: 100}, HasFood: true, FoodAmount: c.amount}
		act := ComputeAntAction(ant, w, p, rand.New(rand.NewSource(1)))
		if act.Deposit == nil {
			t.Fatalf("amount %d: no deposit", c.amount)
		}
		if math.Abs(act.Deposit.Amount-c.want) > 1e-9 {
			t.Errorf("amount %d: deposit %v, want %v", c.amount, act.Deposit.Amount, c.want)
		}
	}
}

func TestBehavior_ApproachWithoutDeposit(t *testing.T) {
	w := setupBehaviorWorld()
	rng := rand.New(rand.NewSource(1))

	// Еда видна (в радиусе обнаружения), но дальше радиуса подбора
	w.AddFood(domain.Position{X: 130, Y: 100}, 10)
	ant := &domain.Ant{ID: 1, Pos: domain.Position{X: 100, Y: 100}}
	w.Ants = append(w.Ants, ant)

	act := ComputeAntAction(ant, w, domain.DefaultParams(), rng)

	if act.HasFood {
		t.Error("picked up food beyond pickup radius")
	}
	if act.Deposit != nil {
		t.Error("deposited pheromone while approaching food")
	}
	if act.Pos == ant.Pos {
		t.Error("approaching ant did not move")
	}
}

func TestBehavior_DanglingTargetFoodTolerated(t *testing.T) {
	w := setupBehaviorWorld()
	rng := rand.New(rand.NewSource(1))

	// TargetFood ссылается на давно исчерпанный источник - муравей
	// просто продолжает обычную логику возвращения
	ant := &domain.Ant{
		ID:         1,
		Pos:        domain.Position{X: 100, Y: 100},
		HasFood:    true,
		TargetFood: 999,
		FoodAmount: 5,
	}
	w.Ants = append(w.Ants, ant)

	act := ComputeAntAction(ant, w, domain.DefaultParams(), rng)

	if act.Deposit == nil {
		t.Error("dangling reference broke returning behavior")
	}
	if act.Pos == ant.Pos {
		t.Error("dangling reference froze the ant")
	}
}

func TestBehavior_NoFoodNoPheromonesRandomWalks(t *testing.T) {
	w := setupBehaviorWorld()
	rng := rand.New(rand.NewSource(1))

	ant := &domain.Ant{ID: 1, Pos: domain.Position{X: 100, Y: 100}}
	w.Ants = append(w.Ants, ant)

	act := ComputeAntAction(ant, w, domain.DefaultParams(), rng)

	if act.HasFood || act.Deposit != nil {
		t.Error("foraging in empty world produced side effects")
	}
	if d := ant.Pos.DistanceTo(act.Pos, w.Width, w.Height); math.Abs(d-domain.AntSpeed) > 1e-9 {
		t.Errorf("random walk step = %v, want %v", d, domain.AntSpeed)
	}
}

func TestBehavior_FollowsGradientWhenTracking(t *testing.T) {
	w := setupBehaviorWorld()

	// Жирный след "к еде" слева-впереди; TrackingStrength=1 заставляет
	// муравья свернуть к нему
	ant := &domain.Ant{ID: 1, Pos: domain.Position{X: 400, Y: 300}}
	w.Ants = append(w.Ants, ant)

	leftProbe := ant.Pos.Step(-domain.SensorAngle, domain.SensorDistance)
	w.Field.Add(domain.Deposit{Pos: leftProbe, Type: domain.PheromoneToFood, Amount: 80})

	p := domain.DefaultParams()
	p.TrackingStrength = 1.0

	act := ComputeAntAction(ant, w, p, rand.New(rand.NewSource(2)))

	if math.Abs(domain.NormalizeAngle(act.Direction-(-domain.SensorAngle))) > 1e-9 {
		t.Errorf("direction = %v, want left sensor %v", act.Direction, -domain.SensorAngle)
	}
}
