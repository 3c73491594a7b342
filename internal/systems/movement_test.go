package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Logta/aco-simulation/internal/domain"
)

func TestRandomWalk(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	w, h := 800.0, 600.0
	pos := domain.Position{X: 100, Y: 100}

	res := RandomWalk(pos, 0, w, h, 2.0, math.Pi/2, rng)

	// Шаг ровно speed единиц
	if d := pos.DistanceTo(res.Pos, w, h); math.Abs(d-2.0) > 1e-9 {
		t.Errorf("step length = %v, want 2.0", d)
	}

	// Поворот в пределах [-turnRange/2, turnRange/2]
	if delta := math.Abs(res.Direction - 0); delta > math.Pi/4 {
		t.Errorf("turn %v exceeds half turn range %v", delta, math.Pi/4)
	}

	// Позиция завернута
	if res.Pos.X < 0 || res.Pos.X >= w || res.Pos.Y < 0 || res.Pos.Y >= h {
		t.Errorf("position %v out of bounds", res.Pos)
	}
}

func TestRandomWalk_WrapsAtEdge(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	w, h := 800.0, 600.0

	// Из угла с нулевым диапазоном поворота муравей, смотрящий влево,
	// обязан вынырнуть у правого края
	res := RandomWalk(domain.Position{X: 0.5, Y: 100}, math.Pi, w, h, 2.0, 0, rng)
	if res.Pos.X < 790 {
		t.Errorf("expected wrap to right edge, got %v", res.Pos)
	}
}

func TestSeek_SnapsToTarget(t *testing.T) {
	w, h := 800.0, 600.0
	target := domain.Position{X: 101, Y: 100}

	// До цели 1.0 < speed 2.0: встаем точно на цель, без перелета
	got := Seek(domain.Position{X: 100, Y: 100}, target, w, h, 2.0)
	if got != target {
		t.Errorf("Seek did not snap: got %v, want %v", got, target)
	}
}

func TestSeek_StepsExactly(t *testing.T) {
	w, h := 800.0, 600.0
	pos := domain.Position{X: 100, Y: 100}
	target := domain.Position{X: 200, Y: 100}

	got := Seek(pos, target, w, h, 2.0)
	want := domain.Position{X: 102, Y: 100}
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("Seek step: got %v, want %v", got, want)
	}
}

func TestSeek_TakesWrapShortcut(t *testing.T) {
	w, h := 800.0, 600.0

	// Цель за правым краем: короткий путь - влево через край
	got := Seek(domain.Position{X: 5, Y: 100}, domain.Position{X: 795, Y: 100}, w, h, 2.0)
	if math.Abs(got.X-3) > 1e-9 {
		t.Errorf("Seek went the long way: got %v, want X=3", got)
	}
}

func TestBiasedSeek_FullBiasTurnsToTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	w, h := 800.0, 600.0
	pos := domain.Position{X: 100, Y: 100}
	target := domain.Position{X: 100, Y: 200} // прямо "вниз" (+y)

	// bias=1: шум не участвует, направление за один шаг становится
	// азимутом на цель
	res := BiasedSeek(pos, 0, target, w, h, 1.0, math.Pi/2, 2.0, rng)
	if math.Abs(domain.NormalizeAngle(res.Direction-math.Pi/2)) > 1e-9 {
		t.Errorf("direction = %v, want pi/2", res.Direction)
	}
}

func TestBiasedSeek_ZeroBiasIgnoresTarget(t *testing.T) {
	w, h := 800.0, 600.0
	pos := domain.Position{X: 100, Y: 100}
	target := domain.Position{X: 700, Y: 500}

	// bias=0 с одинаковым сидом дает ровно тот же поворот, что и
	// RandomWalk: цель полностью игнорируется
	resBiased := BiasedSeek(pos, 0.3, target, w, h, 0, math.Pi/2, 2.0, rand.New(rand.NewSource(9)))
	resWalk := RandomWalk(pos, 0.3, w, h, 2.0, math.Pi/2, rand.New(rand.NewSource(9)))

	if math.Abs(resBiased.Direction-resWalk.Direction) > 1e-9 {
		t.Errorf("bias=0 direction %v differs from random walk %v",
			resBiased.Direction, resWalk.Direction)
	}
}
