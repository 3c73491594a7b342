package systems

import (
	"math"

	"github.com/Logta/aco-simulation/internal/domain"
)

// Параметры расталкивания
const (
	// avoidBlendPerNeighbor - сила доворота на одного соседа.
	// Итоговая сила зажата единицей.
	avoidBlendPerNeighbor = 0.3

	// avoidNudge - максимальный сдвиг позиции от расталкивания.
	// Меньше базового шага, чтобы коррекция не обгоняла движение.
	avoidNudge = 0.5
)

// AvoidResult - скорректированные позиция и направление.
type AvoidResult struct {
	Pos       domain.Position
	Direction float64

	// Adjusted false означает точное тождество входу: соседей в радиусе
	// не было и коррекция не применялась.
	Adjusted bool
}

// Avoid вычисляет коррекцию позиции/направления от коротких
// столкновений с другими муравьями. Себя исключаем по ID.
// Не меняет состояние мира!
func Avoid(selfID domain.AntID, pos domain.Position, dir float64, others []*domain.Ant, radius, w, h float64) AvoidResult {
	var repX, repY float64
	neighbors := 0

	for _, other := range others {
		if other.ID == selfID {
			continue
		}
		d := pos.DistanceTo(other.Pos, w, h)
		if d >= radius {
			continue
		}
		if d == 0 {
			// Два муравья в одной точке: направление отталкивания не
			// определено, пропускаем вклад вместо деления на ноль
			continue
		}

		// Ближе - сильнее: вес (radius - d) / radius
		weight := (radius - d) / radius
		dx, dy := pos.DeltaTo(other.Pos, w, h)
		// Отталкиваемся ОТ соседа
		repX -= dx / d * weight
		repY -= dy / d * weight
		neighbors++
	}

	if neighbors == 0 {
		// Тождество, не "почти ноль": вход возвращается как есть
		return AvoidResult{Pos: pos, Direction: dir}
	}

	mag := math.Sqrt(repX*repX + repY*repY)
	if mag < 1e-12 {
		// Соседи есть, но отталкивания сошлись в ноль (симметричное
		// окружение) - коррекция не определена
		return AvoidResult{Pos: pos, Direction: dir}
	}

	// Величина суммарного отталкивания несет веса (radius-d)/radius:
	// она и масштабирует коррекцию, близкий сосед доворачивает и
	// сдвигает заметно сильнее далекого
	strength := math.Min(1, mag)

	// Доворачиваем в сторону суммарного отталкивания
	repAngle := math.Atan2(repY, repX)
	blend := math.Min(1, avoidBlendPerNeighbor*float64(neighbors)) * strength
	newDir := dir + domain.NormalizeAngle(repAngle-dir)*blend

	// И чуть сдвигаем позицию вдоль отталкивания
	newPos := pos.Shift(repX/mag*avoidNudge*strength, repY/mag*avoidNudge*strength).Wrap(w, h)

	return AvoidResult{Pos: newPos, Direction: newDir, Adjusted: true}
}
