package domain

import (
	"fmt"
	"math"
)

// PheromoneType - тип химического следа.
type PheromoneType uint8

const (
	PheromoneToFood PheromoneType = iota // "здесь дорога к еде"
	PheromoneToNest                      // "здесь дорога к гнезду"
)

func (t PheromoneType) String() string {
	switch t {
	case PheromoneToFood:
		return "toFood"
	case PheromoneToNest:
		return "toNest"
	}
	return "unknown"
}

// ParsePheromoneType конвертирует строку протокола в тип.
func ParsePheromoneType(s string) (PheromoneType, error) {
	switch s {
	case "toFood":
		return PheromoneToFood, nil
	case "toNest":
		return PheromoneToNest, nil
	}
	return 0, fmt.Errorf("unknown pheromone type %q", s)
}

// CellKey - упакованный ключ ячейки поля (cx << 32 | cy).
// Целочисленный ключ вместо форматирования строк: поиск по мапе
// на горячем пути каждого тика.
type CellKey uint64

const cellMask = (1 << 32) - 1

// PackCellKey создает ключ из целочисленных координат ячейки.
func PackCellKey(cx, cy int) CellKey {
	return CellKey(uint64(uint32(int32(cx)))<<32 | uint64(uint32(int32(cy))))
}

// CX извлекает X-координату ячейки.
func (k CellKey) CX() int {
	return int(int32(uint32(k >> 32)))
}

// CY извлекает Y-координату ячейки.
func (k CellKey) CY() int {
	return int(int32(uint32(k & cellMask)))
}

// String для логов: [cx:cy]
func (k CellKey) String() string {
	return fmt.Sprintf("[%d:%d]", k.CX(), k.CY())
}

// CellKeyFor возвращает ключ ячейки, накрывающей позицию.
func CellKeyFor(pos Position) CellKey {
	cx := int(math.Floor(pos.X / PheromoneCellSize))
	cy := int(math.Floor(pos.Y / PheromoneCellSize))
	return PackCellKey(cx, cy)
}

// CellCenter возвращает канонический центр ячейки.
func (k CellKey) CellCenter() Position {
	return Position{
		X: (float64(k.CX()) + 0.5) * PheromoneCellSize,
		Y: (float64(k.CY()) + 0.5) * PheromoneCellSize,
	}
}

// Pheromone - одна живая запись поля.
// Инвариант: на ячейку существует не больше одной записи; повторные
// вклады усиливают существующую.
type Pheromone struct {
	Pos       Position      `json:"pos"` // центр ячейки, не точка вклада
	Intensity float64       `json:"intensity"`
	Type      PheromoneType `json:"type"`
}

// Deposit - описание одного намерения оставить феромон.
// Муравьи возвращают такие описания, а не трогают поле напрямую.
type Deposit struct {
	Pos    Position
	Type   PheromoneType
	Amount float64
}

// PheromoneField - разреженное затухающее скалярное поле над
// квантованной сеткой.
type PheromoneField map[CellKey]*Pheromone

// NewPheromoneField создает пустое поле.
func NewPheromoneField() PheromoneField {
	return make(PheromoneField)
}

// Add применяет один вклад: усиливает существующую запись (с потолком)
// или создает новую в центре ячейки.
// Ячейка хранит тип ПОСЛЕДНЕГО вклада: при столкновении двух типов в
// одной ячейке побеждает последний. Это принятое упрощение модели,
// а не ошибка слияния.
func (f PheromoneField) Add(d Deposit) {
	key := CellKeyFor(d.Pos)
	if existing, ok := f[key]; ok {
		existing.Intensity = math.Min(PheromoneMaxIntensity, existing.Intensity+d.Amount)
		existing.Type = d.Type
		return
	}
	f[key] = &Pheromone{
		Pos:       key.CellCenter(),
		Intensity: math.Min(PheromoneMaxIntensity, d.Amount),
		Type:      d.Type,
	}
}

// Merge применяет пачку вкладов одного тика в порядке поступления.
func (f PheromoneField) Merge(deposits []Deposit) {
	for _, d := range deposits {
		f.Add(d)
	}
}

// DecayStep применяет один шаг испарения ко всем записям и удаляет
// опустившиеся ниже порога. Вызывается по wall-clock каденции
// (инстансом), а не каждый тик.
func (f PheromoneField) DecayStep(rate float64, model DecayModel) {
	for key, p := range f {
		switch model {
		case DecayLogarithmic:
			// Испарение растет с концентрацией: запись на потолке теряет
			// вдвое больше записи у нуля. Множитель нормирован так, что
			// log1p(max)/log(max+1) = 1.
			evap := (1 - rate) * p.Intensity * (1 + math.Log1p(p.Intensity)/math.Log(PheromoneMaxIntensity+1))
			p.Intensity -= evap
		default:
			p.Intensity *= rate
		}

		if p.Intensity < PheromoneMinIntensity {
			delete(f, key)
		}
	}
}

// StrengthAt возвращает суммарную силу следов типа t в радиусе radius
// от точки: sum(intensity / (1 + dist)) по тороидальному расстоянию.
// 0, если подходящих записей нет.
func (f PheromoneField) StrengthAt(pos Position, t PheromoneType, radius, w, h float64) float64 {
	total := 0.0
	for _, p := range f {
		if p.Type != t {
			continue
		}
		d := pos.DistanceTo(p.Pos, w, h)
		if d > radius {
			continue
		}
		// d = 0 безопасен: знаменатель не меньше 1
		total += p.Intensity / (1 + d)
	}
	return total
}

// Clone возвращает глубокую копию поля.
func (f PheromoneField) Clone() PheromoneField {
	out := make(PheromoneField, len(f))
	for key, p := range f {
		cp := *p
		out[key] = &cp
	}
	return out
}
