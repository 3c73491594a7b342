package domain

// World - авторитетный снимок состояния симуляции.
// Между тиками снимком монопольно владеет оркестратор (Instance);
// системы получают его только на чтение и возвращают описания
// намерений, а не мутируют общие данные.
type World struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Nest - единственная фиксированная точка гнезда на весь запуск.
	Nest Position `json:"nest"`

	Ants  []*Ant  `json:"ants"`
	Foods []*Food `json:"foods"`

	Field PheromoneField `json:"-"`

	// Tick - номер последнего закоммиченного тика.
	Tick int64 `json:"tick"`

	// FoodDelivered - сколько порций еды доставлено в гнездо за запуск.
	FoodDelivered int `json:"foodDelivered"`

	// nextFoodID - счетчик для выдачи ID новым источникам.
	nextFoodID FoodID
}

// NewWorld создает пустой мир с гнездом в центре.
func NewWorld(width, height float64) *World {
	return &World{
		Width:  width,
		Height: height,
		Nest:   Position{X: width / 2, Y: height / 2},
		Ants:   make([]*Ant, 0),
		Foods:  make([]*Food, 0),
		Field:  NewPheromoneField(),
	}
}

// NextFoodID выдает следующий свободный ID источника (начиная с 1,
// чтобы 0 оставался значением "нет ссылки").
func (w *World) NextFoodID() FoodID {
	w.nextFoodID++
	return w.nextFoodID
}

// FindFood ищет источник по ID. nil, если уже удален (слабые ссылки
// TargetFood это переживают).
func (w *World) FindFood(id FoodID) *Food {
	for _, f := range w.Foods {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// AddFood добавляет источник, заворачивая позицию в границы мира.
func (w *World) AddFood(pos Position, amount int) *Food {
	f := &Food{
		ID:     w.NextFoodID(),
		Pos:    pos.Wrap(w.Width, w.Height),
		Amount: amount,
	}
	w.Foods = append(w.Foods, f)
	return f
}

// RemoveFood удаляет источник по ID (swap with last, порядок не важен).
func (w *World) RemoveFood(id FoodID) {
	for i, f := range w.Foods {
		if f.ID == id {
			last := len(w.Foods) - 1
			w.Foods[i] = w.Foods[last]
			w.Foods[last] = nil
			w.Foods = w.Foods[:last]
			return
		}
	}
}

// Clone возвращает глубокую копию мира. Оркестратор строит следующий
// снимок на копии, чтобы все муравьи тика читали одно и то же прошлое.
func (w *World) Clone() *World {
	out := &World{
		Width:         w.Width,
		Height:        w.Height,
		Nest:          w.Nest,
		Tick:          w.Tick,
		FoodDelivered: w.FoodDelivered,
		nextFoodID:    w.nextFoodID,
		Ants:          make([]*Ant, len(w.Ants)),
		Foods:         make([]*Food, len(w.Foods)),
		Field:         w.Field.Clone(),
	}
	for i, a := range w.Ants {
		cp := *a
		out.Ants[i] = &cp
	}
	for i, f := range w.Foods {
		cp := *f
		out.Foods[i] = &cp
	}
	return out
}
