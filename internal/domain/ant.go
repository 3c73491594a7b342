package domain

// AntID - идентификатор муравья. Муравьи создаются пачкой при
// инициализации/сбросе, ID стабильны в пределах одного запуска мира.
type AntID int

// FoodID - идентификатор источника еды. 0 означает "нет ссылки".
type FoodID int

// AntState - состояние конечного автомата муравья.
// Состояний ровно два; оно полностью выводится из HasFood.
type AntState uint8

const (
	StateForaging  AntState = iota // ищет еду
	StateReturning                 // несет еду в гнездо
)

func (s AntState) String() string {
	switch s {
	case StateForaging:
		return "foraging"
	case StateReturning:
		return "returning"
	}
	return "unknown"
}

// Ant - один агент симуляции.
type Ant struct {
	ID  AntID    `json:"id"`
	Pos Position `json:"pos"`

	// Direction - направление взгляда в радианах. Диапазон не ограничен,
	// геометрия интерпретирует его mod 2pi.
	Direction float64 `json:"direction"`

	// HasFood true в состоянии Returning.
	HasFood bool `json:"hasFood"`

	// TargetFood - слабая ссылка на подобранную еду. Источник может быть
	// исчерпан другими муравьями, пока мы несем свою порцию; это не
	// ошибка, решения принимаются по живым запросам расстояния.
	TargetFood FoodID `json:"targetFood,omitempty"`

	// FoodAmount - снимок количества источника в момент подбора.
	// Масштабирует силу феромонного следа на обратном пути.
	FoodAmount int `json:"foodAmount,omitempty"`
}

// State возвращает текущее состояние автомата.
func (a *Ant) State() AntState {
	if a.HasFood {
		return StateReturning
	}
	return StateForaging
}
