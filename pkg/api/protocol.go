package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Он представляет собой полный "снимок" симуляции после очередного тика.
// Клиент-рендерер не хранит свою копию мира: каждый кадр рисуется с нуля
// из этого снимка.
type ServerResponse struct {
	// Type тип сообщения. "INIT" при подключении, дальше всегда "UPDATE".
	Type string `json:"type"`

	// Tick номер последнего закоммиченного тика симуляции.
	Tick int64 `json:"tick"`

	// MyViewerID ID зрителя, которому адресован снимок.
	MyViewerID string `json:"myViewerId,omitempty"`

	// Instance имя инстанса симуляции, на который подписан клиент.
	Instance string `json:"instance,omitempty"`

	// Grid метаданные мира: размеры тороидальной плоскости и позиция гнезда.
	Grid *GridMeta `json:"grid,omitempty"`

	// Config текущие параметры симуляции (клиент отображает их в панели).
	Config *ConfigView `json:"config,omitempty"`

	// Ants все муравьи колонии.
	Ants []AntView `json:"ants,omitempty"`

	// Foods все живые источники еды.
	Foods []FoodView `json:"foods,omitempty"`

	// Pheromones все живые ячейки феромонного поля.
	// Интенсивность в диапазоне (0, 100].
	Pheromones []PheromoneView `json:"pheromones,omitempty"`

	// Stats агрегированные счетчики симуляции.
	Stats *StatsView `json:"stats,omitempty"`

	// Logs новые события с момента прошлой рассылки.
	Logs []LogEntry `json:"logs,omitempty"`
}

// GridMeta содержит размеры мира, чтобы клиент знал, какую
// плоскость готовить для рендеринга. Мир тороидальный: края склеены.
type GridMeta struct {
	Width  float64   `json:"w"`
	Height float64   `json:"h"`
	Nest   PointView `json:"nest"`
}

// PointView - точка на плоскости (DTO для domain.Position).
type PointView struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// AntView это DTO одного муравья.
type AntView struct {
	ID int `json:"id"`

	Pos PointView `json:"pos"`

	// Direction направление взгляда в радианах.
	Direction float64 `json:"direction"`

	// HasFood true, если муравей несет еду в гнездо (состояние Returning).
	HasFood bool `json:"hasFood"`

	// TargetFood ID еды, которую муравей подобрал. Слабая ссылка:
	// еда могла быть уже исчерпана, клиент не должен на нее полагаться.
	TargetFood int `json:"targetFood,omitempty"`
}

// FoodView это DTO источника еды.
type FoodView struct {
	ID     int       `json:"id"`
	Pos    PointView `json:"pos"`
	Amount int       `json:"amount"`
}

// PheromoneView это DTO одной ячейки феромонного поля.
// Pos - канонический центр ячейки, а не точка последнего вклада.
type PheromoneView struct {
	Pos       PointView `json:"pos"`
	Intensity float64   `json:"intensity"`
	Type      string    `json:"ptype"` // "toFood" | "toNest"
}

// ConfigView отражает текущие параметры симуляции.
type ConfigView struct {
	AntCount         int     `json:"antCount"`
	DecayRate        float64 `json:"decayRate"`
	DepositAmount    float64 `json:"depositAmount"`
	TrackingStrength float64 `json:"trackingStrength"`
	Speed            float64 `json:"speed"`
	DecayModel       string  `json:"decayModel"`
	Running          bool    `json:"running"`
}

// StatsView агрегированные счетчики для оверлея клиента.
type StatsView struct {
	Tick           int64 `json:"tick"`
	FoodDelivered  int   `json:"foodDelivered"`
	FoodRemaining  int   `json:"foodRemaining"`
	PheromoneCells int   `json:"pheromoneCells"`
	Viewers        int   `json:"viewers"`
}

// LogEntry представляет одну запись в ленте событий симуляции.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, EVENT, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token ID зрителя. Обязателен только для первого сообщения (LOGIN/INIT).
	Token string `json:"token,omitempty"`

	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// PlaceFoodPayload используется для PLACE_FOOD (клик по канвасу).
type PlaceFoodPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// Amount опционален; 0 означает "количество по умолчанию".
	Amount int `json:"amount,omitempty"`
}

// ScatterFoodPayload используется для SCATTER_FOOD (случайный разброс).
type ScatterFoodPayload struct {
	Count int `json:"count"`
}

// SpeedPayload используется для SET_SPEED (слайдер скорости).
type SpeedPayload struct {
	Speed float64 `json:"speed"`
}

// TunePayload используется для TUNE - живой подстройки параметров.
// Поля-указатели: nil означает "не менять".
type TunePayload struct {
	DecayRate        *float64 `json:"decayRate,omitempty"`
	DepositAmount    *float64 `json:"depositAmount,omitempty"`
	TrackingStrength *float64 `json:"trackingStrength,omitempty"`
}

// ResetPayload используется для RESET. Нулевые поля означают
// "оставить текущее значение".
type ResetPayload struct {
	AntCount int     `json:"antCount,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
}
