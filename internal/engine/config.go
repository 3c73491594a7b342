package engine

import (
	"time"

	"github.com/Logta/aco-simulation/internal/domain"
)

// Каденции цикла
const (
	// BaseFrameInterval - базовый интервал тика (около 30 fps).
	// Эффективный интервал = BaseFrameInterval / Speed.
	BaseFrameInterval = 33 * time.Millisecond

	// DecayInterval - wall-clock каденция испарения феромонов.
	// Отвязана от каденции тиков: на высоких скоростях следы не
	// должны таять быстрее.
	DecayInterval = 500 * time.Millisecond

	// PlaybackDecayEveryTicks - в режиме реплея wall-clock недоступен
	// (симуляция гонится без таймера), испарение привязывается к
	// тикам: DecayInterval / BaseFrameInterval.
	PlaybackDecayEveryTicks = 15
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависят стартовые направления
	// муравьев и все случайные решения симуляции.
	Seed int64

	// Params - стартовые параметры симуляции по умолчанию.
	Params domain.SimParams

	// InitialFood - сколько источников разбросать при старте.
	InitialFood int
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:        time.Now().UnixNano(),
		Params:      domain.DefaultParams(),
		InitialFood: 5,
	}
}
