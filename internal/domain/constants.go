package domain

import "math"

// Параметры феромонного поля
const (
	// PheromoneCellSize - размер ячейки квантования. Все вклады внутри
	// одной ячейки сливаются в одну запись с каноническим центром.
	PheromoneCellSize = 10.0

	// PheromoneMaxIntensity - потолок интенсивности одной ячейки.
	PheromoneMaxIntensity = 100.0

	// PheromoneMinIntensity - порог выживания: после распада записи
	// слабее этого удаляются из поля.
	PheromoneMinIntensity = 0.05
)

// Параметры движения муравья
const (
	AntSpeed     = 2.0         // базовый шаг за тик
	AntTurnRange = math.Pi / 2 // диапазон шума случайного блуждания
	SeekBias     = 0.7         // вес притяжения к цели в biased-seek
)

// Радиусы восприятия и взаимодействия
const (
	PickupRadius        = 5.0  // подбор еды
	FoodDetectionRadius = 40.0 // обнаружение еды (прямая видимость)
	NestRadius          = 10.0 // прибытие в гнездо
	AvoidanceRadius     = 8.0  // расталкивание муравьев
)

// Параметры феромонных сенсоров (три луча: влево, прямо, вправо)
const (
	SensorAngle     = math.Pi / 6 // отклонение боковых сенсоров
	SensorDistance  = 15.0        // проекция сенсора вперед
	SensorRadius    = 20.0        // радиус замера силы в точке сенсора
	MinSignal       = 0.1         // слабее этого - "градиента нет"
	MinHeadingDelta = 0.05        // не дергаем направление из-за шума
)

// Параметры еды
const (
	DefaultFoodAmount = 30 // количество при ручном размещении
	ScatterAmountMin  = 10 // разброс: нижняя граница случайного количества
	ScatterAmountMax  = 50 // разброс: верхняя граница
)

// Параметры качества источника: муравей с богатого источника оставляет
// след сильнее. Множитель 1 + min(amount/QualityDivisor, QualityMaxBonus),
// то есть от 1x до 3x.
const (
	QualityDivisor  = 30.0
	QualityMaxBonus = 2.0
)
