package handlers

import (
	"encoding/json"
	"math/rand"

	"github.com/Logta/aco-simulation/internal/domain"
)

// SimControl - управление циклом инстанса симуляции. Реализуется
// самим Instance; хендлеры дергают его вместо прямого доступа к циклу.
type SimControl interface {
	Pause()
	Resume()

	// RequestStep просит цикл выполнить один тик, пока симуляция
	// на паузе.
	RequestStep()

	// Reset пересоздает мир с новыми параметрами и снятым флагом
	// запуска.
	Reset(params domain.SimParams)
}

// Context передает хендлеру состояние симуляции.
// Команды обрабатываются в горутине цикла инстанса МЕЖДУ тиками,
// поэтому хендлер может мутировать World и Params без блокировок.
type Context struct {
	World  *domain.World
	Params *domain.SimParams
	Rng    *rand.Rand

	Control SimControl
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи инстанса напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст лога
	MsgType string // Тип лога (INFO, EVENT, ERROR)
}

// HandlerFunc - это контракт для любой команды (PLACE_FOOD, TUNE, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
