package domain

import "encoding/json"

// ReplayAction - запись одного внешнего воздействия на симуляцию
// (размещение еды, подстройка параметров, сброс).
// Тики между воздействиями детерминированы сидом, поэтому хранить
// нужно только воздействия.
type ReplayAction struct {
	Tick    int64           `json:"tick"`
	Token   string          `json:"token"`   // кто прислал
	Action  ActionType      `json:"action"`  // что сделал
	Payload json.RawMessage `json:"payload"` // с какими параметрами
}

// ToCommand конвертирует запись обратно во внутреннюю команду движка.
func (a ReplayAction) ToCommand() InternalCommand {
	return InternalCommand{
		Action:  a.Action,
		Token:   a.Token,
		Payload: a.Payload,
	}
}

// ReplaySession - полная запись запуска: сид + параметры + лента
// воздействий. Достаточно для побитового повторения симуляции.
type ReplaySession struct {
	Instance  string         `json:"instance"`
	Seed      int64          `json:"seed"`
	Timestamp int64          `json:"timestamp"`
	Params    SimParams      `json:"params"`
	Actions   []ReplayAction `json:"actions"`
}
