package actions

import (
	"github.com/Logta/aco-simulation/internal/engine/handlers"
)

// HandlePause останавливает продвижение тиков. Цикл инстанса
// продолжает крутиться, поэтому возобновление мгновенное.
func HandlePause(ctx handlers.Context) (handlers.Result, error) {
	ctx.Control.Pause()
	return handlers.Result{Msg: "Пауза", MsgType: "INFO"}, nil
}

// HandleResume возобновляет продвижение тиков.
func HandleResume(ctx handlers.Context) (handlers.Result, error) {
	ctx.Control.Resume()
	return handlers.Result{Msg: "Запуск", MsgType: "INFO"}, nil
}

// HandleStep выполняет ровно один тик, не снимая паузу.
// Удобно для покадрового разбора поведения колонии.
func HandleStep(ctx handlers.Context) (handlers.Result, error) {
	ctx.Control.RequestStep()
	return handlers.EmptyResult(), nil
}
