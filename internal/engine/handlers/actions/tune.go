package actions

import (
	"fmt"

	"github.com/Logta/aco-simulation/internal/engine/handlers"
	"github.com/Logta/aco-simulation/pkg/api"
)

// HandleSetSpeed меняет множитель скорости анимации (слайдер клиента).
func HandleSetSpeed(ctx handlers.Context, p api.SpeedPayload) (handlers.Result, error) {
	ctx.Params.Speed = p.Speed
	return handlers.Result{
		Msg:     fmt.Sprintf("Скорость: x%.1f", p.Speed),
		MsgType: "INFO",
	}, nil
}

// HandleTune - живая подстройка параметров модели без сброса мира.
// nil-поля не меняются (границы уже проверены валидатором).
func HandleTune(ctx handlers.Context, p api.TunePayload) (handlers.Result, error) {
	if p.DecayRate != nil {
		ctx.Params.DecayRate = *p.DecayRate
	}
	if p.DepositAmount != nil {
		ctx.Params.DepositAmount = *p.DepositAmount
	}
	if p.TrackingStrength != nil {
		ctx.Params.TrackingStrength = *p.TrackingStrength
	}

	return handlers.Result{Msg: "Параметры обновлены", MsgType: "INFO"}, nil
}
