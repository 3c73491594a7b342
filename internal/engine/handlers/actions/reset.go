package actions

import (
	"github.com/Logta/aco-simulation/internal/engine/handlers"
	"github.com/Logta/aco-simulation/pkg/api"
)

// HandleReset пересоздает мир: колония заново в гнезде, еда и феромоны
// пусты, флаг запуска снят. Нулевые поля payload оставляют текущие
// значения параметров.
func HandleReset(ctx handlers.Context, p api.ResetPayload) (handlers.Result, error) {
	params := *ctx.Params
	if p.AntCount != 0 {
		params.AntCount = p.AntCount
	}
	if p.Width != 0 {
		params.Width = p.Width
	}
	if p.Height != 0 {
		params.Height = p.Height
	}

	ctx.Control.Reset(params)

	return handlers.Result{
		Msg:     "Симуляция сброшена",
		MsgType: "INFO",
	}, nil
}
