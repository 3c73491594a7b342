package actions

import (
	"fmt"

	"github.com/Logta/aco-simulation/internal/domain"
	"github.com/Logta/aco-simulation/internal/engine/handlers"
	"github.com/Logta/aco-simulation/pkg/api"
)

// HandlePlaceFood добавляет один источник еды в указанную точку
// (клик по канвасу на клиенте).
func HandlePlaceFood(ctx handlers.Context, p api.PlaceFoodPayload) (handlers.Result, error) {
	amount := p.Amount
	if amount == 0 {
		amount = domain.DefaultFoodAmount
	}

	f := ctx.World.AddFood(domain.Position{X: p.X, Y: p.Y}, amount)

	return handlers.Result{
		Msg:     fmt.Sprintf("Еда (%d) размещена в (%.0f, %.0f)", f.Amount, f.Pos.X, f.Pos.Y),
		MsgType: "EVENT",
	}, nil
}
