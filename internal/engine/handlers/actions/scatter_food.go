package actions

import (
	"fmt"

	"github.com/Logta/aco-simulation/internal/engine/handlers"
	"github.com/Logta/aco-simulation/pkg/api"
	"github.com/Logta/aco-simulation/pkg/colony"
)

// HandleScatterFood разбрасывает count источников еды по случайным
// точкам мира со случайным количеством.
func HandleScatterFood(ctx handlers.Context, p api.ScatterFoodPayload) (handlers.Result, error) {
	added := colony.ScatterFood(ctx.World, p.Count, ctx.Rng)

	return handlers.Result{
		Msg:     fmt.Sprintf("Разбросано %d источников еды", len(added)),
		MsgType: "EVENT",
	}, nil
}
