package actions

import (
	"github.com/Logta/aco-simulation/internal/engine/handlers"
)

// HandleInit - первый запрос состояния от нового зрителя.
// Ничего не меняет: инстанс сам рассылает снимок после каждой команды.
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.EmptyResult(), nil
}
