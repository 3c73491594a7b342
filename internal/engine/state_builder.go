package engine

import (
	"github.com/Logta/aco-simulation/pkg/api"
)

// maxPendingLogs - потолок недоставленной ленты событий.
// Пока зрителей нет, лента копится (подключившийся позже зритель
// получит недавние события, включая отказы своих же команд), но не
// растет бесконечно: старые записи вытесняются.
const maxPendingLogs = 50

// publishUpdate рассылает актуальный снимок всем зрителям КОНКРЕТНОГО
// инстанса. Логи инстанса очищаются после рассылки.
func (s *GameService) publishUpdate(i *Instance) {
	viewers := s.viewersOf(i.Name)
	if len(viewers) == 0 {
		// Некому смотреть: снимок не строим, ленту не теряем -
		// только подрезаем хвост
		if len(i.Logs) > maxPendingLogs {
			i.Logs = i.Logs[len(i.Logs)-maxPendingLogs:]
		}
		return
	}

	state := s.BuildState(i)
	for _, viewerID := range viewers {
		personal := *state
		personal.MyViewerID = viewerID
		s.Hub.SendTo(viewerID, personal)
	}

	i.Logs = []api.LogEntry{}
}

// BuildState создает снимок инстанса для отправки клиентам.
// Клиент рисует кадр целиком из этого DTO, своего состояния у него нет.
func (s *GameService) BuildState(i *Instance) *api.ServerResponse {
	w := i.World

	// 1. Муравьи
	ants := make([]api.AntView, 0, len(w.Ants))
	for _, a := range w.Ants {
		ants = append(ants, api.AntView{
			ID:         int(a.ID),
			Pos:        api.PointView{X: a.Pos.X, Y: a.Pos.Y},
			Direction:  a.Direction,
			HasFood:    a.HasFood,
			TargetFood: int(a.TargetFood),
		})
	}

	// 2. Еда
	foods := make([]api.FoodView, 0, len(w.Foods))
	foodRemaining := 0
	for _, f := range w.Foods {
		foods = append(foods, api.FoodView{
			ID:     int(f.ID),
			Pos:    api.PointView{X: f.Pos.X, Y: f.Pos.Y},
			Amount: f.Amount,
		})
		foodRemaining += f.Amount
	}

	// 3. Феромонное поле (только живые ячейки)
	pheromones := make([]api.PheromoneView, 0, len(w.Field))
	for _, p := range w.Field {
		pheromones = append(pheromones, api.PheromoneView{
			Pos:       api.PointView{X: p.Pos.X, Y: p.Pos.Y},
			Intensity: p.Intensity,
			Type:      p.Type.String(),
		})
	}

	// Копия логов
	logsCopy := make([]api.LogEntry, len(i.Logs))
	copy(logsCopy, i.Logs)

	return &api.ServerResponse{
		Type:     "UPDATE",
		Tick:     w.Tick,
		Instance: i.Name,
		Grid: &api.GridMeta{
			Width:  w.Width,
			Height: w.Height,
			Nest:   api.PointView{X: w.Nest.X, Y: w.Nest.Y},
		},
		Config: &api.ConfigView{
			AntCount:         i.Params.AntCount,
			DecayRate:        i.Params.DecayRate,
			DepositAmount:    i.Params.DepositAmount,
			TrackingStrength: i.Params.TrackingStrength,
			Speed:            i.Params.Speed,
			DecayModel:       i.Params.DecayModel.String(),
			Running:          i.Running,
		},
		Ants:       ants,
		Foods:      foods,
		Pheromones: pheromones,
		Stats: &api.StatsView{
			Tick:           w.Tick,
			FoodDelivered:  w.FoodDelivered,
			FoodRemaining:  foodRemaining,
			PheromoneCells: len(w.Field),
			Viewers:        s.Hub.SubscriberCount(),
		},
		Logs: logsCopy,
	}
}
