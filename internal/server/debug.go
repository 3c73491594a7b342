package server

import (
	"encoding/json"
	"net/http"

	"github.com/Logta/aco-simulation/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/instances", h.handleListInstances)
	mux.HandleFunc("/debug/viewers", h.handleListViewers)
	mux.HandleFunc("/debug/ants", h.handleDumpAnts)
	mux.HandleFunc("/debug/field", h.handleDumpField)
}

// /debug/instances - список активных инстансов симуляции
func (h *DebugHandler) handleListInstances(w http.ResponseWriter, r *http.Request) {
	type InstanceSummary struct {
		Name          string  `json:"name"`
		Tick          int64   `json:"tick"`
		Running       bool    `json:"running"`
		Playback      bool    `json:"playback"`
		Seed          int64   `json:"seed"`
		AntCount      int     `json:"ant_count"`
		FoodSources   int     `json:"food_sources"`
		FieldCells    int     `json:"field_cells"`
		FoodDelivered int     `json:"food_delivered"`
		Speed         float64 `json:"speed"`
	}

	var summary []InstanceSummary

	for name, inst := range h.Service.Instances {
		summary = append(summary, InstanceSummary{
			Name:          name,
			Tick:          inst.World.Tick,
			Running:       inst.Running,
			Playback:      inst.IsPlayback,
			Seed:          inst.Seed,
			AntCount:      len(inst.World.Ants),
			FoodSources:   len(inst.World.Foods),
			FieldCells:    len(inst.World.Field),
			FoodDelivered: inst.World.FoodDelivered,
			Speed:         inst.Params.Speed,
		})
	}

	writeJSON(w, summary)
}

// /debug/viewers - активные подписчики хаба
func (h *DebugHandler) handleListViewers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Hub.ViewerIDs())
}

// /debug/ants?instance=main - дамп всех муравьев инстанса
// (полные структуры domain.Ant, включая внутренние поля)
func (h *DebugHandler) handleDumpAnts(w http.ResponseWriter, r *http.Request) {
	inst, ok := h.instanceFromQuery(r)
	if !ok {
		http.Error(w, "Instance not found", http.StatusNotFound)
		return
	}

	writeJSON(w, inst.World.Ants)
}

// /debug/field?instance=main - дамп феромонного поля.
// Ключи мапы для JSON превращаем в строки [cx:cy]
func (h *DebugHandler) handleDumpField(w http.ResponseWriter, r *http.Request) {
	inst, ok := h.instanceFromQuery(r)
	if !ok {
		http.Error(w, "Instance not found", http.StatusNotFound)
		return
	}

	dump := make(map[string]interface{}, len(inst.World.Field))
	for key, p := range inst.World.Field {
		dump[key.String()] = p
	}

	writeJSON(w, dump)
}

func (h *DebugHandler) instanceFromQuery(r *http.Request) (*engine.Instance, bool) {
	name := r.URL.Query().Get("instance")
	if name == "" {
		name = engine.DefaultInstance
	}
	inst, ok := h.Service.Instances[name]
	return inst, ok
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug_client.html)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	// Если data == nil (например, пустой список), возвращаем пустой массив [], а не null
	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
