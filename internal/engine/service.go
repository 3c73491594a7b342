package engine

import (
	"fmt"
	"sync"

	"github.com/Logta/aco-simulation/internal/domain"
	"github.com/Logta/aco-simulation/internal/engine/handlers"
	"github.com/Logta/aco-simulation/internal/engine/handlers/actions"
	"github.com/Logta/aco-simulation/internal/infrastructure/storage"
	"github.com/Logta/aco-simulation/internal/network"
	"github.com/Logta/aco-simulation/pkg/api"
	"github.com/Logta/aco-simulation/pkg/colony"
	"github.com/Logta/aco-simulation/pkg/logger"
)

// DefaultInstance - имя инстанса, на который подписываются зрители
// по умолчанию.
const DefaultInstance = "main"

// GameService владеет всеми запущенными инстансами симуляции и
// маршрутизирует команды зрителей в их циклы.
type GameService struct {
	Instances map[string]*Instance

	Hub *network.Broadcaster

	actionHandlers map[domain.ActionType]handlers.HandlerFunc

	// viewers: ViewerID -> имя инстанса, на который он смотрит
	mu      sync.RWMutex
	viewers map[string]string

	Replays *storage.ReplayService

	cfg Config
}

func NewService(cfg Config) *GameService {
	s := &GameService{
		Instances:      make(map[string]*Instance),
		Hub:            network.NewBroadcaster(),
		actionHandlers: make(map[domain.ActionType]handlers.HandlerFunc),
		viewers:        make(map[string]string),
		Replays:        storage.NewReplayService("replays"),
		cfg:            cfg,
	}

	s.registerHandlers()

	// Инстанс по умолчанию со стартовой едой
	inst := NewInstance(DefaultInstance, s, cfg.Seed, cfg.Params)
	if cfg.InitialFood > 0 {
		colony.ScatterFood(inst.World, cfg.InitialFood, inst.Rng)
	}
	s.Instances[DefaultInstance] = inst

	return s
}

func (s *GameService) registerHandlers() {
	s.actionHandlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	s.actionHandlers[domain.ActionPlaceFood] = handlers.WithPayload(actions.HandlePlaceFood)
	s.actionHandlers[domain.ActionScatterFood] = handlers.WithPayload(actions.HandleScatterFood)
	s.actionHandlers[domain.ActionReset] = handlers.WithPayload(actions.HandleReset)
	s.actionHandlers[domain.ActionPause] = handlers.WithEmptyPayload(actions.HandlePause)
	s.actionHandlers[domain.ActionResume] = handlers.WithEmptyPayload(actions.HandleResume)
	s.actionHandlers[domain.ActionSetSpeed] = handlers.WithPayload(actions.HandleSetSpeed)
	s.actionHandlers[domain.ActionTune] = handlers.WithPayload(actions.HandleTune)
	s.actionHandlers[domain.ActionStep] = handlers.WithEmptyPayload(actions.HandleStep)
}

// Start запускает циклы всех инстансов.
func (s *GameService) Start() {
	for _, inst := range s.Instances {
		go inst.Run()
	}
}

// Stop останавливает все циклы.
func (s *GameService) Stop() {
	for _, inst := range s.Instances {
		inst.Stop()
	}
}

// ProcessCommand принимает команду от внешнего мира (WebSocket).
// Доверяем, что Token уже проставлен клиентским соединением.
func (s *GameService) ProcessCommand(externalCmd api.ClientCommand) {
	actionType := domain.ParseAction(externalCmd.Action)
	if actionType == domain.ActionUnknown {
		logger.Log.Warnf("Unknown action: %s", externalCmd.Action)
		return
	}

	inst := s.instanceFor(externalCmd.Token)
	if inst == nil {
		logger.Log.WithField("viewer", externalCmd.Token).Warn("Command from viewer without instance")
		return
	}

	cmd := InstanceCommand{Cmd: domain.InternalCommand{
		Action:  actionType,
		Token:   externalCmd.Token,
		Payload: externalCmd.Payload,
	}}

	select {
	case inst.CommandChan <- cmd:
	default:
		logger.Log.WithField("instance", inst.Name).Warn("Command channel full, command dropped")
	}
}

// Subscribe подписывает зрителя на инстанс по умолчанию и возвращает
// его личный канал снимков.
func (s *GameService) Subscribe(viewerID string) chan api.ServerResponse {
	s.mu.Lock()
	s.viewers[viewerID] = DefaultInstance
	s.mu.Unlock()

	return s.Hub.Register(viewerID)
}

// Unsubscribe отключает зрителя.
func (s *GameService) Unsubscribe(viewerID string) {
	s.mu.Lock()
	delete(s.viewers, viewerID)
	s.mu.Unlock()

	s.Hub.Unregister(viewerID)
}

// instanceFor возвращает инстанс, на который смотрит зритель.
// Зритель без записи получает инстанс по умолчанию (INIT приходит
// до завершения подписки).
func (s *GameService) instanceFor(viewerID string) *Instance {
	s.mu.RLock()
	name, ok := s.viewers[viewerID]
	s.mu.RUnlock()

	if !ok {
		name = DefaultInstance
	}
	return s.Instances[name]
}

// viewersOf возвращает подписчиков конкретного инстанса.
func (s *GameService) viewersOf(name string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []string
	for viewerID, instName := range s.viewers {
		if instName == name {
			out = append(out, viewerID)
		}
	}
	return out
}

// SaveReplays сохраняет ленты всех живых (не playback) инстансов.
// Вызывается при graceful shutdown.
func (s *GameService) SaveReplays() {
	for _, inst := range s.Instances {
		if inst.IsPlayback || len(inst.Replay.Actions) == 0 {
			continue
		}
		if err := s.Replays.Save(inst.Replay); err != nil {
			logger.Log.WithError(err).Errorf("Failed to save replay for %s", inst.Name)
			continue
		}
		logger.Log.WithField("instance", inst.Name).
			Infof("Replay saved (%d actions)", len(inst.Replay.Actions))
	}
}

// LoadReplay создает playback-инстанс из файла реплея.
func (s *GameService) LoadReplay(path string) error {
	session, err := s.Replays.Load(path)
	if err != nil {
		return fmt.Errorf("load replay: %w", err)
	}

	name := fmt.Sprintf("playback-%s", session.Instance)
	inst := NewInstance(name, s, session.Seed, session.Params)
	inst.IsPlayback = true
	inst.Replay = session
	s.Instances[name] = inst

	logger.Log.Infof("Replay loaded: %s (seed %d, %d actions)",
		path, session.Seed, len(session.Actions))
	return nil
}
