package engine

import (
	"math/rand"
	"time"

	"github.com/Logta/aco-simulation/internal/domain"
	"github.com/Logta/aco-simulation/internal/engine/handlers"
	"github.com/Logta/aco-simulation/pkg/api"
	"github.com/Logta/aco-simulation/pkg/colony"
	"github.com/Logta/aco-simulation/pkg/logger"
)

// InstanceCommand обертка для передачи команды в горутину цикла
type InstanceCommand struct {
	Cmd domain.InternalCommand
}

// Instance представляет собой одну изолированную запущенную симуляцию.
// Владеет авторитетным снимком мира; все мутации (тики и команды)
// происходят в горутине Run - блокировки не нужны.
type Instance struct {
	Name string

	// World - авторитетный снимок между тиками.
	World *domain.World

	// Params - текущие параметры. Команды меняют их между тиками.
	Params domain.SimParams

	// Running false = пауза: цикл жив, стейт не трогается.
	Running bool

	// Каналы коммуникации
	CommandChan chan InstanceCommand
	quit        chan struct{}

	// Ссылка на Service для доступа к Hub
	Service *GameService

	Logs []api.LogEntry // Локальные события симуляции

	Rng  *rand.Rand // Локальный генератор
	Seed int64      // Сид, с которого начался запуск

	Replay     *domain.ReplaySession // Лента внешних воздействий
	IsPlayback bool                  // true = воспроизведение реплея, не живой запуск

	lastDecay   time.Time
	stepPending bool // запрошен одиночный тик на паузе
}

func NewInstance(name string, service *GameService, seed int64, params domain.SimParams) *Instance {
	params = params.Clamp()
	rng := rand.New(rand.NewSource(seed))

	return &Instance{
		Name:        name,
		World:       colony.BuildWorld(params, rng, nil),
		Params:      params,
		Running:     true,
		CommandChan: make(chan InstanceCommand, 100),
		quit:        make(chan struct{}),
		Service:     service,
		Logs:        []api.LogEntry{},
		Rng:         rng,
		Seed:        seed,
		lastDecay:   time.Now(),
		Replay: &domain.ReplaySession{
			Instance:  name,
			Seed:      seed,
			Timestamp: time.Now().Unix(),
			Params:    params,
			Actions:   make([]domain.ReplayAction, 0),
		},
	}
}

// Run запускает цикл ЭТОГО инстанса.
// Тик гейтится интервалом BaseFrameInterval / Speed; команды
// обрабатываются между тиками в этой же горутине.
func (i *Instance) Run() {
	logger.Log.WithField("instance", i.Name).Info("Simulation loop started")

	ticker := time.NewTicker(i.frameInterval())
	defer ticker.Stop()

	for {
		select {
		case <-i.quit:
			logger.Log.WithField("instance", i.Name).Info("Simulation loop stopped")
			return

		case wrapper := <-i.CommandChan:
			i.executeCommand(wrapper.Cmd)
			// Команда могла поменять скорость
			ticker.Reset(i.frameInterval())

		case <-ticker.C:
			if !i.Running && !i.stepPending {
				// Пауза: стейт не мутируем, но цикл продолжает
				// крутиться - возобновление без перезапуска
				continue
			}
			i.stepPending = false
			i.advance()
		}
	}
}

// Stop останавливает цикл инстанса.
func (i *Instance) Stop() {
	close(i.quit)
}

// advance выполняет один тик и рассылает снимок.
func (i *Instance) advance() {
	decayDue := time.Since(i.lastDecay) >= DecayInterval
	if decayDue {
		i.lastDecay = time.Now()
	}

	i.World = Step(i.World, i.Params, i.Rng, decayDue)
	i.Service.publishUpdate(i)
}

func (i *Instance) frameInterval() time.Duration {
	speed := i.Params.Speed
	if speed <= 0 {
		speed = 1
	}
	return time.Duration(float64(BaseFrameInterval) / speed)
}

// executeCommand выполняет команду в контексте инстанса
func (i *Instance) executeCommand(cmd domain.InternalCommand) {
	// INIT не записываем: он не меняет симуляцию
	if cmd.Action != domain.ActionInit && !i.IsPlayback {
		i.recordAction(cmd)
	}

	handler, ok := i.Service.actionHandlers[cmd.Action]
	if !ok {
		return
	}

	ctx := handlers.Context{
		World:   i.World,
		Params:  &i.Params,
		Rng:     i.Rng,
		Control: i,
	}

	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		logger.Log.WithField("instance", i.Name).WithError(err).
			Warnf("Command %s rejected", cmd.Action)
		i.AddLog(err.Error(), "ERROR")
	} else if result.Msg != "" {
		i.AddLog(result.Msg, result.MsgType)
	}

	// Мгновенная обратная связь: снимок уходит сразу, даже на паузе
	i.Service.publishUpdate(i)
}

func (i *Instance) recordAction(cmd domain.InternalCommand) {
	i.Replay.Actions = append(i.Replay.Actions, domain.ReplayAction{
		Tick:    i.World.Tick,
		Token:   cmd.Token,
		Action:  cmd.Action,
		Payload: cmd.Payload,
	})
}

// --- handlers.SimControl ---

func (i *Instance) Pause() {
	i.Running = false
}

func (i *Instance) Resume() {
	i.Running = true
}

func (i *Instance) RequestStep() {
	i.stepPending = true
}

// Reset пересоздает мир: муравьи заново в гнезде, еда и феромоны
// пусты, флаг запуска снят (эквивалент initialize с чистым миром).
func (i *Instance) Reset(params domain.SimParams) {
	i.Params = params.Clamp()
	i.World = colony.BuildWorld(i.Params, i.Rng, nil)
	i.Running = false
	logger.Log.WithField("instance", i.Name).Info("Simulation reset")
}
