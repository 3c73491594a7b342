package engine

import (
	"github.com/Logta/aco-simulation/pkg/logger"
)

// PlaybackTailTicks - сколько тиков догнать после последнего
// записанного действия, чтобы увидеть его последствия.
const PlaybackTailTicks = 300

// StartPlayback синхронно прогоняет playback-инстанс: тики гонятся
// без таймера, записанные действия применяются на своих тиках.
func (s *GameService) StartPlayback(name string) {
	inst, ok := s.Instances[name]
	if !ok || !inst.IsPlayback {
		logger.Log.Warnf("Instance %s is not ready for playback", name)
		return
	}

	logger.Log.WithField("instance", name).Info("Playback started")

	for _, act := range inst.Replay.Actions {
		// Догоняем тик действия
		for inst.World.Tick < act.Tick {
			inst.playbackTick()
		}
		inst.executeCommand(act.ToCommand())
	}

	// Хвост: даем колонии дожить последствия
	for n := 0; n < PlaybackTailTicks; n++ {
		inst.playbackTick()
	}

	logger.Log.WithField("instance", name).Infof(
		"Playback finished: tick %d, delivered %d, foods %d, pheromone cells %d",
		inst.World.Tick, inst.World.FoodDelivered, len(inst.World.Foods), len(inst.World.Field))
}

// playbackTick - один тик без wall-clock: испарение привязано к
// номеру тика вместо таймера, иначе реплей недетерминирован.
func (i *Instance) playbackTick() {
	decay := i.World.Tick > 0 && i.World.Tick%PlaybackDecayEveryTicks == 0
	i.World = Step(i.World, i.Params, i.Rng, decay)
}
