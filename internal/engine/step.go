package engine

import (
	"math/rand"

	"github.com/Logta/aco-simulation/internal/domain"
	"github.com/Logta/aco-simulation/internal/systems"
)

// Step - оркестратор одного тика. Чистая функция от снимка, параметров
// и розыгрышей rng: читает prev, возвращает НОВЫЙ снимок, prev не
// трогает.
//
// Изоляция чтения - единственный механизм "конкурентности" тика:
// поведение каждого муравья считается против одного и того же прошлого,
// никто не видит чужих правок этого же тика, поэтому порядок обхода
// муравьев не влияет на результат. Все намерения коммитятся разом.
//
// decay=true применяет шаг испарения поля; решает вызывающий
// (wall-clock каденция у Instance, тиковая - у реплея).
//
// Функция тотальна над валидированным входом: пустая колония, пустая
// еда и пустое поле дают корректный пустой апдейт без паники.
func Step(prev *domain.World, params domain.SimParams, rng *rand.Rand, decay bool) *domain.World {
	// 1. Фаза чтения: намерения всех муравьев против ОДНОГО снимка
	intents := make([]systems.AntAction, len(prev.Ants))
	for idx, ant := range prev.Ants {
		intents[idx] = systems.ComputeAntAction(ant, prev, params, rng)
	}

	// 2. Фаза коммита: применяем все намерения к копии
	next := prev.Clone()
	next.Tick++

	var deposits []domain.Deposit

	for idx, act := range intents {
		// Clone сохраняет порядок, индексы муравьев совпадают
		ant := next.Ants[idx]
		ant.Pos = act.Pos
		ant.Direction = act.Direction
		ant.HasFood = act.HasFood
		ant.TargetFood = act.TargetFood
		ant.FoodAmount = act.FoodAmount

		if act.Delivered {
			next.FoodDelivered++
		}

		// Еда: сперва декременты, удаление при исчерпании.
		// Два муравья могли взять из одного источника в один тик -
		// оба декремента честно применяются
		if act.CollectFood != 0 {
			if f := next.FindFood(act.CollectFood); f != nil {
				f.Amount--
				if f.Amount <= 0 {
					next.RemoveFood(f.ID)
				}
			}
			// nil - источник исчерпан другим муравьем этого же тика;
			// слабая ссылка у муравья это переживает
		}

		if act.Deposit != nil {
			deposits = append(deposits, *act.Deposit)
		}
	}

	// 3. Феромоны: слияние по ячейкам (интенсивности складываются до
	// потолка, тип последнего вклада побеждает)
	next.Field.Merge(deposits)

	// 4. Испарение - только когда вызывающий сообщил, что каденция
	// подошла
	if decay {
		next.Field.DecayStep(params.DecayRate, params.DecayModel)
	}

	return next
}
