package domain

import "strings"

// ActionType - внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionPlaceFood
	ActionScatterFood
	ActionReset
	ActionPause
	ActionResume
	ActionSetSpeed
	ActionTune
	ActionStep // один тик вручную, пока симуляция на паузе
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":         ActionInit,
	"PLACE_FOOD":   ActionPlaceFood,
	"SCATTER_FOOD": ActionScatterFood,
	"RESET":        ActionReset,
	"PAUSE":        ActionPause,
	"RESUME":       ActionResume,
	"SET_SPEED":    ActionSetSpeed,
	"TUNE":         ActionTune,
	"STEP":         ActionStep,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:        "INIT",
	ActionPlaceFood:   "PLACE_FOOD",
	ActionScatterFood: "SCATTER_FOOD",
	ActionReset:       "RESET",
	ActionPause:       "PAUSE",
	ActionResume:      "RESUME",
	ActionSetSpeed:    "SET_SPEED",
	ActionTune:        "TUNE",
	ActionStep:        "STEP",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Нечувствительно к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
