package api

import (
	"errors"
	"fmt"
)

// Validator - интерфейс, который могут реализовать DTO.
// Проверка выполняется на границе (в обертке хендлера), ДО входа в движок.
// Ядро симуляции дополнительно зажимает параметры, но не обязано
// перепроверять их на каждом тике.
type Validator interface {
	Validate() error
}

// Допустимые границы параметров симуляции.
const (
	MinAntCount = 1
	MaxAntCount = 100

	MinDecayRate = 0.9
	MaxDecayRate = 0.999

	MinDepositAmount = 0.1
	MaxDepositAmount = 10.0

	MinSpeed = 0.1
	MaxSpeed = 10.0

	MaxScatterCount = 50
)

func (p PlaceFoodPayload) Validate() error {
	// Координаты не ограничиваем: мир тороидальный, движок сам завернет
	// точку в [0,W)x[0,H). Количество - ограничиваем.
	if p.Amount < 0 {
		return errors.New("food amount cannot be negative")
	}
	if p.Amount > 1000 {
		return errors.New("food amount too large")
	}
	return nil
}

func (p ScatterFoodPayload) Validate() error {
	if p.Count <= 0 {
		return errors.New("scatter count must be positive")
	}
	if p.Count > MaxScatterCount {
		return fmt.Errorf("scatter count too large (max %d)", MaxScatterCount)
	}
	return nil
}

func (p SpeedPayload) Validate() error {
	if p.Speed < MinSpeed || p.Speed > MaxSpeed {
		return fmt.Errorf("speed %.2f out of range [%.1f, %.1f]", p.Speed, MinSpeed, MaxSpeed)
	}
	return nil
}

func (p TunePayload) Validate() error {
	if p.DecayRate != nil {
		if *p.DecayRate < MinDecayRate || *p.DecayRate > MaxDecayRate {
			return fmt.Errorf("decayRate %.4f out of range [%.3f, %.3f]", *p.DecayRate, MinDecayRate, MaxDecayRate)
		}
	}
	if p.DepositAmount != nil {
		if *p.DepositAmount < MinDepositAmount || *p.DepositAmount > MaxDepositAmount {
			return fmt.Errorf("depositAmount %.2f out of range [%.1f, %.1f]", *p.DepositAmount, MinDepositAmount, MaxDepositAmount)
		}
	}
	if p.TrackingStrength != nil {
		if *p.TrackingStrength < 0 || *p.TrackingStrength > 1 {
			return fmt.Errorf("trackingStrength %.2f out of range [0, 1]", *p.TrackingStrength)
		}
	}
	return nil
}

func (p ResetPayload) Validate() error {
	if p.AntCount != 0 && (p.AntCount < MinAntCount || p.AntCount > MaxAntCount) {
		return fmt.Errorf("antCount %d out of range [%d, %d]", p.AntCount, MinAntCount, MaxAntCount)
	}
	if p.Width < 0 || p.Height < 0 {
		return errors.New("world size cannot be negative")
	}
	if (p.Width != 0 && p.Width < 50) || (p.Height != 0 && p.Height < 50) {
		return errors.New("world size too small (min 50)")
	}
	return nil
}
