package domain

// DecayModel - модель испарения феромонов.
type DecayModel uint8

const (
	// DecayExponential - простое экспоненциальное испарение: i *= rate.
	DecayExponential DecayModel = iota

	// DecayLogarithmic - испарение, растущее с концентрацией: сильные
	// следы теряют пропорционально больше, что сводит интенсивность
	// трасс к устойчивой полосе вместо вечного потолка.
	DecayLogarithmic
)

func (m DecayModel) String() string {
	switch m {
	case DecayExponential:
		return "exponential"
	case DecayLogarithmic:
		return "logarithmic"
	}
	return "unknown"
}

// ParseDecayModel конвертирует строку конфига в модель.
// Неизвестное значение дает экспоненциальную модель (безопасный дефолт).
func ParseDecayModel(s string) DecayModel {
	if s == "logarithmic" {
		return DecayLogarithmic
	}
	return DecayExponential
}

// SimParams - настраиваемые параметры симуляции.
// Ядро читает их как read-only вход каждого тика; меняются они только
// снаружи (командами TUNE/SET_SPEED/RESET) между тиками.
type SimParams struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	AntCount int `json:"antCount"`

	// DecayRate - множитель выживания при испарении (ближе к 1 = дольше).
	DecayRate float64 `json:"decayRate"`

	// DepositAmount - базовая интенсивность одного вклада феромона.
	DepositAmount float64 `json:"depositAmount"`

	// TrackingStrength - вероятность, что муравей без цели пойдет по
	// градиенту феромонов, а не продолжит случайное блуждание.
	TrackingStrength float64 `json:"trackingStrength"`

	// Speed - множитель скорости анимации (тиков в секунду).
	Speed float64 `json:"speed"`

	DecayModel DecayModel `json:"decayModel"`
}

// DefaultParams возвращает параметры по умолчанию.
func DefaultParams() SimParams {
	return SimParams{
		Width:            800,
		Height:           600,
		AntCount:         50,
		DecayRate:        0.98,
		DepositAmount:    2.0,
		TrackingStrength: 0.8,
		Speed:            1.0,
		DecayModel:       DecayExponential,
	}
}

// Clamp защитно зажимает параметры в допустимые границы.
// Основная валидация происходит на границе API (pkg/api), но ядро
// не должно сломаться, даже если туда просочился мусор.
// Границы продублированы из pkg/api намеренно: domain не зависит от api.
func (p SimParams) Clamp() SimParams {
	if p.Width <= 0 {
		p.Width = 800
	}
	if p.Height <= 0 {
		p.Height = 600
	}
	if p.AntCount < 0 {
		p.AntCount = 0
	}
	if p.AntCount > 100 {
		p.AntCount = 100
	}
	p.DecayRate = clampF(p.DecayRate, 0.9, 0.999)
	p.DepositAmount = clampF(p.DepositAmount, 0.1, 10)
	p.TrackingStrength = clampF(p.TrackingStrength, 0, 1)
	p.Speed = clampF(p.Speed, 0.1, 10)
	return p
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
