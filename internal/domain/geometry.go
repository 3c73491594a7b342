package domain

import "math"

// Position - точка на тороидальной плоскости [0,W) x [0,H).
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Wrap заворачивает координаты в [0,W) x [0,H).
// Модуль корректен и для отрицательных значений: ((v mod M) + M) mod M.
// Точная граница (x == W) дает 0, а не W.
func (p Position) Wrap(w, h float64) Position {
	x := math.Mod(p.X, w)
	if x < 0 {
		x += w
	}
	// math.Mod может вернуть само W из-за сложения выше при x = -0
	if x >= w {
		x -= w
	}
	y := math.Mod(p.Y, h)
	if y < 0 {
		y += h
	}
	if y >= h {
		y -= h
	}
	return Position{X: x, Y: y}
}

// DeltaTo возвращает кратчайшее СО ЗНАКОМ смещение до другой точки по тору.
// По каждой оси выбирается короткий путь: прямой или через склеенный край.
func (p Position) DeltaTo(other Position, w, h float64) (dx, dy float64) {
	dx = other.X - p.X
	if dx > w/2 {
		dx -= w
	} else if dx < -w/2 {
		dx += w
	}
	dy = other.Y - p.Y
	if dy > h/2 {
		dy -= h
	} else if dy < -h/2 {
		dy += h
	}
	return dx, dy
}

// DistanceTo возвращает тороидальное евклидово расстояние.
// Когда обе точки в пределах половины мира друг от друга, совпадает
// с обычным евклидовым расстоянием.
func (p Position) DistanceTo(other Position, w, h float64) float64 {
	dx, dy := p.DeltaTo(other, w, h)
	return math.Sqrt(dx*dx + dy*dy)
}

// BearingTo возвращает направление (радианы) на другую точку по
// кратчайшему тороидальному пути.
func (p Position) BearingTo(other Position, w, h float64) float64 {
	dx, dy := p.DeltaTo(other, w, h)
	return math.Atan2(dy, dx)
}

// Shift возвращает новую позицию со смещением (не меняя текущую,
// т.к. Go передает структуры по значению).
func (p Position) Shift(dx, dy float64) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Step возвращает позицию после шага dist в направлении dir (без Wrap).
func (p Position) Step(dir, dist float64) Position {
	return Position{
		X: p.X + math.Cos(dir)*dist,
		Y: p.Y + math.Sin(dir)*dist,
	}
}

// NormalizeAngle приводит угол к диапазону (-pi, pi].
// Используется везде, где смешиваются угловые разницы.
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
