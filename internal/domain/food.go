package domain

// Food - источник еды. Каждый подбор уменьшает Amount ровно на 1;
// при Amount <= 0 источник удаляется из мира целиком.
type Food struct {
	ID     FoodID   `json:"id"`
	Pos    Position `json:"pos"`
	Amount int      `json:"amount"`
}
