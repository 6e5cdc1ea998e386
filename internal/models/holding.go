package models

// Holding is one portfolio line-item owned by a user. StockSymbol is stored
// uppercase and trimmed so it compares equal to upstream quote symbols.
type Holding struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	UserID      uint    `gorm:"not null;index" json:"-"`
	StockSymbol string  `gorm:"size:10;not null" json:"symbol"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	BuyPrice    float64 `gorm:"not null" json:"buy_price"`
}

func (Holding) TableName() string {
	return "portfolios"
}
