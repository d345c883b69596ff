package models

import "time"

// Order представляет заявку на вывоз вторсырья.
type Order struct {
	OrderID     string    `json:"orderId"`
	ScrapType   string    `json:"scrapType"`
	Weight      float64   `json:"weight"`
	Mobile      string    `json:"mobile"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
