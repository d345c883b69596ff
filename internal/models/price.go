package models

import "time"

// Price представляет рыночную цену одного вида вторсырья.
// ScrapType служит ключом upsert-операции (без учета регистра).
type Price struct {
	ID          int       `json:"id"`
	ScrapType   string    `json:"scrapType"`
	Price       float64   `json:"price"`
	Unit        string    `json:"unit"`
	LastUpdated time.Time `json:"lastUpdated"`
}
