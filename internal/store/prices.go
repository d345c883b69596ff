package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"scrapconnect/internal/constants"
	"scrapconnect/internal/models"
)

// PriceStore управляет рыночными ценами в памяти процесса.
// На каждый вид вторсырья - не больше одной записи; инвариант
// обеспечивается upsert-сравнением без учета регистра.
type PriceStore struct {
	mu     sync.RWMutex
	prices []models.Price
}

// NewPriceStore создает хранилище с начальной таблицей цен.
func NewPriceStore() *PriceStore {
	now := time.Now()
	seed := []struct {
		scrapType string
		price     float64
	}{
		{"Copper", 650},
		{"Iron", 30},
		{"Aluminum", 140},
		{"Steel", 35},
		{"Brass", 350},
		{"Paper", 8},
		{"Plastic", 12},
	}

	prices := make([]models.Price, 0, len(seed))
	for i, p := range seed {
		prices = append(prices, models.Price{
			ID:          i + 1,
			ScrapType:   p.scrapType,
			Price:       p.price,
			Unit:        constants.PriceUnit,
			LastUpdated: now,
		})
	}
	return &PriceStore{prices: prices}
}

// All возвращает копию всех цен, от самой дорогой к самой дешевой.
func (s *PriceStore) All() []models.Price {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Price, len(s.prices))
	copy(out, s.prices)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Price > out[j].Price
	})
	return out
}

// Count возвращает количество ценовых записей.
func (s *PriceStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.prices)
}

// Upsert обновляет цену существующего вида вторсырья или добавляет новый.
// Совпадение по имени - без учета регистра, поэтому "copper" обновляет
// запись "Copper", а не создает дубликат. Второй результат true, если
// запись была обновлена, false - если добавлена.
func (s *PriceStore) Upsert(scrapType string, price float64) (models.Price, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.prices {
		if strings.EqualFold(s.prices[i].ScrapType, scrapType) {
			s.prices[i].Price = price
			s.prices[i].LastUpdated = time.Now()
			return s.prices[i], true
		}
	}

	entry := models.Price{
		ID:          len(s.prices) + 1,
		ScrapType:   strings.TrimSpace(scrapType),
		Price:       price,
		Unit:        constants.PriceUnit,
		LastUpdated: time.Now(),
	}
	s.prices = append(s.prices, entry)
	return entry, false
}
