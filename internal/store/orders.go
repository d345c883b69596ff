package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"scrapconnect/internal/constants"
	"scrapconnect/internal/models"
)

// OrderStore управляет заявками на вывоз в памяти процесса.
// Счетчик ID общий для всех заказов, монотонно растет, никогда не
// сбрасывается и не переиспользуется даже после удаления заказа.
type OrderStore struct {
	mu      sync.RWMutex
	orders  []models.Order
	counter int
}

// NewOrderStore создает пустое хранилище. Счетчик начинается с 1,
// поэтому первый заказ нового процесса получает ID "SC000001".
func NewOrderStore() *OrderStore {
	return &OrderStore{counter: 1}
}

// Create создает новый заказ со статусом Open. Инкремент счетчика и
// добавление в список выполняются атомарно, под одним write-lock.
func (s *OrderStore) Create(scrapType string, weight float64, mobile, description, address string) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	order := models.Order{
		OrderID:     fmt.Sprintf("SC%06d", s.counter),
		ScrapType:   strings.TrimSpace(scrapType),
		Weight:      weight,
		Mobile:      strings.TrimSpace(mobile),
		Description: strings.TrimSpace(description),
		Address:     strings.TrimSpace(address),
		Status:      constants.STATUS_OPEN,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.counter++
	s.orders = append(s.orders, order)
	return order
}

// Get возвращает заказ по ID.
func (s *OrderStore) Get(orderID string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.OrderID == orderID {
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

// ByMobile возвращает заказы с указанным мобильным номером, новые первыми.
func (s *OrderStore) ByMobile(mobile string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Order
	for _, o := range s.orders {
		if o.Mobile == mobile {
			out = append(out, o)
		}
	}
	sortNewestFirst(out)
	return out
}

// All возвращает копию всех заказов, новые первыми.
func (s *OrderStore) All() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	sortNewestFirst(out)
	return out
}

// UpdateStatus устанавливает заказу новый статус и обновляет updatedAt.
// Допустимость статуса проверяет обработчик; хранилище доверяет входу.
func (s *OrderStore) UpdateStatus(orderID, status string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].OrderID == orderID {
			s.orders[i].Status = status
			s.orders[i].UpdatedAt = time.Now()
			return s.orders[i], nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

// Delete удаляет заказ и возвращает удаленную запись.
// При отсутствии заказа коллекция остается без изменений.
func (s *OrderStore) Delete(orderID string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].OrderID == orderID {
			deleted := s.orders[i]
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return deleted, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

// sortNewestFirst сортирует заказы по createdAt по убыванию.
// Сортировка обязана быть стабильной: метки времени могут совпадать
// на субмиллисекундном разрешении, и тогда сохраняется порядок вставки.
func sortNewestFirst(orders []models.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
