package api

import (
	"net/http"
	"time"

	"scrapconnect/internal/constants"
	"scrapconnect/internal/models"
	"scrapconnect/internal/utils"
)

// ListUsers возвращает всех пользователей для панели администратора.
// Пароли не сериализуются на уровне модели.
func (a *API) ListUsers(w http.ResponseWriter, r *http.Request) {
	users := a.Users.All()

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(users),
		"users":   users,
	})
}

// GetStats возвращает полную статистику для админов.
func (a *API) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"stats":   a.calculateStatistics(),
	})
}

// calculateStatistics вычисляет статистику по текущему содержимому хранилищ.
// Хранилища читаются независимо, без общего снимка: гонка между мутацией
// и подсчетом допустима по контракту.
func (a *API) calculateStatistics() models.Stats {
	orders := a.Orders.All()
	users := a.Users.All()

	stats := models.Stats{
		TotalUsers:   len(users),
		TotalOrders:  len(orders),
		RecentOrders: []models.RecentOrder{},
		RecentUsers:  []models.User{},
		PriceCount:   a.Prices.Count(),
	}

	totalWeight := 0.0
	for _, o := range orders {
		totalWeight += o.Weight
		switch o.Status {
		case constants.STATUS_OPEN:
			stats.OpenOrders++
		case constants.STATUS_IN_PROGRESS:
			stats.InProgressOrders++
		case constants.STATUS_COMPLETED:
			stats.CompletedOrders++
		case constants.STATUS_CANCELLED:
			stats.CancelledOrders++
		}
	}
	stats.TotalWeight = utils.Round2(totalWeight)
	stats.OrdersByStatus = models.OrdersByStatus{
		Open:       stats.OpenOrders,
		InProgress: stats.InProgressOrders,
		Completed:  stats.CompletedOrders,
		Cancelled:  stats.CancelledOrders,
	}

	// Недавняя активность: окно в 7 дней считается от момента вызова.
	sevenDaysAgo := time.Now().AddDate(0, 0, -7)

	usernameByMobile := make(map[string]string, len(users))
	for _, u := range users {
		usernameByMobile[u.Mobile] = u.Username
	}

	// orders уже отсортированы новыми вперед, достаточно отфильтровать
	// и взять первые пять.
	for _, o := range orders {
		if len(stats.RecentOrders) == 5 {
			break
		}
		if o.CreatedAt.Before(sevenDaysAgo) {
			continue
		}
		username, ok := usernameByMobile[o.Mobile]
		if !ok {
			username = "Unknown User"
		}
		stats.RecentOrders = append(stats.RecentOrders, models.RecentOrder{Order: o, Username: username})
	}

	for _, u := range users {
		if len(stats.RecentUsers) == 5 {
			break
		}
		if u.CreatedAt.Before(sevenDaysAgo) {
			continue
		}
		stats.RecentUsers = append(stats.RecentUsers, u)
	}

	return stats
}
