package models

// Stats представляет сводную статистику для панели администратора.
// Пересчитывается при каждом запросе, без кэширования.
// Stats represents aggregate statistics for the admin dashboard.
// Recomputed on every request, no caching.
type Stats struct {
	TotalUsers       int            `json:"totalUsers"`
	TotalOrders      int            `json:"totalOrders"`
	OpenOrders       int            `json:"openOrders"`
	InProgressOrders int            `json:"inProgressOrders"`
	CompletedOrders  int            `json:"completedOrders"`
	CancelledOrders  int            `json:"cancelledOrders"`
	TotalWeight      float64        `json:"totalWeight"`
	RecentOrders     []RecentOrder  `json:"recentOrders"`
	RecentUsers      []User         `json:"recentUsers"`
	PriceCount       int            `json:"priceCount"`
	OrdersByStatus   OrdersByStatus `json:"ordersByStatus"`
}

// RecentOrder - заказ из недавней активности, дополненный именем клиента.
// Если мобильный номер заказа не принадлежит ни одному пользователю,
// Username содержит "Unknown User".
type RecentOrder struct {
	Order
	Username string `json:"username"`
}

// OrdersByStatus - разбивка количества заказов по статусам.
type OrdersByStatus struct {
	Open       int `json:"open"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
}
