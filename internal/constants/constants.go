package constants

// Order Statuses
// Статусы заказов
const (
	STATUS_OPEN        = "Open"
	STATUS_IN_PROGRESS = "In Progress"
	STATUS_COMPLETED   = "Completed"
	STATUS_CANCELLED   = "Cancelled"
)

// ValidOrderStatuses - полный список допустимых статусов заказа,
// в порядке отображения в сообщениях об ошибке.
var ValidOrderStatuses = []string{
	STATUS_OPEN,
	STATUS_IN_PROGRESS,
	STATUS_COMPLETED,
	STATUS_CANCELLED,
}

// IsValidOrderStatus проверяет, входит ли статус в список допустимых.
func IsValidOrderStatus(status string) bool {
	for _, s := range ValidOrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// CanTransition проверяет допустимость перехода заказа из одного статуса в другой.
// Сейчас любой переход разрешен (включая переход в тот же статус); правила
// ужесточаются здесь, в одном месте.
// CanTransition reports whether an order may move from one status to another.
// Currently every transition is allowed (including to the same status); rules
// are tightened here, in a single place.
func CanTransition(from, to string) bool {
	return IsValidOrderStatus(from) && IsValidOrderStatus(to)
}

// PriceUnit - единица измерения для всех рыночных цен.
const PriceUnit = "kg"
