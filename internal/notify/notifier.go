// Package notify отправляет Telegram-уведомления операторам о новых заказах.
// Уведомления опциональны: без токена или ID чата пакет работает как no-op.
package notify

import (
	"fmt"
	"log"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"

	"scrapconnect/internal/models"
)

// Notifier - обертка над Telegram Bot API для отправки уведомлений.
// Nil-значение безопасно: все методы превращаются в no-op.
// Notifier wraps the Telegram Bot API for sending notifications.
// A nil value is safe: every method becomes a no-op.
type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// New инициализирует Telegram-бота для уведомлений.
// Возвращает nil (и это не ошибка), если токен или chatID не заданы.
func New(token string, chatID int64, debug bool) (*Notifier, error) {
	if token == "" || chatID == 0 {
		return nil, nil
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации Telegram Bot API: %w", err)
	}
	api.Debug = debug

	log.Printf("Telegram-уведомления включены, авторизован как %s", api.Self.UserName)
	return &Notifier{api: api, chatID: chatID}, nil
}

// OrderCreated отправляет операторам сообщение о новой заявке на вывоз.
// Ошибки отправки логируются и не влияют на обработку запроса.
func (n *Notifier) OrderCreated(order models.Order) {
	if n == nil || n.api == nil {
		return
	}

	text := fmt.Sprintf(
		"📦 Новая заявка %s\nТип: %s\nВес: %.2f кг\nТелефон: %s",
		order.OrderID, order.ScrapType, order.Weight, order.Mobile,
	)
	if order.Address != "" {
		text += "\nАдрес: " + order.Address
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.api.Send(msg); err != nil {
		log.Printf("OrderCreated: не удалось отправить уведомление по заказу %s: %v", order.OrderID, err)
	}
}
