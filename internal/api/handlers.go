// Package api содержит HTTP-обработчики Scrap Connect API.
// Каждый обработчик: декодирование и валидация входа -> одна операция
// хранилища -> формирование JSON-ответа.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"scrapconnect/internal/notify"
	"scrapconnect/internal/store"
)

// API объединяет зависимости обработчиков. Хранилища передаются явно,
// без глобального состояния.
// API bundles handler dependencies. Stores are passed explicitly,
// no global state.
type API struct {
	Users     *store.UserStore
	Orders    *store.OrderStore
	Prices    *store.PriceStore
	Notifier  *notify.Notifier
	StartTime time.Time
	Version   string
}

// --- Структуры запросов ---
// Числовые поля тела принимаются как json.Number, чтобы отличать
// отсутствующее значение от некорректного.

type registerRequest struct {
	Username string `json:"username"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

type loginRequest struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

type createOrderRequest struct {
	ScrapType   string      `json:"scrapType"`
	Weight      json.Number `json:"weight"`
	Mobile      string      `json:"mobile"`
	Description string      `json:"description"`
	Address     string      `json:"address"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type upsertPriceRequest struct {
	ScrapType string      `json:"scrapType"`
	Price     json.Number `json:"price"`
}

// --- Вспомогательные функции для JSON-ответов ---

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// writeJSONError пишет единый формат ошибки {"success":false,"error":...}.
func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]any{
		"success": false,
		"error":   message,
	})
}

// decodeBody декодирует JSON-тело запроса в dst.
func decodeBody(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// Root возвращает визитную карточку API.
func (a *API) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Scrap Connect API",
		"version": a.Version,
		"status":  "running",
	})
}

// Health возвращает состояние сервиса и время работы процесса в секундах.
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "OK",
		"message":   "Scrap Connect API is running!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(a.StartTime).Seconds(),
	})
}
