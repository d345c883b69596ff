package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"

	"scrapconnect/internal/constants"
	"scrapconnect/internal/models"
	"scrapconnect/internal/store"
	"scrapconnect/internal/utils"
)

// CreateOrder создает заявку на вывоз вторсырья со статусом Open.
func (a *API) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.ScrapType == "" || req.Weight == "" || req.Mobile == "" {
		writeJSONError(w, http.StatusBadRequest, "Missing required fields: scrapType, weight, mobile")
		return
	}

	if !utils.ValidateMobile(req.Mobile) {
		writeJSONError(w, http.StatusBadRequest, "Invalid mobile number. Must be 10 digits starting with 6-9")
		return
	}

	weight, err := utils.ParsePositiveNumber(req.Weight)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Weight must be a positive number")
		return
	}

	order := a.Orders.Create(req.ScrapType, weight, req.Mobile, req.Description, req.Address)

	log.Printf("📦 Новый заказ %s от %s", order.OrderID, order.Mobile)

	// Уведомление операторов идет вне ответа клиенту и вне блокировок хранилища.
	go a.Notifier.OrderCreated(order)

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Pickup request created successfully",
		"order":   order,
	})
}

// ListOrdersByMobile возвращает заказы клиента, новые первыми.
func (a *API) ListOrdersByMobile(w http.ResponseWriter, r *http.Request) {
	mobile := chi.URLParam(r, "id")

	if !utils.ValidateMobile(mobile) {
		writeJSONError(w, http.StatusBadRequest, "Invalid mobile number format")
		return
	}

	orders := a.Orders.ByMobile(mobile)
	if orders == nil {
		orders = []models.Order{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(orders),
		"orders":  orders,
	})
}

// ListAllOrders возвращает все заказы, новые первыми.
func (a *API) ListAllOrders(w http.ResponseWriter, r *http.Request) {
	orders := a.Orders.All()

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(orders),
		"orders":  orders,
	})
}

// UpdateOrderStatus переводит заказ в новый статус.
func (a *API) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	var req updateStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	invalidStatusMsg := "Invalid status. Must be one of: " + strings.Join(constants.ValidOrderStatuses, ", ")
	if !constants.IsValidOrderStatus(req.Status) {
		writeJSONError(w, http.StatusBadRequest, invalidStatusMsg)
		return
	}

	current, err := a.Orders.Get(orderID)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Order not found")
		return
	}

	if !constants.CanTransition(current.Status, req.Status) {
		writeJSONError(w, http.StatusBadRequest, invalidStatusMsg)
		return
	}

	order, err := a.Orders.UpdateStatus(orderID, req.Status)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Order not found")
		return
	}

	log.Printf("📋 Заказ %s переведен в статус: %s", order.OrderID, order.Status)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Order status updated successfully",
		"order":   order,
	})
}

// DeleteOrder удаляет заказ. Счетчик ID при этом не уменьшается.
func (a *API) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	deleted, err := a.Orders.Delete(orderID)
	if err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			writeJSONError(w, http.StatusNotFound, "Order not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	log.Printf("🗑️ Заказ %s удален администратором", deleted.OrderID)

	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"message":      "Order deleted successfully",
		"deletedOrder": deleted,
	})
}

// GetOrderQR возвращает PNG с QR-кодом номера заказа для передачи водителю.
func (a *API) GetOrderQR(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	order, err := a.Orders.Get(orderID)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "Order not found")
		return
	}

	// qrcode.Medium - уровень коррекции ошибок, 256 - размер QR-кода в пикселях.
	png, err := qrcode.Encode(order.OrderID, qrcode.Medium, 256)
	if err != nil {
		log.Printf("GetOrderQR: ошибка кодирования QR-кода для заказа %s: %v", order.OrderID, err)
		writeJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
