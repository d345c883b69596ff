package api

import (
	"fmt"
	"net/http"
	"time"

	"scrapconnect/internal/utils"
)

// ListPrices возвращает все рыночные цены, от самой дорогой к самой дешевой.
func (a *API) ListPrices(w http.ResponseWriter, r *http.Request) {
	prices := a.Prices.All()

	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"count":       len(prices),
		"prices":      prices,
		"lastUpdated": time.Now(),
	})
}

// UpsertPrice обновляет цену существующего вида вторсырья или добавляет новый.
func (a *API) UpsertPrice(w http.ResponseWriter, r *http.Request) {
	var req upsertPriceRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.ScrapType == "" || req.Price == "" {
		writeJSONError(w, http.StatusBadRequest, "Missing required fields: scrapType, price")
		return
	}

	price, err := utils.ParsePositiveNumber(req.Price)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Price must be a positive number")
		return
	}

	entry, updated := a.Prices.Upsert(req.ScrapType, price)

	message := fmt.Sprintf("New price added for %s", req.ScrapType)
	if updated {
		message = fmt.Sprintf("Price updated for %s", req.ScrapType)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"message":      message,
		"updatedPrice": entry,
	})
}
