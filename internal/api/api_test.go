package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrapconnect/internal/config"
	"scrapconnect/internal/store"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		Port:           "5000",
		AllowedOrigins: []string{"http://localhost:3000"},
	}
	a := &API{
		Users:     store.NewUserStore(),
		Orders:    store.NewOrderStore(),
		Prices:    store.NewPriceStore(),
		StartTime: time.Now(),
		Version:   "1.0.0",
	}
	return NewRouter(cfg, a)
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "Scrap Connect API is running!", body["message"])
	assert.Contains(t, body, "timestamp")
	assert.Contains(t, body, "uptime")
}

func TestRoot(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, "Scrap Connect API", body["message"])
	assert.Equal(t, "running", body["status"])
}

func TestRegisterStripsPassword(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodPost, "/api/auth/register",
		`{"username":"Ravi","mobile":"9123456780","password":"topsecret"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, true, body["success"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "Ravi", user["username"])
	_, hasPassword := user["password"]
	assert.False(t, hasPassword, "пароль не должен попадать в ответ")
	assert.NotContains(t, rec.Body.String(), "topsecret")
}

func TestRegisterValidation(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantErr  string
	}{
		{"missing username", `{"mobile":"9123456780","password":"pw"}`, http.StatusBadRequest, "Username, mobile number, and password are required"},
		{"missing password", `{"username":"X","mobile":"9123456780"}`, http.StatusBadRequest, "Username, mobile number, and password are required"},
		{"leading digit below 6", `{"username":"X","mobile":"1234567890","password":"pw"}`, http.StatusBadRequest, "Invalid mobile number format"},
		{"nine digits", `{"username":"X","mobile":"987654321","password":"pw"}`, http.StatusBadRequest, "Invalid mobile number format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, h, http.MethodPost, "/api/auth/register", tt.body)
			require.Equal(t, tt.wantCode, rec.Code)
			body := decodeJSON(t, rec)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantErr, body["error"])
		})
	}
}

func TestRegisterDuplicateMobile(t *testing.T) {
	h := newTestRouter(t)

	first := doRequest(t, h, http.MethodPost, "/api/auth/register",
		`{"username":"One","mobile":"9123456780","password":"a"}`)
	require.Equal(t, http.StatusCreated, first.Code)

	second := doRequest(t, h, http.MethodPost, "/api/auth/register",
		`{"username":"Two","mobile":"9123456780","password":"b"}`)
	require.Equal(t, http.StatusConflict, second.Code)

	body := decodeJSON(t, second)
	assert.Equal(t, "User with this mobile number already exists", body["error"])
}

func TestLogin(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodPost, "/api/auth/login",
		`{"mobile":"9876543210","password":"password123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, "Login successful", body["message"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "John Doe", user["username"])
	_, hasPassword := user["password"]
	assert.False(t, hasPassword)
}

func TestLoginMismatch(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"wrong password", `{"mobile":"9876543210","password":"nope"}`},
		{"unknown mobile", `{"mobile":"9000000000","password":"password123"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, h, http.MethodPost, "/api/auth/login", tt.body)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			body := decodeJSON(t, rec)
			// Ответ не раскрывает, какое из полей было неверным.
			assert.Equal(t, "Invalid mobile number or password", body["error"])
		})
	}
}

func TestGetProfile(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodGet, "/api/auth/profile/9876543210", "")
	require.Equal(t, http.StatusOK, rec.Code)
	user := decodeJSON(t, rec)["user"].(map[string]any)
	assert.Equal(t, "John Doe", user["username"])

	rec = doRequest(t, h, http.MethodGet, "/api/auth/profile/1234567890", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/api/auth/profile/9000000001", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decodeJSON(t, rec)["error"])
}

func TestCreateOrderValidation(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"missing fields", `{"scrapType":"Copper"}`, "Missing required fields: scrapType, weight, mobile"},
		{"bad mobile", `{"scrapType":"Copper","weight":25,"mobile":"1234567890"}`, "Invalid mobile number. Must be 10 digits starting with 6-9"},
		{"zero weight", `{"scrapType":"Copper","weight":0,"mobile":"9876543210"}`, "Weight must be a positive number"},
		{"negative weight", `{"scrapType":"Copper","weight":-5,"mobile":"9876543210"}`, "Weight must be a positive number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, h, http.MethodPost, "/api/orders", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantErr, decodeJSON(t, rec)["error"])
		})
	}

	// Нечисловой вес не проходит декодирование тела.
	rec := doRequest(t, h, http.MethodPost, "/api/orders",
		`{"scrapType":"Copper","weight":"abc","mobile":"9876543210"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrderSuccess(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodPost, "/api/orders",
		`{"scrapType":"Copper","weight":25,"mobile":"9876543210"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, "Pickup request created successfully", body["message"])
	order := body["order"].(map[string]any)
	assert.Regexp(t, regexp.MustCompile(`^SC\d{6}$`), order["orderId"])
	assert.Equal(t, "Open", order["status"])
	assert.Equal(t, 25.0, order["weight"])
}

func TestOrderIDsSequential(t *testing.T) {
	h := newTestRouter(t)

	first := doRequest(t, h, http.MethodPost, "/api/orders",
		`{"scrapType":"Copper","weight":25,"mobile":"9876543210"}`)
	second := doRequest(t, h, http.MethodPost, "/api/orders",
		`{"scrapType":"Iron","weight":10,"mobile":"9876543210"}`)

	assert.Equal(t, "SC000001", decodeJSON(t, first)["order"].(map[string]any)["orderId"])
	assert.Equal(t, "SC000002", decodeJSON(t, second)["order"].(map[string]any)["orderId"])
}

func TestListOrdersByMobile(t *testing.T) {
	h := newTestRouter(t)

	doRequest(t, h, http.MethodPost, "/api/orders", `{"scrapType":"Copper","weight":25,"mobile":"9876543210"}`)
	doRequest(t, h, http.MethodPost, "/api/orders", `{"scrapType":"Iron","weight":10,"mobile":"9999999999"}`)
	doRequest(t, h, http.MethodPost, "/api/orders", `{"scrapType":"Paper","weight":3,"mobile":"9876543210"}`)

	rec := doRequest(t, h, http.MethodGet, "/api/orders/9876543210", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, 2.0, body["count"])
	for _, o := range body["orders"].([]any) {
		assert.Equal(t, "9876543210", o.(map[string]any)["mobile"])
	}

	rec = doRequest(t, h, http.MethodGet, "/api/orders/1234567890", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListOrdersByMobileEmpty(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodGet, "/api/orders/9123456780", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, 0.0, body["count"])
	assert.NotNil(t, body["orders"], "пустой список сериализуется как [], а не null")
}

func TestDeleteOrder(t *testing.T) {
	h := newTestRouter(t)

	doRequest(t, h, http.MethodPost, "/api/orders", `{"scrapType":"Copper","weight":25,"mobile":"9876543210"}`)

	rec := doRequest(t, h, http.MethodDelete, "/api/orders/SC000001", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON(t, rec)
	assert.Equal(t, "Order deleted successfully", body["message"])
	assert.Equal(t, "SC000001", body["deletedOrder"].(map[string]any)["orderId"])
}

func TestDeleteOrderNotFoundLeavesCollection(t *testing.T) {
	h := newTestRouter(t)

	doRequest(t, h, http.MethodPost, "/api/orders", `{"scrapType":"Copper","weight":25,"mobile":"9876543210"}`)

	rec := doRequest(t, h, http.MethodDelete, "/api/orders/SC999999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Order not found", decodeJSON(t, rec)["error"])

	all := doRequest(t, h, http.MethodGet, "/api/orders", "")
	assert.Equal(t, 1.0, decodeJSON(t, all)["count"])
}

func TestUpdateOrderStatusInvalid(t *testing.T) {
	h := newTestRouter(t)

	doRequest(t, h, http.MethodPost, "/api/orders", `{"scrapType":"Copper","weight":25,"mobile":"9876543210"}`)

	rec := doRequest(t, h, http.MethodPut, "/api/orders/SC000001/status", `{"status":"Shipped"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid status. Must be one of: Open, In Progress, Completed, Cancelled", decodeJSON(t, rec)["error"])

	// Заказ остался без изменений.
	all := doRequest(t, h, http.MethodGet, "/api/orders", "")
	orders := decodeJSON(t, all)["orders"].([]any)
	assert.Equal(t, "Open", orders[0].(map[string]any)["status"])
}

func TestUpdateOrderStatusNotFound(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodPut, "/api/orders/SC999999/status", `{"status":"Completed"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Order not found", decodeJSON(t, rec)["error"])
}

func TestPricesList(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodGet, "/api/prices", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, 7.0, body["count"])
	assert.Contains(t, body, "lastUpdated")

	prices := body["prices"].([]any)
	first := prices[0].(map[string]any)
	assert.Equal(t, "Copper", first["scrapType"])
	assert.Equal(t, 650.0, first["price"])
}

func TestUpsertPriceCaseInsensitive(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodPost, "/api/prices", `{"scrapType":"copper","price":700}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, "Price updated for copper", body["message"])
	assert.Equal(t, 700.0, body["updatedPrice"].(map[string]any)["price"])

	// Количество записей не изменилось.
	list := doRequest(t, h, http.MethodGet, "/api/prices", "")
	assert.Equal(t, 7.0, decodeJSON(t, list)["count"])
}

func TestUpsertPriceValidation(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodPost, "/api/prices", `{"scrapType":"Zinc"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required fields: scrapType, price", decodeJSON(t, rec)["error"])

	rec = doRequest(t, h, http.MethodPost, "/api/prices", `{"scrapType":"Zinc","price":-3}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Price must be a positive number", decodeJSON(t, rec)["error"])
}

func TestUpsertPriceAddsNewType(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodPost, "/api/prices", `{"scrapType":"Zinc","price":220}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "New price added for Zinc", decodeJSON(t, rec)["message"])

	list := doRequest(t, h, http.MethodGet, "/api/prices", "")
	assert.Equal(t, 8.0, decodeJSON(t, list)["count"])
}

func TestAdminUsers(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodGet, "/api/admin/users", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, 2.0, body["count"])
	for _, u := range body["users"].([]any) {
		_, hasPassword := u.(map[string]any)["password"]
		assert.False(t, hasPassword)
	}
}

func TestEndToEndOrderLifecycle(t *testing.T) {
	h := newTestRouter(t)

	created := doRequest(t, h, http.MethodPost, "/api/orders",
		`{"scrapType":"Copper","weight":25,"mobile":"9876543210"}`)
	require.Equal(t, http.StatusCreated, created.Code)
	createdOrder := decodeJSON(t, created)["order"].(map[string]any)
	assert.Equal(t, "Open", createdOrder["status"])

	time.Sleep(5 * time.Millisecond)

	updated := doRequest(t, h, http.MethodPut, "/api/orders/SC000001/status", `{"status":"Completed"}`)
	require.Equal(t, http.StatusOK, updated.Code)
	updatedOrder := decodeJSON(t, updated)["order"].(map[string]any)
	assert.Equal(t, "Completed", updatedOrder["status"])

	createdAt, err := time.Parse(time.RFC3339Nano, updatedOrder["createdAt"].(string))
	require.NoError(t, err)
	updatedAt, err := time.Parse(time.RFC3339Nano, updatedOrder["updatedAt"].(string))
	require.NoError(t, err)
	assert.True(t, updatedAt.After(createdAt))

	stats := doRequest(t, h, http.MethodGet, "/api/admin/stats", "")
	require.Equal(t, http.StatusOK, stats.Code)
	statsBody := decodeJSON(t, stats)["stats"].(map[string]any)
	assert.Equal(t, 1.0, statsBody["completedOrders"])
	assert.Equal(t, 1.0, statsBody["totalOrders"])
	assert.Equal(t, 25.0, statsBody["totalWeight"])
	assert.Equal(t, 1.0, statsBody["ordersByStatus"].(map[string]any)["completed"])

	// Недавняя активность содержит заказ с именем клиента.
	recent := statsBody["recentOrders"].([]any)
	require.Len(t, recent, 1)
	assert.Equal(t, "John Doe", recent[0].(map[string]any)["username"])
}

func TestStatsUnknownUser(t *testing.T) {
	h := newTestRouter(t)

	// Мобильный номер заказа не обязан принадлежать пользователю.
	doRequest(t, h, http.MethodPost, "/api/orders", `{"scrapType":"Iron","weight":5,"mobile":"9123456780"}`)

	stats := doRequest(t, h, http.MethodGet, "/api/admin/stats", "")
	statsBody := decodeJSON(t, stats)["stats"].(map[string]any)
	recent := statsBody["recentOrders"].([]any)
	require.Len(t, recent, 1)
	assert.Equal(t, "Unknown User", recent[0].(map[string]any)["username"])
}

func TestUnknownRoute(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodGet, "/api/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Route GET /api/nope not found", body["error"])
}

func TestOrderQR(t *testing.T) {
	h := newTestRouter(t)

	doRequest(t, h, http.MethodPost, "/api/orders", `{"scrapType":"Copper","weight":25,"mobile":"9876543210"}`)

	rec := doRequest(t, h, http.MethodGet, "/api/orders/SC000001/qr", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Body.Bytes())

	rec = doRequest(t, h, http.MethodGet, "/api/orders/SC999999/qr", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportOrders(t *testing.T) {
	h := newTestRouter(t)

	doRequest(t, h, http.MethodPost, "/api/orders", `{"scrapType":"Copper","weight":25,"mobile":"9876543210"}`)

	rec := doRequest(t, h, http.MethodGet, "/api/admin/orders/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "orders-")
	assert.NotEmpty(t, rec.Body.Bytes())
}
