package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"scrapconnect/internal/store"
	"scrapconnect/internal/utils"
)

// Register регистрирует нового пользователя по мобильному номеру.
func (a *API) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Username == "" || req.Mobile == "" || req.Password == "" {
		writeJSONError(w, http.StatusBadRequest, "Username, mobile number, and password are required")
		return
	}

	if !utils.ValidateMobile(req.Mobile) {
		writeJSONError(w, http.StatusBadRequest, "Invalid mobile number format")
		return
	}

	user, err := a.Users.Register(req.Username, req.Mobile, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrUserExists) {
			writeJSONError(w, http.StatusConflict, "User with this mobile number already exists")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	log.Printf("Регистрация прошла успешно: %s", user.Username)

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Registration successful",
		"user":    user,
	})
}

// Login проверяет пару номер+пароль и обновляет время последнего входа.
// Любое несовпадение дает один и тот же ответ 401, не раскрывая,
// какое из полей было неверным.
func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Mobile == "" || req.Password == "" {
		writeJSONError(w, http.StatusBadRequest, "Mobile number and password are required")
		return
	}

	if !utils.ValidateMobile(req.Mobile) {
		writeJSONError(w, http.StatusBadRequest, "Invalid mobile number format")
		return
	}

	user, err := a.Users.Authenticate(req.Mobile, req.Password)
	if err != nil {
		writeJSONError(w, http.StatusUnauthorized, "Invalid mobile number or password")
		return
	}

	log.Printf("Вход выполнен: %s", user.Username)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Login successful",
		"user":    user,
	})
}

// GetProfile возвращает профиль пользователя по мобильному номеру.
func (a *API) GetProfile(w http.ResponseWriter, r *http.Request) {
	mobile := chi.URLParam(r, "mobile")

	if !utils.ValidateMobile(mobile) {
		writeJSONError(w, http.StatusBadRequest, "Invalid mobile number format")
		return
	}

	user, err := a.Users.FindByMobile(mobile)
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "User not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    user,
	})
}
