package api

import (
	"fmt"
	"log"
	"net/http"
)

// Recoverer перехватывает панику в обработчике и превращает ее в JSON-ответ
// верхнего уровня, чтобы клиент никогда не получал частичный ответ.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				log.Printf("Паника при обработке %s %s: %v", r.Method, r.URL.Path, rvr)
				writeJSONError(w, http.StatusInternalServerError, "Something went wrong!")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// NotFoundHandler отвечает на неизвестные маршруты в едином JSON-формате.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeJSONError(w, http.StatusNotFound, fmt.Sprintf("Route %s %s not found", r.Method, r.URL.Path))
}
