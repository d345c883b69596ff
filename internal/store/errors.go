// Package store содержит in-memory хранилища пользователей, заказов и цен.
// Всё состояние живет только в памяти процесса: перезапуск возвращает
// пользователей и цены к начальным значениям, а заказы обнуляет.
package store

import "errors"

// Ошибки уровня хранилищ. Обработчики сопоставляют их через errors.Is.
// Store-level errors. Handlers match them with errors.Is.
var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrOrderNotFound      = errors.New("order not found")
)
