package models

import "time"

// User представляет пользователя маркетплейса.
// Пароль хранится в открытом виде (контракт совместимости с исходным API)
// и никогда не сериализуется в ответах.
// User represents a marketplace user. The password is stored in plaintext
// (compatibility contract with the source API) and is never serialized.
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Mobile    string    `json:"mobile"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	LastLogin time.Time `json:"lastLogin"`
}
