package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"scrapconnect/internal/models"
)

// UserStore управляет пользователями в памяти процесса.
// Мьютекс защищает каждое чтение и мутацию; уникальность мобильного номера
// гарантируется проверкой под write-lock в Register.
type UserStore struct {
	mu    sync.RWMutex
	users []models.User
}

// NewUserStore создает хранилище с демо-пользователями.
func NewUserStore() *UserStore {
	seeded := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	return &UserStore{
		users: []models.User{
			{ID: 1, Username: "John Doe", Mobile: "9876543210", Password: "password123", CreatedAt: seeded, LastLogin: time.Now()},
			{ID: 2, Username: "Admin User", Mobile: "9999999999", Password: "admin123", CreatedAt: seeded, LastLogin: time.Now()},
		},
	}
}

// Register добавляет нового пользователя. Возвращает ErrUserExists,
// если мобильный номер уже занят. ID никогда не переиспользуются.
func (s *UserStore) Register(username, mobile, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Mobile == mobile {
			return models.User{}, ErrUserExists
		}
	}

	now := time.Now()
	user := models.User{
		ID:        len(s.users) + 1,
		Username:  strings.TrimSpace(username),
		Mobile:    strings.TrimSpace(mobile),
		Password:  password,
		CreatedAt: now,
		LastLogin: now,
	}
	s.users = append(s.users, user)
	return user, nil
}

// Authenticate ищет пользователя по точному совпадению номера и пароля
// и обновляет lastLogin. Пароли сравниваются в открытом виде - это
// осознанно сохраненный контракт исходного API, а не упущение; хэширование
// сломало бы совместимость поведения.
// Authenticate looks up a user by exact mobile+password match and updates
// lastLogin. Plaintext comparison is the preserved contract of the source
// API, not an oversight; hashing would break behavioral compatibility.
func (s *UserStore) Authenticate(mobile, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Mobile == mobile && s.users[i].Password == password {
			s.users[i].LastLogin = time.Now()
			return s.users[i], nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

// FindByMobile возвращает пользователя по мобильному номеру.
func (s *UserStore) FindByMobile(mobile string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Mobile == mobile {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// All возвращает копию списка пользователей, новые первыми.
func (s *UserStore) All() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
