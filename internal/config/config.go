// internal/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	Port            string
	AppEnv          string
	AllowedOrigins  []string
	TelegramToken   string
	OperatorsChatID int64
}

// LoadConfig загружает конфигурацию из переменных окружения.
// Отсутствующие значения заменяются значениями по умолчанию с предупреждением
// в логе; некорректный OPERATORS_CHAT_ID отключает Telegram-уведомления.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:          os.Getenv("PORT"),
		AppEnv:        os.Getenv("ENV"),
		TelegramToken: os.Getenv("TELEGRAM_APITOKEN"),
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
	}

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		// Дефолтные origin'ы локальных фронтендов, как в исходном сервисе.
		cfg.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173", "http://127.0.0.1:5173"}
	} else {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	if raw := os.Getenv("OPERATORS_CHAT_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Printf("Предупреждение: не удалось прочитать OPERATORS_CHAT_ID: %v. Уведомления операторам отключены.", err)
			cfg.OperatorsChatID = 0
		} else {
			cfg.OperatorsChatID = id
		}
	}

	return cfg, nil
}
