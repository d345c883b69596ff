package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"scrapconnect/internal/api"
	"scrapconnect/internal/config"
	"scrapconnect/internal/notify"
	"scrapconnect/internal/store"
)

const version = "1.0.0"

func main() {
	// --- Блок инициализации ---
	if err := godotenv.Load(); err != nil {
		log.Println("Предупреждение: не удалось загрузить файл .env. Переменные окружения должны быть установлены иным способом.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Критическая ошибка: не удалось загрузить конфигурацию: %v", err)
	}

	notifier, err := notify.New(cfg.TelegramToken, cfg.OperatorsChatID, cfg.AppEnv == "dev")
	if err != nil {
		log.Printf("Предупреждение: Telegram-уведомления недоступны: %v", err)
		notifier = nil
	}

	// Все состояние живет в памяти процесса: перезапуск возвращает
	// пользователей и цены к начальным значениям, а заказы обнуляет.
	a := &api.API{
		Users:     store.NewUserStore(),
		Orders:    store.NewOrderStore(),
		Prices:    store.NewPriceStore(),
		Notifier:  notifier,
		StartTime: time.Now(),
		Version:   version,
	}

	router := api.NewRouter(cfg, a)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("🚀 Scrap Connect API запущен на порту %s", cfg.Port)
		log.Printf("📍 Проверка состояния: http://localhost:%s/api/health", cfg.Port)
		log.Println("📋 Доступные эндпоинты:")
		log.Println("   GET    /api/health")
		log.Println("   POST   /api/auth/register")
		log.Println("   POST   /api/auth/login")
		log.Println("   GET    /api/auth/profile/{mobile}")
		log.Println("   POST   /api/orders")
		log.Println("   GET    /api/orders/{mobile}")
		log.Println("   GET    /api/orders")
		log.Println("   DELETE /api/orders/{orderId}")
		log.Println("   PUT    /api/orders/{orderId}/status")
		log.Println("   GET    /api/orders/{orderId}/qr")
		log.Println("   GET    /api/prices")
		log.Println("   POST   /api/prices")
		log.Println("   GET    /api/admin/users")
		log.Println("   GET    /api/admin/stats")
		log.Println("   GET    /api/admin/orders/export")
		log.Println("💡 Демо-аккаунты:")
		log.Println("   Пользователь: 9876543210 / password123")
		log.Println("   Администратор: 9999999999 / admin123")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Критическая ошибка: не удалось запустить HTTP-сервер: %v", err)
		}
	}()

	// Ожидание сигнала завершения и корректная остановка.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("👋 Получен сигнал завершения, останавливаем сервер...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Ошибка при остановке сервера: %v", err)
	}

	log.Println("Сервер остановлен.")
}
