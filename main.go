package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Rakhulsr/go-fitstore/app/cmd"
	"github.com/Rakhulsr/go-fitstore/app/configs"
	"github.com/Rakhulsr/go-fitstore/app/handlers"
	"github.com/Rakhulsr/go-fitstore/app/repositories"
	"github.com/Rakhulsr/go-fitstore/app/routes"
	"github.com/Rakhulsr/go-fitstore/app/services"
	"github.com/Rakhulsr/go-fitstore/app/utils/renderer"
	"github.com/Rakhulsr/go-fitstore/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/securecookie"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	env := configs.LoadEnv()
	log := configs.NewLogger(env)

	if len(os.Args) > 1 {
		cmd.RunCli(env, log)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := configs.OpenConnection(env, log)
	if err != nil {
		log.WithError(err).Fatal("DB connection failed")
	}

	keys := loadKeys(env, log)

	storage, err := openStorage(ctx, env, db, keys, log)
	if err != nil {
		log.WithError(err).Fatal("cart storage unavailable")
	}
	log.WithField("backend", env.CartStorage).Info("Cart storage initialized")

	validate := validator.New()
	rnd := renderer.New(!env.IsProduction())

	products := repositories.NewProductRepository(db)
	orders := repositories.NewOrderRepository(db)
	carts := services.NewCartManager(validate, log)

	var notifier services.OrderNotifier
	if env.EmailHost != "" {
		notifier = services.NewMailer(services.Config{
			Host:     env.EmailHost,
			Port:     env.EmailPort,
			Username: env.EmailUsername,
			Password: env.EmailPassword,
			From:     env.EmailFrom,
		})
	}
	gateway := services.NewMidtransGateway(configs.NewMidtransClient(env))
	checkout := services.NewCheckoutService(orders, gateway, notifier, log)

	cartHandler := handlers.NewCartHandler(rnd, products, carts, storage, validate, log)
	router := routes.NewRouter(routes.Options{
		Render:       rnd,
		Visitors:     sessions.NewCookieVisitorStore(env.IsProduction(), keys.AuthKey, keys.EncKey),
		Products:     handlers.NewProductHandler(rnd, products, log),
		Cart:         cartHandler,
		Checkout:     handlers.NewCheckoutHandler(cartHandler, checkout),
		Orders:       handlers.NewOrderHandler(rnd, orders, log),
		Log:          log,
		CSRFKey:      keys.CSRFKey,
		SecureCookie: env.IsProduction(),
	})

	server := &http.Server{
		Addr:              env.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.WithField("addr", server.Addr).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// loadKeys reads the cookie keys from env. Outside production missing keys
// are replaced by random ones, so visitors lose their carts on restart.
func loadKeys(env configs.ENV, log *logrus.Logger) *configs.SessionKeys {
	keys, err := configs.LoadSessionKeys(env)
	if err == nil {
		return keys
	}
	if env.IsProduction() {
		log.WithError(err).Fatal("session keys missing, run `generate-keys`")
	}
	log.WithError(err).Warn("using ephemeral session keys")
	return &configs.SessionKeys{
		AuthKey: securecookie.GenerateRandomKey(64),
		EncKey:  securecookie.GenerateRandomKey(32),
	}
}

func openStorage(ctx context.Context, env configs.ENV, db *gorm.DB, keys *configs.SessionKeys, log *logrus.Logger) (repositories.StorageProvider, error) {
	switch env.CartStorage {
	case configs.StorageMySQL:
		return repositories.NewGormStorage(db), nil
	case configs.StorageRedis:
		client, err := configs.OpenRedis(ctx, env, log)
		if err != nil {
			return nil, err
		}
		return repositories.NewRedisStorage(client, configs.CartRetention), nil
	case configs.StorageMemory:
		return repositories.NewMemoryStorage(), nil
	default:
		maxAge := int(configs.CartRetention / time.Second)
		return repositories.NewSessionStorage(env.SessionDir, maxAge, keys.AuthKey, keys.EncKey), nil
	}
}
