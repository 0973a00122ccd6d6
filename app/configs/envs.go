package configs

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	StorageSession = "session"
	StorageMySQL   = "mysql"
	StorageRedis   = "redis"
	StorageMemory  = "memory"
)

// CartRetention is how long an untouched cart survives in the session and
// redis backends.
const CartRetention = 30 * 24 * time.Hour

type ENV struct {
	AppEnv            string
	Port              string
	LogLevel          string
	DBHost            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBPort            string
	CartStorage       string
	SessionDir        string
	RedisAddr         string
	RedisDB           int
	AppAuthKey        string
	AppEncKey         string
	CSRFKey           string
	MidtransServerKey string
	MidtransClientKey string
	EmailHost         string
	EmailPort         string
	EmailUsername     string
	EmailPassword     string
	EmailFrom         string
}

func (e ENV) IsProduction() bool {
	return e.AppEnv == "production"
}

func LoadEnv() ENV {
	if err := godotenv.Load(".env"); err != nil {
		logrus.Warn("No .env file found, using process environment")
	}

	return ENV{
		AppEnv:            getEnv("APP_ENV", "development"),
		Port:              getEnv("APP_PORT", ":8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            getEnv("DB_NAME", "fitstore"),
		DBPort:            getEnv("DB_PORT", "3306"),
		CartStorage:       getEnv("CART_STORAGE", StorageSession),
		SessionDir:        getEnv("SESSION_DIR", os.TempDir()),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		AppAuthKey:        os.Getenv("APP_AUTH_KEY"),
		AppEncKey:         os.Getenv("APP_ENC_KEY"),
		CSRFKey:           os.Getenv("CSRF_KEY"),
		MidtransServerKey: os.Getenv("MIDTRANS_SERVER_KEY"),
		MidtransClientKey: os.Getenv("MIDTRANS_CLIENT_KEY"),
		EmailHost:         os.Getenv("EMAIL_HOST"),
		EmailPort:         getEnv("EMAIL_PORT", "587"),
		EmailUsername:     os.Getenv("EMAIL_USERNAME"),
		EmailPassword:     os.Getenv("EMAIL_PASSWORD"),
		EmailFrom:         os.Getenv("EMAIL_USERNAME"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logrus.Warnf("%s=%q is not a number, using %d", key, v, fallback)
		return fallback
	}
	return n
}
