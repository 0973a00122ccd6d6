package configs

import (
	"net"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func (e ENV) DSN() string {
	cfg := mysqldriver.NewConfig()
	cfg.User = e.DBUser
	cfg.Passwd = e.DBPassword
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(e.DBHost, e.DBPort)
	cfg.DBName = e.DBName
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg.FormatDSN()
}

func OpenConnection(env ENV, log logrus.FieldLogger) (*gorm.DB, error) {
	maxRetries := 10
	retryDelay := 5 * time.Second

	cfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)}

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		log.WithField("attempt", i+1).Infof("Attempting to connect to database %s@%s:%s", env.DBName, env.DBHost, env.DBPort)
		db, err := gorm.Open(mysql.Open(env.DSN()), cfg)
		if err == nil {
			sqlDB, pingErr := db.DB()
			if pingErr == nil {
				pingErr = sqlDB.Ping()
				if pingErr == nil {
					sqlDB.SetMaxOpenConns(50)
					sqlDB.SetMaxIdleConns(25)
					sqlDB.SetConnMaxLifetime(5 * time.Minute)
					log.Info("Database connection successful")
					return db, nil
				}
			}
			lastErr = pingErr
			log.WithError(pingErr).Warnf("Failed to ping database, retrying in %v", retryDelay)
		} else {
			lastErr = err
			log.WithError(err).Warnf("Failed to open GORM connection, retrying in %v", retryDelay)
		}

		time.Sleep(retryDelay)
	}

	return nil, errors.Wrapf(lastErr, "failed to connect to the database after %d retries", maxRetries)
}
