package migrations

import (
	"github.com/Rakhulsr/go-fitstore/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{}, &models.StorageEntry{}, &models.Order{}, &models.OrderItem{})
}
