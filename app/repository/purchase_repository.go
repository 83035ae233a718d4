package repository

import (
	"gorm.io/gorm"

	"github.com/coursebill/coursebill/app/models"
)

type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository instance
func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) Create(purchase *models.Purchase) error {
	return r.db.Create(purchase).Error
}

func (r *purchaseRepository) List() ([]models.Purchase, error) {
	var purchases []models.Purchase
	err := r.db.Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Purchase{}).Count(&count).Error
	return count, err
}
