package repository

import (
	"gorm.io/gorm"

	"github.com/coursebill/coursebill/app/models"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository instance
func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(invoice *models.Invoice) error {
	return r.db.Create(invoice).Error
}

func (r *invoiceRepository) Exists(domainID uint, membershipID, invoiceID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Invoice{}).
		Where("domain_id = ? AND membership_id = ? AND invoice_id = ?", domainID, membershipID, invoiceID).
		Count(&count).Error
	return count > 0, err
}

func (r *invoiceRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Invoice{}).Count(&count).Error
	return count, err
}
