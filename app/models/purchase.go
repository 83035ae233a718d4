package models

import (
	"time"

	"gorm.io/gorm"
)

// Purchase is a legacy pre-membership transaction record. The migration
// pipeline reads it to derive invoices; nothing writes it anymore.
type Purchase struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	DomainID        uint           `gorm:"not null;index" json:"domain_id"`
	OrderID         string         `gorm:"type:varchar(64);not null;uniqueIndex" json:"order_id"`
	CourseID        string         `gorm:"type:varchar(64);not null;index" json:"course_id"`
	PurchasedBy     string         `gorm:"type:varchar(64);not null;index" json:"purchased_by"`
	Amount          float64        `gorm:"default:0" json:"amount"`
	PaymentMethod   string         `gorm:"type:varchar(32)" json:"payment_method"`
	PaymentID       string         `gorm:"type:varchar(128)" json:"payment_id"`
	CurrencyISOCode string         `gorm:"type:varchar(3)" json:"currency_iso_code"`
	PurchasedOn     *time.Time     `gorm:"type:timestamp;default:null" json:"purchased_on"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
