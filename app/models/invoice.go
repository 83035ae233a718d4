package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusFailed  = "failed"
)

// Invoice is a billing record tied to a membership. Invoices derived from
// legacy purchases reuse the purchase order id as invoice id so that re-runs
// of the migration stay idempotent.
type Invoice struct {
	ID                       uint           `gorm:"primaryKey" json:"id"`
	DomainID                 uint           `gorm:"not null;index:idx_invoices_lookup,priority:1" json:"domain_id"`
	InvoiceID                string         `gorm:"type:varchar(64);not null;index:idx_invoices_lookup,priority:3" json:"invoice_id" validate:"required,max=64"`
	MembershipID             string         `gorm:"type:varchar(36);not null;index:idx_invoices_lookup,priority:2" json:"membership_id" validate:"required"`
	MembershipSessionID      string         `gorm:"type:varchar(36);not null" json:"membership_session_id"`
	Amount                   float64        `gorm:"default:0" json:"amount" validate:"gte=0"`
	Status                   string         `gorm:"type:varchar(16);not null;default:'pending'" json:"status" validate:"oneof=pending paid failed"`
	CurrencyISOCode          string         `gorm:"type:varchar(3)" json:"currency_iso_code" validate:"max=3"`
	PaymentProcessor         string         `gorm:"type:varchar(32)" json:"payment_processor"`
	PaymentProcessorEntityID string         `gorm:"type:varchar(128)" json:"payment_processor_entity_id"`
	CreatedAt                time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt                gorm.DeletedAt `gorm:"index" json:"-"`
}

func (i *Invoice) Validate() error {
	v := validator.New()

	return v.Struct(i)
}
