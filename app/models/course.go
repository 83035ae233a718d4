package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	CostTypeFree  = "free"
	CostTypeEmail = "email"
	CostTypePaid  = "paid"
)

type Course struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	DomainID           uint           `gorm:"not null;index" json:"domain_id"`
	CourseID           string         `gorm:"type:varchar(64);not null;uniqueIndex" json:"course_id" validate:"required,max=64"`
	CreatorID          string         `gorm:"type:varchar(64);not null;index" json:"creator_id" validate:"required,max=64"`
	Title              string         `gorm:"type:varchar(255);not null" json:"title" validate:"required,min=1,max=255"`
	CostType           string         `gorm:"type:varchar(16);not null;default:'free'" json:"cost_type" validate:"oneof=free email paid"`
	Cost               float64        `gorm:"default:0" json:"cost" validate:"gte=0"`
	Published          bool           `gorm:"default:false;index" json:"published"`
	PaymentPlans       []string       `gorm:"serializer:json;type:json" json:"payment_plans,omitempty"`
	DefaultPaymentPlan string         `gorm:"type:varchar(36);default:null" json:"default_payment_plan"`
	Customers          []string       `gorm:"serializer:json;type:json" json:"customers,omitempty"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *Course) Validate() error {
	v := validator.New()

	return v.Struct(c)
}

// IsPaid reports whether buying access to the course costs money. Email-gated
// and free courses both map to a free plan.
func (c *Course) IsPaid() bool {
	return c.CostType == CostTypePaid
}

// HasCustomers reports whether the legacy customer list is non-empty.
func (c *Course) HasCustomers() bool {
	return len(c.Customers) > 0
}
