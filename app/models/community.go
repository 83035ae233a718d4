package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type Community struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	DomainID           uint           `gorm:"not null;index" json:"domain_id"`
	CommunityID        string         `gorm:"type:varchar(64);not null;uniqueIndex" json:"community_id" validate:"required,max=64"`
	CreatorID          string         `gorm:"type:varchar(64);not null;index" json:"creator_id" validate:"required,max=64"`
	Name               string         `gorm:"type:varchar(255);not null" json:"name" validate:"required,min=1,max=255"`
	Enabled            bool           `gorm:"default:false;index" json:"enabled"`
	Cost               float64        `gorm:"default:0" json:"cost" validate:"gte=0"`
	PaymentPlans       []string       `gorm:"serializer:json;type:json" json:"payment_plans,omitempty"`
	DefaultPaymentPlan string         `gorm:"type:varchar(36);default:null" json:"default_payment_plan"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *Community) Validate() error {
	v := validator.New()

	return v.Struct(c)
}

// IsPaid reports whether joining the community costs money.
func (c *Community) IsPaid() bool {
	return c.Cost > 0
}
