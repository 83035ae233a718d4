package models

import (
	"time"

	"gorm.io/gorm"
)

// Domain is a tenant: one customer's school/site on the platform.
type Domain struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"type:varchar(100);uniqueIndex" json:"name" validate:"required,min=2,max=100"`
	CustomDomain string         `gorm:"type:varchar(255);default:null" json:"custom_domain"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
