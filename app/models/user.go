package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// LegacyPurchase is one entry of the embedded purchase history that predates
// the membership model. It survives only as input for the migration pipeline.
type LegacyPurchase struct {
	CourseID    string     `json:"course_id"`
	OrderID     string     `json:"order_id,omitempty"`
	PurchasedOn *time.Time `json:"purchased_on,omitempty"`
}

type User struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	DomainID  uint             `gorm:"not null;index:ux_users_domain_user,unique,priority:1" json:"domain_id"`
	UserID    string           `gorm:"type:varchar(64);not null;index:ux_users_domain_user,unique,priority:2" json:"user_id" validate:"required,max=64"`
	Email     string           `gorm:"type:varchar(200);not null;index" json:"email" validate:"required,email,max=200"`
	Name      string           `gorm:"type:varchar(150)" json:"name" validate:"max=150"`
	Purchases []LegacyPurchase `gorm:"serializer:json;type:json" json:"purchases,omitempty"`
	CreatedAt time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt   `gorm:"index" json:"-"`
}

func (u *User) Validate() error {
	v := validator.New()

	return v.Struct(u)
}

// HasPurchases reports whether the user carries legacy purchase history that
// still needs to be migrated.
func (u *User) HasPurchases() bool {
	return len(u.Purchases) > 0
}
