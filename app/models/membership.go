package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MembershipStatusActive  = "active"
	MembershipStatusPending = "pending"
)

const (
	EntityTypeCourse    = "course"
	EntityTypeCommunity = "community"
)

// Membership grants a user access to a course or community through a payment
// plan. Uniqueness over (domain, user, plan, entity, entity type, status) is
// checked at the application level before insertion; no unique index backs
// it, so callers must not run concurrently.
type Membership struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	DomainID      uint           `gorm:"not null;index:idx_memberships_lookup,priority:1" json:"domain_id"`
	MembershipID  string         `gorm:"type:varchar(36);not null;uniqueIndex" json:"membership_id"`
	UserID        string         `gorm:"type:varchar(64);not null;index:idx_memberships_lookup,priority:2" json:"user_id"`
	PaymentPlanID string         `gorm:"type:varchar(36);not null;index" json:"payment_plan_id"`
	EntityID      string         `gorm:"type:varchar(64);not null;index:idx_memberships_lookup,priority:3" json:"entity_id"`
	EntityType    string         `gorm:"type:varchar(16);not null;index:idx_memberships_lookup,priority:4" json:"entity_type"`
	Status        string         `gorm:"type:varchar(16);not null;default:'pending'" json:"status"`
	SessionID     string         `gorm:"type:varchar(36);not null" json:"session_id"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate assigns generated ids where none were provided.
func (m *Membership) BeforeCreate(tx *gorm.DB) error {
	if m.MembershipID == "" {
		m.MembershipID = uuid.New().String()
	}
	if m.SessionID == "" {
		m.SessionID = uuid.New().String()
	}
	return nil
}
