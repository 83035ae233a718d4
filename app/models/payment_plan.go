package models

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentPlanFree    = "free"
	PaymentPlanOneTime = "onetime"
)

const (
	PaymentPlanNameFree = "Free"
	PaymentPlanNamePaid = "Paid"
)

var (
	// ErrInternalPlanNotFree is returned when an internal plan carries any
	// type other than free.
	ErrInternalPlanNotFree = errors.New("internal payment plan must be of type free")
	// ErrInternalPlanExists is returned when a domain already has an internal
	// payment plan.
	ErrInternalPlanExists = errors.New("domain already has an internal payment plan")
)

// PaymentPlan is a priced or free access plan offered for a course or a
// community. Plans are never deleted, only archived.
type PaymentPlan struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	DomainID      uint           `gorm:"not null;index" json:"domain_id"`
	PlanID        string         `gorm:"type:varchar(36);not null;uniqueIndex" json:"plan_id"`
	UserID        string         `gorm:"type:varchar(64);not null;index" json:"user_id" validate:"required,max=64"`
	Name          string         `gorm:"type:varchar(100);not null" json:"name" validate:"required,min=1,max=100"`
	Type          string         `gorm:"type:varchar(16);not null" json:"type" validate:"oneof=free onetime"`
	OneTimeAmount float64        `gorm:"default:0" json:"one_time_amount" validate:"gte=0"`
	Internal      bool           `gorm:"default:false;index" json:"internal"`
	Archived      bool           `gorm:"default:false" json:"archived"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *PaymentPlan) Validate() error {
	v := validator.New()

	return v.Struct(p)
}

// CheckInternalInvariant validates the internal-plan rules given the number
// of other internal plans already present in the domain.
func (p *PaymentPlan) CheckInternalInvariant(otherInternalCount int64) error {
	if !p.Internal {
		return nil
	}
	if p.Type != PaymentPlanFree {
		return ErrInternalPlanNotFree
	}
	if otherInternalCount > 0 {
		return ErrInternalPlanExists
	}
	return nil
}

// BeforeCreate assigns a plan id when none was provided.
func (p *PaymentPlan) BeforeCreate(tx *gorm.DB) error {
	if p.PlanID == "" {
		p.PlanID = uuid.New().String()
	}
	return nil
}

// BeforeSave enforces that a domain holds at most one internal plan and that
// an internal plan is always free.
func (p *PaymentPlan) BeforeSave(tx *gorm.DB) error {
	if !p.Internal {
		return nil
	}
	var count int64
	if err := tx.Model(&PaymentPlan{}).
		Where("domain_id = ? AND internal = ? AND id != ?", p.DomainID, true, p.ID).
		Count(&count).Error; err != nil {
		return err
	}
	return p.CheckInternalInvariant(count)
}
