package repository

import (
	"gorm.io/gorm"

	"github.com/coursebill/coursebill/app/models"
)

type paymentPlanRepository struct {
	db *gorm.DB
}

// NewPaymentPlanRepository creates a new payment-plan repository instance
func NewPaymentPlanRepository(db *gorm.DB) PaymentPlanRepository {
	return &paymentPlanRepository{db: db}
}

func (r *paymentPlanRepository) Create(plan *models.PaymentPlan) error {
	return r.db.Create(plan).Error
}

func (r *paymentPlanRepository) GetByPlanID(domainID uint, planID string) (*models.PaymentPlan, error) {
	var plan models.PaymentPlan
	err := r.db.Where("domain_id = ? AND plan_id = ?", domainID, planID).First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *paymentPlanRepository) FindFirstOfType(domainID uint, creatorID string, planIDs []string, planType string) (*models.PaymentPlan, error) {
	if len(planIDs) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var plan models.PaymentPlan
	err := r.db.
		Where("domain_id = ? AND user_id = ? AND type = ? AND archived = ? AND plan_id IN ?",
			domainID, creatorID, planType, false, planIDs).
		Order("id").
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// Archive marks a plan as archived. Plans are never deleted.
func (r *paymentPlanRepository) Archive(domainID uint, planID string) error {
	return r.db.Model(&models.PaymentPlan{}).
		Where("domain_id = ? AND plan_id = ?", domainID, planID).
		Update("archived", true).Error
}

func (r *paymentPlanRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.PaymentPlan{}).Count(&count).Error
	return count, err
}
