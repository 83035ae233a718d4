package repository

import (
	"gorm.io/gorm"

	"github.com/coursebill/coursebill/app/models"
)

type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository instance
func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) Create(membership *models.Membership) error {
	return r.db.Create(membership).Error
}

func (r *membershipRepository) FindExact(domainID uint, userID, paymentPlanID, entityID, entityType, status string) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.
		Where("domain_id = ? AND user_id = ? AND payment_plan_id = ? AND entity_id = ? AND entity_type = ? AND status = ?",
			domainID, userID, paymentPlanID, entityID, entityType, status).
		First(&membership).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

func (r *membershipRepository) FindForEntity(domainID uint, userID, entityID, entityType string) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.
		Where("domain_id = ? AND user_id = ? AND entity_id = ? AND entity_type = ?",
			domainID, userID, entityID, entityType).
		First(&membership).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

func (r *membershipRepository) HasActive(domainID uint, userID, entityID, entityType string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Membership{}).
		Where("domain_id = ? AND user_id = ? AND entity_id = ? AND entity_type = ? AND status = ?",
			domainID, userID, entityID, entityType, models.MembershipStatusActive).
		Count(&count).Error
	return count > 0, err
}

func (r *membershipRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Membership{}).Count(&count).Error
	return count, err
}
