package repository

import (
	"gorm.io/gorm"

	"github.com/coursebill/coursebill/app/models"
)

type communityRepository struct {
	db *gorm.DB
}

// NewCommunityRepository creates a new community repository instance
func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &communityRepository{db: db}
}

func (r *communityRepository) Create(community *models.Community) error {
	return r.db.Create(community).Error
}

func (r *communityRepository) GetByCommunityID(domainID uint, communityID string) (*models.Community, error) {
	var community models.Community
	err := r.db.Where("domain_id = ? AND community_id = ?", domainID, communityID).First(&community).Error
	if err != nil {
		return nil, err
	}
	return &community, nil
}

func (r *communityRepository) ListEnabled() ([]models.Community, error) {
	var communities []models.Community
	err := r.db.Where("enabled = ?", true).Find(&communities).Error
	return communities, err
}

func (r *communityRepository) Update(community *models.Community) error {
	return r.db.Save(community).Error
}
