package repository

import (
	"gorm.io/gorm"

	"github.com/coursebill/coursebill/app/models"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByUserID(domainID uint, userID string) (*models.User, error) {
	var user models.User
	err := r.db.Where("domain_id = ? AND user_id = ?", domainID, userID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListWithPurchases returns all users that still carry legacy embedded
// purchase history.
func (r *userRepository) ListWithPurchases() ([]models.User, error) {
	var users []models.User
	err := r.db.
		Where("purchases IS NOT NULL AND JSON_LENGTH(purchases) > 0").
		Find(&users).Error
	return users, err
}

func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}
