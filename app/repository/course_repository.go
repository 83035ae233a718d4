package repository

import (
	"gorm.io/gorm"

	"github.com/coursebill/coursebill/app/models"
)

type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new course repository instance
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(course *models.Course) error {
	return r.db.Create(course).Error
}

func (r *courseRepository) GetByCourseID(domainID uint, courseID string) (*models.Course, error) {
	var course models.Course
	err := r.db.Where("domain_id = ? AND course_id = ?", domainID, courseID).First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// ListMigratable returns courses that need a resolved payment plan: anything
// published or already sold to customers.
func (r *courseRepository) ListMigratable() ([]models.Course, error) {
	var courses []models.Course
	err := r.db.
		Where("published = ? OR (customers IS NOT NULL AND JSON_LENGTH(customers) > 0)", true).
		Find(&courses).Error
	return courses, err
}

func (r *courseRepository) ListWithCustomers() ([]models.Course, error) {
	var courses []models.Course
	err := r.db.
		Where("customers IS NOT NULL AND JSON_LENGTH(customers) > 0").
		Find(&courses).Error
	return courses, err
}

func (r *courseRepository) Update(course *models.Course) error {
	return r.db.Save(course).Error
}

func (r *courseRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Course{}).Count(&count).Error
	return count, err
}
