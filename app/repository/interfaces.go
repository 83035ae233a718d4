package repository

import (
	"github.com/coursebill/coursebill/app/models"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByUserID(domainID uint, userID string) (*models.User, error)
	ListWithPurchases() ([]models.User, error)
	Update(user *models.User) error
	Count() (int64, error)
}

// CourseRepository defines the interface for course-related database operations
type CourseRepository interface {
	Create(course *models.Course) error
	GetByCourseID(domainID uint, courseID string) (*models.Course, error)
	ListMigratable() ([]models.Course, error)
	ListWithCustomers() ([]models.Course, error)
	Update(course *models.Course) error
	Count() (int64, error)
}

// CommunityRepository defines the interface for community-related database operations
type CommunityRepository interface {
	Create(community *models.Community) error
	GetByCommunityID(domainID uint, communityID string) (*models.Community, error)
	ListEnabled() ([]models.Community, error)
	Update(community *models.Community) error
}

// PaymentPlanRepository defines the interface for payment-plan operations
type PaymentPlanRepository interface {
	Create(plan *models.PaymentPlan) error
	GetByPlanID(domainID uint, planID string) (*models.PaymentPlan, error)
	// FindFirstOfType returns the first non-archived plan of the given type
	// owned by the creator within the given plan-id list.
	FindFirstOfType(domainID uint, creatorID string, planIDs []string, planType string) (*models.PaymentPlan, error)
	Archive(domainID uint, planID string) error
	Count() (int64, error)
}

// MembershipRepository defines the interface for membership operations
type MembershipRepository interface {
	Create(membership *models.Membership) error
	// FindExact returns the membership matching the full identity tuple, or
	// gorm.ErrRecordNotFound.
	FindExact(domainID uint, userID, paymentPlanID, entityID, entityType, status string) (*models.Membership, error)
	// FindForEntity returns any membership of the user for the entity,
	// regardless of plan and status.
	FindForEntity(domainID uint, userID, entityID, entityType string) (*models.Membership, error)
	HasActive(domainID uint, userID, entityID, entityType string) (bool, error)
	Count() (int64, error)
}

// PurchaseRepository defines the interface for legacy purchase operations
type PurchaseRepository interface {
	Create(purchase *models.Purchase) error
	List() ([]models.Purchase, error)
	Count() (int64, error)
}

// InvoiceRepository defines the interface for invoice operations
type InvoiceRepository interface {
	Create(invoice *models.Invoice) error
	Exists(domainID uint, membershipID, invoiceID string) (bool, error)
	Count() (int64, error)
}

// Repositories bundles all repository implementations
type Repositories struct {
	User        UserRepository
	Course      CourseRepository
	Community   CommunityRepository
	PaymentPlan PaymentPlanRepository
	Membership  MembershipRepository
	Purchase    PurchaseRepository
	Invoice     InvoiceRepository
}
