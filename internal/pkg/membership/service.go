package membership

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/coursebill/coursebill/app/models"
	"github.com/coursebill/coursebill/app/repository"
	"github.com/coursebill/coursebill/internal/pkg/cache"
)

// ErrNilPlan is returned when a membership is requested without a resolved
// payment plan. Callers must resolve the plan first.
var ErrNilPlan = errors.New("membership requires a resolved payment plan")

const accessCacheTTL = 5 * time.Minute

// Service materializes and checks access grants.
type Service struct {
	memberships repository.MembershipRepository

	// cacheAccess toggles the Redis-backed access cache. Disabled in tests.
	cacheAccess bool
}

// NewService creates a membership service with the access cache enabled.
func NewService(memberships repository.MembershipRepository) *Service {
	return &Service{memberships: memberships, cacheAccess: true}
}

// NewServiceWithoutCache creates a membership service that always hits the
// database for access checks.
func NewServiceWithoutCache(memberships repository.MembershipRepository) *Service {
	return &Service{memberships: memberships}
}

// Synthesize idempotently ensures an active membership exists for the
// (user, entity, plan) triple. The second return reports whether a new
// membership was created.
func (s *Service) Synthesize(ctx context.Context, domainID uint, userID string, plan *models.PaymentPlan, entityID, entityType string) (*models.Membership, bool, error) {
	_ = ctx
	if plan == nil {
		return nil, false, ErrNilPlan
	}

	existing, err := s.memberships.FindExact(domainID, userID, plan.PlanID, entityID, entityType, models.MembershipStatusActive)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	membership := &models.Membership{
		DomainID:      domainID,
		UserID:        userID,
		PaymentPlanID: plan.PlanID,
		EntityID:      entityID,
		EntityType:    entityType,
		Status:        models.MembershipStatusActive,
	}
	if err := s.memberships.Create(membership); err != nil {
		return nil, false, err
	}

	if s.cacheAccess {
		if err := cache.Delete(accessCacheKey(domainID, userID, entityID, entityType)); err != nil {
			log.Printf("Warning: could not invalidate access cache: %v", err)
		}
	}
	return membership, true, nil
}

// HasActiveAccess reports whether the user holds an active membership for the
// entity, consulting the cache first.
func (s *Service) HasActiveAccess(ctx context.Context, domainID uint, userID, entityID, entityType string) (bool, error) {
	_ = ctx
	key := accessCacheKey(domainID, userID, entityID, entityType)

	if s.cacheAccess {
		if val, err := cache.Get(key); err == nil {
			return val == "1", nil
		}
	}

	ok, err := s.memberships.HasActive(domainID, userID, entityID, entityType)
	if err != nil {
		return false, err
	}

	if s.cacheAccess {
		val := "0"
		if ok {
			val = "1"
		}
		if err := cache.Set(key, val, accessCacheTTL); err != nil {
			log.Printf("Warning: could not cache access grant: %v", err)
		}
	}
	return ok, nil
}

func accessCacheKey(domainID uint, userID, entityID, entityType string) string {
	return fmt.Sprintf("coursebill:access:%d:%s:%s:%s", domainID, userID, entityType, entityID)
}
