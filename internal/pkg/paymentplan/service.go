package paymentplan

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/coursebill/coursebill/app/models"
	"github.com/coursebill/coursebill/app/repository"
)

// ErrNoMatchingPlan is returned by the read-only resolve path when none of an
// entity's listed plans has the required type.
var ErrNoMatchingPlan = errors.New("no payment plan of the required type")

// Service resolves the payment plan an entity sells access through, creating
// one on the entity's behalf when the create-capable path is used.
type Service struct {
	plans       repository.PaymentPlanRepository
	courses     repository.CourseRepository
	communities repository.CommunityRepository
}

// NewService creates a plan-resolution service from injected repositories.
func NewService(plans repository.PaymentPlanRepository, courses repository.CourseRepository, communities repository.CommunityRepository) *Service {
	return &Service{plans: plans, courses: courses, communities: communities}
}

// ResolveForCourse returns the course's existing plan of the required type.
// It never creates a plan; absence is ErrNoMatchingPlan.
func (s *Service) ResolveForCourse(ctx context.Context, course *models.Course) (*models.PaymentPlan, error) {
	_ = ctx
	return s.resolve(course.DomainID, course.CreatorID, course.PaymentPlans, TypeForCost(course.CostType))
}

// ResolveForCommunity is the community counterpart of ResolveForCourse.
func (s *Service) ResolveForCommunity(ctx context.Context, community *models.Community) (*models.PaymentPlan, error) {
	_ = ctx
	return s.resolve(community.DomainID, community.CreatorID, community.PaymentPlans, communityPlanType(community))
}

// ResolveOrCreateForCourse resolves the course's plan or creates one, appends
// it to the course's plan list, sets it as default and persists the course.
// The second return reports whether a plan was created.
func (s *Service) ResolveOrCreateForCourse(ctx context.Context, course *models.Course) (*models.PaymentPlan, bool, error) {
	_ = ctx
	planType := TypeForCost(course.CostType)

	plan, err := s.resolve(course.DomainID, course.CreatorID, course.PaymentPlans, planType)
	if err == nil {
		return plan, false, nil
	}
	if !errors.Is(err, ErrNoMatchingPlan) {
		return nil, false, err
	}

	plan, err = s.createPlan(course.DomainID, course.CreatorID, planType, course.Cost)
	if err != nil {
		return nil, false, err
	}

	course.PaymentPlans = append(course.PaymentPlans, plan.PlanID)
	course.DefaultPaymentPlan = plan.PlanID
	if err := s.courses.Update(course); err != nil {
		return nil, false, err
	}
	return plan, true, nil
}

// ResolveOrCreateForCommunity is the community counterpart of
// ResolveOrCreateForCourse.
func (s *Service) ResolveOrCreateForCommunity(ctx context.Context, community *models.Community) (*models.PaymentPlan, bool, error) {
	_ = ctx
	planType := communityPlanType(community)

	plan, err := s.resolve(community.DomainID, community.CreatorID, community.PaymentPlans, planType)
	if err == nil {
		return plan, false, nil
	}
	if !errors.Is(err, ErrNoMatchingPlan) {
		return nil, false, err
	}

	plan, err = s.createPlan(community.DomainID, community.CreatorID, planType, community.Cost)
	if err != nil {
		return nil, false, err
	}

	community.PaymentPlans = append(community.PaymentPlans, plan.PlanID)
	community.DefaultPaymentPlan = plan.PlanID
	if err := s.communities.Update(community); err != nil {
		return nil, false, err
	}
	return plan, true, nil
}

func (s *Service) resolve(domainID uint, creatorID string, planIDs []string, planType string) (*models.PaymentPlan, error) {
	plan, err := s.plans.FindFirstOfType(domainID, creatorID, planIDs, planType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoMatchingPlan
		}
		return nil, err
	}
	return plan, nil
}

func (s *Service) createPlan(domainID uint, creatorID, planType string, cost float64) (*models.PaymentPlan, error) {
	plan := &models.PaymentPlan{
		DomainID: domainID,
		UserID:   creatorID,
		Name:     NameForType(planType),
		Type:     planType,
	}
	if planType == models.PaymentPlanOneTime {
		plan.OneTimeAmount = cost
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	if err := s.plans.Create(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func communityPlanType(community *models.Community) string {
	if community.IsPaid() {
		return models.PaymentPlanOneTime
	}
	return models.PaymentPlanFree
}
