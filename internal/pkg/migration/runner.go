package migration

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/coursebill/coursebill/app/models"
	"github.com/coursebill/coursebill/app/repository"
	"github.com/coursebill/coursebill/internal/pkg/membership"
	"github.com/coursebill/coursebill/internal/pkg/paymentplan"
)

// Runner drives the one-shot migration from legacy purchase data to the
// plan/membership/invoice model. All phases are sequential and idempotent,
// so an aborted run can simply be restarted.
type Runner struct {
	repos       *repository.Repositories
	plans       *paymentplan.Service
	memberships *membership.Service
}

// NewRunner creates a pipeline runner over the given repositories.
func NewRunner(repos *repository.Repositories) *Runner {
	return &Runner{
		repos:       repos,
		plans:       paymentplan.NewService(repos.PaymentPlan, repos.Course, repos.Community),
		memberships: membership.NewService(repos.Membership),
	}
}

// NewRunnerWithServices creates a runner with explicitly wired services.
func NewRunnerWithServices(repos *repository.Repositories, plans *paymentplan.Service, memberships *membership.Service) *Runner {
	return &Runner{repos: repos, plans: plans, memberships: memberships}
}

// Run executes all phases in dependency order: plans must exist before
// memberships can reference them, memberships before invoices.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	report := &Report{}

	log.Println("phase 1/4: backfilling payment plans")
	if err := r.BackfillPlans(ctx, report); err != nil {
		return report, fmt.Errorf("backfill plans: %w", err)
	}

	log.Println("phase 2/4: migrating purchases to memberships")
	if err := r.PurchasesToMemberships(ctx, report); err != nil {
		return report, fmt.Errorf("purchases to memberships: %w", err)
	}

	log.Println("phase 3/4: migrating customers to memberships")
	if err := r.CustomersToMemberships(ctx, report); err != nil {
		return report, fmt.Errorf("customers to memberships: %w", err)
	}

	log.Println("phase 4/4: migrating purchases to invoices")
	if err := r.PurchasesToInvoices(ctx, report); err != nil {
		return report, fmt.Errorf("purchases to invoices: %w", err)
	}

	return report, nil
}

// BackfillPlans ensures every published-or-sold course and every enabled
// community has a resolved default payment plan.
func (r *Runner) BackfillPlans(ctx context.Context, report *Report) error {
	courses, err := r.repos.Course.ListMigratable()
	if err != nil {
		return err
	}
	for i := range courses {
		if err := ctx.Err(); err != nil {
			return err
		}
		course := &courses[i]
		_, created, err := r.plans.ResolveOrCreateForCourse(ctx, course)
		if err != nil {
			return fmt.Errorf("course %s: %w", course.CourseID, err)
		}
		if created {
			report.CoursePlansCreated++
			log.Printf("created %s plan for course %s", course.CostType, course.CourseID)
		}
	}

	communities, err := r.repos.Community.ListEnabled()
	if err != nil {
		return err
	}
	for i := range communities {
		if err := ctx.Err(); err != nil {
			return err
		}
		community := &communities[i]
		_, created, err := r.plans.ResolveOrCreateForCommunity(ctx, community)
		if err != nil {
			return fmt.Errorf("community %s: %w", community.CommunityID, err)
		}
		if created {
			report.CommunityPlansCreated++
			log.Printf("created plan for community %s", community.CommunityID)
		}
	}
	return nil
}

// PurchasesToMemberships walks every user's embedded legacy purchase history
// and materializes an active membership per purchase. Plans are resolved on
// the read-only path: a course without a matching plan means the backfill
// phase did not run, and the whole run fails rather than guessing.
func (r *Runner) PurchasesToMemberships(ctx context.Context, report *Report) error {
	users, err := r.repos.User.ListWithPurchases()
	if err != nil {
		return err
	}

	for i := range users {
		user := &users[i]
		for _, purchase := range user.Purchases {
			if err := ctx.Err(); err != nil {
				return err
			}
			report.PurchasesVisited++

			course, err := r.repos.Course.GetByCourseID(user.DomainID, purchase.CourseID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					log.Printf("user %s: course %s no longer exists, skipping purchase", user.UserID, purchase.CourseID)
					report.CoursesSkipped++
					continue
				}
				return err
			}

			plan, err := r.plans.ResolveForCourse(ctx, course)
			if err != nil {
				if errors.Is(err, paymentplan.ErrNoMatchingPlan) {
					return fmt.Errorf("user %s: course %s has no plan of the required type: %w", user.UserID, course.CourseID, err)
				}
				return err
			}

			_, created, err := r.memberships.Synthesize(ctx, user.DomainID, user.UserID, plan, course.CourseID, models.EntityTypeCourse)
			if err != nil {
				return err
			}
			if created {
				report.MembershipsCreated++
			} else {
				report.MembershipsFound++
			}
		}
	}
	return nil
}

// CustomersToMemberships materializes memberships for the legacy customer
// lists still embedded on courses. This path may create plans: a course that
// was sold before plans existed has none to resolve.
func (r *Runner) CustomersToMemberships(ctx context.Context, report *Report) error {
	courses, err := r.repos.Course.ListWithCustomers()
	if err != nil {
		return err
	}

	for i := range courses {
		course := &courses[i]
		plan, _, err := r.plans.ResolveOrCreateForCourse(ctx, course)
		if err != nil {
			return fmt.Errorf("course %s: %w", course.CourseID, err)
		}

		for _, userID := range course.Customers {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, created, err := r.memberships.Synthesize(ctx, course.DomainID, userID, plan, course.CourseID, models.EntityTypeCourse)
			if err != nil {
				return err
			}
			if created {
				report.CustomerMembershipsCreated++
			} else {
				report.CustomerMembershipsFound++
			}
		}
	}
	return nil
}

// PurchasesToInvoices derives one invoice per legacy purchase, keyed by the
// purchase order id so re-runs never duplicate. Purchases without a matching
// membership are skipped with a warning.
func (r *Runner) PurchasesToInvoices(ctx context.Context, report *Report) error {
	purchases, err := r.repos.Purchase.List()
	if err != nil {
		return err
	}

	for i := range purchases {
		if err := ctx.Err(); err != nil {
			return err
		}
		purchase := &purchases[i]

		m, err := r.repos.Membership.FindForEntity(purchase.DomainID, purchase.PurchasedBy, purchase.CourseID, models.EntityTypeCourse)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("purchase %s: no membership for user %s on course %s, skipping", purchase.OrderID, purchase.PurchasedBy, purchase.CourseID)
				report.InvoicesSkippedNoMembership++
				continue
			}
			return err
		}

		exists, err := r.repos.Invoice.Exists(purchase.DomainID, m.MembershipID, purchase.OrderID)
		if err != nil {
			return err
		}
		if exists {
			report.InvoicesSkippedExisting++
			continue
		}

		invoice := &models.Invoice{
			DomainID:                 purchase.DomainID,
			InvoiceID:                purchase.OrderID,
			MembershipID:             m.MembershipID,
			MembershipSessionID:      m.SessionID,
			Amount:                   purchase.Amount,
			Status:                   models.InvoiceStatusPaid,
			CurrencyISOCode:          purchase.CurrencyISOCode,
			PaymentProcessor:         purchase.PaymentMethod,
			PaymentProcessorEntityID: purchase.PaymentID,
		}
		if err := invoice.Validate(); err != nil {
			return fmt.Errorf("purchase %s: %w", purchase.OrderID, err)
		}
		if err := r.repos.Invoice.Create(invoice); err != nil {
			return err
		}
		report.InvoicesCreated++
	}
	return nil
}
