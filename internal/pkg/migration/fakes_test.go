package migration

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coursebill/coursebill/app/models"
	"github.com/coursebill/coursebill/app/repository"
)

// In-memory repository fakes. They mirror the GORM implementations closely
// enough for pipeline tests: lookups return gorm.ErrRecordNotFound, creates
// fill generated ids the way the model hooks do, and the payment-plan fake
// enforces the internal-plan invariant.

type fakeUserRepo struct {
	users []models.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (f *fakeUserRepo) Create(u *models.User) error {
	u.ID = uint(len(f.users) + 1)
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUserRepo) GetByUserID(domainID uint, userID string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].DomainID == domainID && f.users[i].UserID == userID {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) ListWithPurchases() ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if u.HasPurchases() {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Update(u *models.User) error {
	for i := range f.users {
		if f.users[i].ID == u.ID {
			f.users[i] = *u
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Count() (int64, error) { return int64(len(f.users)), nil }

type fakeCourseRepo struct {
	courses []models.Course
}

var _ repository.CourseRepository = (*fakeCourseRepo)(nil)

func (f *fakeCourseRepo) Create(c *models.Course) error {
	c.ID = uint(len(f.courses) + 1)
	f.courses = append(f.courses, *c)
	return nil
}

func (f *fakeCourseRepo) GetByCourseID(domainID uint, courseID string) (*models.Course, error) {
	for i := range f.courses {
		if f.courses[i].DomainID == domainID && f.courses[i].CourseID == courseID {
			c := f.courses[i]
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCourseRepo) ListMigratable() ([]models.Course, error) {
	var out []models.Course
	for _, c := range f.courses {
		if c.Published || c.HasCustomers() {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCourseRepo) ListWithCustomers() ([]models.Course, error) {
	var out []models.Course
	for _, c := range f.courses {
		if c.HasCustomers() {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCourseRepo) Update(c *models.Course) error {
	for i := range f.courses {
		if f.courses[i].CourseID == c.CourseID {
			f.courses[i] = *c
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeCourseRepo) Count() (int64, error) { return int64(len(f.courses)), nil }

type fakeCommunityRepo struct {
	communities []models.Community
}

var _ repository.CommunityRepository = (*fakeCommunityRepo)(nil)

func (f *fakeCommunityRepo) Create(c *models.Community) error {
	c.ID = uint(len(f.communities) + 1)
	f.communities = append(f.communities, *c)
	return nil
}

func (f *fakeCommunityRepo) GetByCommunityID(domainID uint, communityID string) (*models.Community, error) {
	for i := range f.communities {
		if f.communities[i].DomainID == domainID && f.communities[i].CommunityID == communityID {
			c := f.communities[i]
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCommunityRepo) ListEnabled() ([]models.Community, error) {
	var out []models.Community
	for _, c := range f.communities {
		if c.Enabled {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCommunityRepo) Update(c *models.Community) error {
	for i := range f.communities {
		if f.communities[i].CommunityID == c.CommunityID {
			f.communities[i] = *c
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakePaymentPlanRepo struct {
	plans []models.PaymentPlan
}

var _ repository.PaymentPlanRepository = (*fakePaymentPlanRepo)(nil)

func (f *fakePaymentPlanRepo) Create(p *models.PaymentPlan) error {
	if p.PlanID == "" {
		p.PlanID = uuid.New().String()
	}
	if p.Internal {
		var others int64
		for _, existing := range f.plans {
			if existing.DomainID == p.DomainID && existing.Internal {
				others++
			}
		}
		if err := p.CheckInternalInvariant(others); err != nil {
			return err
		}
	}
	p.ID = uint(len(f.plans) + 1)
	f.plans = append(f.plans, *p)
	return nil
}

func (f *fakePaymentPlanRepo) GetByPlanID(domainID uint, planID string) (*models.PaymentPlan, error) {
	for i := range f.plans {
		if f.plans[i].DomainID == domainID && f.plans[i].PlanID == planID {
			p := f.plans[i]
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePaymentPlanRepo) FindFirstOfType(domainID uint, creatorID string, planIDs []string, planType string) (*models.PaymentPlan, error) {
	for i := range f.plans {
		p := f.plans[i]
		if p.DomainID != domainID || p.UserID != creatorID || p.Type != planType || p.Archived {
			continue
		}
		for _, id := range planIDs {
			if p.PlanID == id {
				return &p, nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePaymentPlanRepo) Archive(domainID uint, planID string) error {
	for i := range f.plans {
		if f.plans[i].DomainID == domainID && f.plans[i].PlanID == planID {
			f.plans[i].Archived = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakePaymentPlanRepo) Count() (int64, error) { return int64(len(f.plans)), nil }

type fakeMembershipRepo struct {
	memberships []models.Membership
}

var _ repository.MembershipRepository = (*fakeMembershipRepo)(nil)

func (f *fakeMembershipRepo) Create(m *models.Membership) error {
	if m.MembershipID == "" {
		m.MembershipID = uuid.New().String()
	}
	if m.SessionID == "" {
		m.SessionID = uuid.New().String()
	}
	m.ID = uint(len(f.memberships) + 1)
	f.memberships = append(f.memberships, *m)
	return nil
}

func (f *fakeMembershipRepo) FindExact(domainID uint, userID, paymentPlanID, entityID, entityType, status string) (*models.Membership, error) {
	for i := range f.memberships {
		m := f.memberships[i]
		if m.DomainID == domainID && m.UserID == userID && m.PaymentPlanID == paymentPlanID &&
			m.EntityID == entityID && m.EntityType == entityType && m.Status == status {
			return &m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMembershipRepo) FindForEntity(domainID uint, userID, entityID, entityType string) (*models.Membership, error) {
	for i := range f.memberships {
		m := f.memberships[i]
		if m.DomainID == domainID && m.UserID == userID && m.EntityID == entityID && m.EntityType == entityType {
			return &m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMembershipRepo) HasActive(domainID uint, userID, entityID, entityType string) (bool, error) {
	for _, m := range f.memberships {
		if m.DomainID == domainID && m.UserID == userID && m.EntityID == entityID &&
			m.EntityType == entityType && m.Status == models.MembershipStatusActive {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMembershipRepo) Count() (int64, error) { return int64(len(f.memberships)), nil }

type fakePurchaseRepo struct {
	purchases []models.Purchase
}

var _ repository.PurchaseRepository = (*fakePurchaseRepo)(nil)

func (f *fakePurchaseRepo) Create(p *models.Purchase) error {
	p.ID = uint(len(f.purchases) + 1)
	f.purchases = append(f.purchases, *p)
	return nil
}

func (f *fakePurchaseRepo) List() ([]models.Purchase, error) {
	out := make([]models.Purchase, len(f.purchases))
	copy(out, f.purchases)
	return out, nil
}

func (f *fakePurchaseRepo) Count() (int64, error) { return int64(len(f.purchases)), nil }

type fakeInvoiceRepo struct {
	invoices []models.Invoice
}

var _ repository.InvoiceRepository = (*fakeInvoiceRepo)(nil)

func (f *fakeInvoiceRepo) Create(inv *models.Invoice) error {
	inv.ID = uint(len(f.invoices) + 1)
	f.invoices = append(f.invoices, *inv)
	return nil
}

func (f *fakeInvoiceRepo) Exists(domainID uint, membershipID, invoiceID string) (bool, error) {
	for _, inv := range f.invoices {
		if inv.DomainID == domainID && inv.MembershipID == membershipID && inv.InvoiceID == invoiceID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeInvoiceRepo) Count() (int64, error) { return int64(len(f.invoices)), nil }

type fakeStores struct {
	users       *fakeUserRepo
	courses     *fakeCourseRepo
	communities *fakeCommunityRepo
	plans       *fakePaymentPlanRepo
	memberships *fakeMembershipRepo
	purchases   *fakePurchaseRepo
	invoices    *fakeInvoiceRepo
}

func newFakeStores() *fakeStores {
	return &fakeStores{
		users:       &fakeUserRepo{},
		courses:     &fakeCourseRepo{},
		communities: &fakeCommunityRepo{},
		plans:       &fakePaymentPlanRepo{},
		memberships: &fakeMembershipRepo{},
		purchases:   &fakePurchaseRepo{},
		invoices:    &fakeInvoiceRepo{},
	}
}

func (s *fakeStores) repositories() *repository.Repositories {
	return &repository.Repositories{
		User:        s.users,
		Course:      s.courses,
		Community:   s.communities,
		PaymentPlan: s.plans,
		Membership:  s.memberships,
		Purchase:    s.purchases,
		Invoice:     s.invoices,
	}
}
