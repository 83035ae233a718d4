package migration

import "log"

// Report collects per-phase counters for one pipeline run.
type Report struct {
	CoursePlansCreated    int
	CommunityPlansCreated int

	PurchasesVisited   int
	MembershipsCreated int
	MembershipsFound   int
	CoursesSkipped     int

	CustomerMembershipsCreated int
	CustomerMembershipsFound   int

	InvoicesCreated             int
	InvoicesSkippedExisting     int
	InvoicesSkippedNoMembership int
}

// Log writes a human-readable summary of the run.
func (r *Report) Log() {
	log.Printf("plans created: %d course, %d community", r.CoursePlansCreated, r.CommunityPlansCreated)
	log.Printf("purchase memberships: %d created, %d already present (%d purchases, %d unmatched courses)",
		r.MembershipsCreated, r.MembershipsFound, r.PurchasesVisited, r.CoursesSkipped)
	log.Printf("customer memberships: %d created, %d already present",
		r.CustomerMembershipsCreated, r.CustomerMembershipsFound)
	log.Printf("invoices: %d created, %d already present, %d without membership",
		r.InvoicesCreated, r.InvoicesSkippedExisting, r.InvoicesSkippedNoMembership)
}
