package report

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for report dates. Dates are treated as UTC
// calendar dates; no client timezone conversion is applied.
const DateLayout = "2006-01-02"

// DailyReport is one sales rep's activity log for a single calendar date.
// A report owns its visit records; at most one report exists per user per day.
type DailyReport struct {
	id         uint
	userID     uint
	reportDate time.Time
	problem    *string
	plan       *string
	visits     []*VisitRecord
	createdAt  time.Time
	updatedAt  time.Time
}

// NewDailyReport creates a report with its initial visit set. A report must
// carry at least one visit from the moment it exists.
func NewDailyReport(userID uint, reportDate time.Time, problem, plan *string, visits []*VisitRecord) (*DailyReport, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if reportDate.IsZero() {
		return nil, fmt.Errorf("report date is required")
	}
	if err := validateReportText(problem, plan); err != nil {
		return nil, err
	}
	if len(visits) == 0 {
		return nil, fmt.Errorf("a report requires at least one visit record")
	}

	now := time.Now().UTC()
	return &DailyReport{
		userID:     userID,
		reportDate: truncateToDate(reportDate),
		problem:    problem,
		plan:       plan,
		visits:     visits,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructDailyReport reconstructs a report from persistence.
func ReconstructDailyReport(
	id uint,
	userID uint,
	reportDate time.Time,
	problem, plan *string,
	visits []*VisitRecord,
	createdAt, updatedAt time.Time,
) (*DailyReport, error) {
	if id == 0 {
		return nil, fmt.Errorf("report ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if reportDate.IsZero() {
		return nil, fmt.Errorf("report date is required")
	}

	if visits == nil {
		visits = []*VisitRecord{}
	}

	return &DailyReport{
		id:         id,
		userID:     userID,
		reportDate: truncateToDate(reportDate),
		problem:    problem,
		plan:       plan,
		visits:     visits,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (r *DailyReport) ID() uint              { return r.id }
func (r *DailyReport) UserID() uint          { return r.userID }
func (r *DailyReport) ReportDate() time.Time { return r.reportDate }
func (r *DailyReport) Problem() *string      { return r.problem }
func (r *DailyReport) Plan() *string         { return r.plan }
func (r *DailyReport) Visits() []*VisitRecord {
	return r.visits
}
func (r *DailyReport) CreatedAt() time.Time { return r.createdAt }
func (r *DailyReport) UpdatedAt() time.Time { return r.updatedAt }

func (r *DailyReport) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("report ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("report ID cannot be zero")
	}
	r.id = id
	for _, v := range r.visits {
		if err := v.AttachToReport(id); err != nil {
			return err
		}
	}
	return nil
}

// IsOwnedBy reports whether the given user owns this report.
func (r *DailyReport) IsOwnedBy(userID uint) bool {
	return r.userID == userID
}

// VisitIDs returns the ids of the visit records currently owned by the report.
func (r *DailyReport) VisitIDs() []uint {
	ids := make([]uint, 0, len(r.visits))
	for _, v := range r.visits {
		if v.ID() != 0 {
			ids = append(ids, v.ID())
		}
	}
	return ids
}

// VisitByID returns the owned visit record with the given id, or nil.
func (r *DailyReport) VisitByID(id uint) *VisitRecord {
	for _, v := range r.visits {
		if v.ID() == id {
			return v
		}
	}
	return nil
}

// UpdateFields replaces the report's own problem/plan text.
func (r *DailyReport) UpdateFields(problem, plan *string) error {
	if err := validateReportText(problem, plan); err != nil {
		return err
	}
	r.problem = problem
	r.plan = plan
	r.updatedAt = time.Now().UTC()
	return nil
}

// ReplaceVisits swaps in the reconciled visit set. The set must be non-empty;
// an update that would leave the report without visits is rejected upstream
// as well, this is the last line of defense.
func (r *DailyReport) ReplaceVisits(visits []*VisitRecord) error {
	if len(visits) == 0 {
		return fmt.Errorf("a report requires at least one visit record")
	}
	r.visits = visits
	r.updatedAt = time.Now().UTC()
	return nil
}

func validateReportText(problem, plan *string) error {
	if problem != nil && len(*problem) > 2000 {
		return fmt.Errorf("problem exceeds maximum length of 2000 characters")
	}
	if plan != nil && len(*plan) > 2000 {
		return fmt.Errorf("plan exceeds maximum length of 2000 characters")
	}
	return nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
