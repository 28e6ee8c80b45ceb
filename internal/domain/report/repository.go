package report

import (
	"context"
	"time"
)

type ReportFilter struct {
	UserID     *uint
	CustomerID *uint
	DateFrom   *time.Time
	DateTo     *time.Time
	Page       int
	PageSize   int
}

// ReportOverview is a read-model row for dashboard listings: a report plus
// row counts derived at read time.
type ReportOverview struct {
	ReportID     uint
	UserID       uint
	UserName     string
	ReportDate   time.Time
	VisitCount   int64
	CommentCount int64
}

type ReportRepository interface {
	// Save persists a new report together with its initial visit records.
	Save(ctx context.Context, r *DailyReport) error
	// Update persists the report's own fields (problem/plan); visit records
	// are written through VisitRecordRepository as part of reconciliation.
	Update(ctx context.Context, r *DailyReport) error
	Delete(ctx context.Context, reportID uint) error
	// FindByID loads the report with its visit records ordered by visit
	// time ascending, NULL times last, id as tie-break.
	FindByID(ctx context.Context, reportID uint) (*DailyReport, error)
	FindByUserAndDate(ctx context.Context, userID uint, date time.Time) (*DailyReport, error)
	List(ctx context.Context, filter ReportFilter) ([]*DailyReport, int64, error)
	// CountByUser backs the user deletion guard: a user owning reports
	// cannot be deleted.
	CountByUser(ctx context.Context, userID uint) (int64, error)

	// ListRecentByUser returns the caller's newest reports with visit and
	// comment counts, for the sales dashboard.
	ListRecentByUser(ctx context.Context, userID uint, limit int) ([]*ReportOverview, error)
	// ListPendingReview returns reports with zero comments, oldest report
	// date first, for the manager dashboard.
	ListPendingReview(ctx context.Context) ([]*ReportOverview, error)
}

type VisitRecordRepository interface {
	// CreateBatch inserts fresh visit records under their report.
	CreateBatch(ctx context.Context, visits []*VisitRecord) error
	// UpdateBatch rewrites existing visit records in place.
	UpdateBatch(ctx context.Context, visits []*VisitRecord) error
	// DeleteByIDs removes the given visit records, scoped to the report.
	DeleteByIDs(ctx context.Context, reportID uint, ids []uint) error
	// CountByCustomer backs the customer deletion guard.
	CountByCustomer(ctx context.Context, customerID uint) (int64, error)
}

type CommentRepository interface {
	Save(ctx context.Context, c *Comment) error
	Update(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, commentID uint) error
	FindByID(ctx context.Context, commentID uint) (*Comment, error)
	ListByReport(ctx context.Context, reportID uint) ([]*Comment, error)
}
