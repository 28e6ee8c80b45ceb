package models

import "gorm.io/datatypes"

// DailyReportModel carries the unique (user_id, report_date) constraint:
// the database index is the source of truth for duplicate-report prevention,
// not an application-level check-then-act.
type DailyReportModel struct {
	ID         uint           `gorm:"primaryKey"`
	UserID     uint           `gorm:"not null;uniqueIndex:idx_user_report_date"`
	ReportDate datatypes.Date `gorm:"not null;uniqueIndex:idx_user_report_date"`
	Problem    *string        `gorm:"size:2000"`
	Plan       *string        `gorm:"size:2000"`
	CreatedAt  int64          `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64          `gorm:"autoUpdateTime:milli;not null"`

	VisitRecords []VisitRecordModel `gorm:"foreignKey:DailyReportID;constraint:OnDelete:CASCADE"`
	Comments     []ReportCommentModel `gorm:"foreignKey:DailyReportID;constraint:OnDelete:CASCADE"`
}

func (DailyReportModel) TableName() string {
	return "daily_reports"
}

type VisitRecordModel struct {
	ID              uint    `gorm:"primaryKey"`
	DailyReportID   uint    `gorm:"not null;index"`
	CustomerID      uint    `gorm:"not null;index"`
	VisitContent    string  `gorm:"size:1000;not null"`
	VisitTime       *string `gorm:"size:5"`
	DurationMinutes *int
	CreatedAt       int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (VisitRecordModel) TableName() string {
	return "visit_records"
}
