package dto

import (
	"time"

	"salesdaily/internal/domain/report"
)

type VisitRecordDTO struct {
	ID              uint    `json:"id"`
	CustomerID      uint    `json:"customer_id"`
	VisitContent    string  `json:"visit_content"`
	VisitTime       *string `json:"visit_time"`
	DurationMinutes *int    `json:"duration_minutes"`
}

type CommentDTO struct {
	ID          uint      `json:"id"`
	ReportID    uint      `json:"report_id"`
	AuthorID    uint      `json:"author_id"`
	AuthorName  string    `json:"author_name,omitempty"`
	CommentType string    `json:"comment_type"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ReportDTO struct {
	ID         uint             `json:"id"`
	UserID     uint             `json:"user_id"`
	UserName   string           `json:"user_name,omitempty"`
	ReportDate string           `json:"report_date"`
	Problem    *string          `json:"problem"`
	Plan       *string          `json:"plan"`
	Visits     []VisitRecordDTO `json:"visits"`
	Comments   []CommentDTO     `json:"comments,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

type ReportListItemDTO struct {
	ID         uint   `json:"id"`
	UserID     uint   `json:"user_id"`
	ReportDate string `json:"report_date"`
	VisitCount int    `json:"visit_count"`
}

type ReportOverviewDTO struct {
	ReportID     uint   `json:"report_id"`
	UserID       uint   `json:"user_id"`
	UserName     string `json:"user_name"`
	ReportDate   string `json:"report_date"`
	VisitCount   int64  `json:"visit_count"`
	CommentCount int64  `json:"comment_count"`
}

func ToVisitRecordDTO(v *report.VisitRecord) VisitRecordDTO {
	return VisitRecordDTO{
		ID:              v.ID(),
		CustomerID:      v.CustomerID(),
		VisitContent:    v.VisitContent(),
		VisitTime:       v.VisitTime(),
		DurationMinutes: v.DurationMinutes(),
	}
}

func ToCommentDTO(c *report.Comment, authorName string) CommentDTO {
	return CommentDTO{
		ID:          c.ID(),
		ReportID:    c.DailyReportID(),
		AuthorID:    c.AuthorID(),
		AuthorName:  authorName,
		CommentType: c.CommentType().String(),
		Content:     c.Content(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

func ToReportDTO(r *report.DailyReport, userName string) *ReportDTO {
	if r == nil {
		return nil
	}

	visitDTOs := make([]VisitRecordDTO, 0, len(r.Visits()))
	for _, v := range r.Visits() {
		visitDTOs = append(visitDTOs, ToVisitRecordDTO(v))
	}

	return &ReportDTO{
		ID:         r.ID(),
		UserID:     r.UserID(),
		UserName:   userName,
		ReportDate: r.ReportDate().Format(report.DateLayout),
		Problem:    r.Problem(),
		Plan:       r.Plan(),
		Visits:     visitDTOs,
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
}

func ToReportListItemDTO(r *report.DailyReport) ReportListItemDTO {
	return ReportListItemDTO{
		ID:         r.ID(),
		UserID:     r.UserID(),
		ReportDate: r.ReportDate().Format(report.DateLayout),
		VisitCount: len(r.Visits()),
	}
}

func ToReportOverviewDTO(o *report.ReportOverview) ReportOverviewDTO {
	return ReportOverviewDTO{
		ReportID:     o.ReportID,
		UserID:       o.UserID,
		UserName:     o.UserName,
		ReportDate:   o.ReportDate.Format(report.DateLayout),
		VisitCount:   o.VisitCount,
		CommentCount: o.CommentCount,
	}
}
