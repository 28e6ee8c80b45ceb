package mappers

import (
	"time"

	"gorm.io/datatypes"

	"salesdaily/internal/domain/report"
	vo "salesdaily/internal/domain/report/valueobjects"
	"salesdaily/internal/infrastructure/persistence/models"
)

// ReportMapper handles the conversion between report domain entities
// (DailyReport, VisitRecord, Comment) and persistence models.
type ReportMapper interface {
	ToModel(r *report.DailyReport) *models.DailyReportModel
	ToDomain(model *models.DailyReportModel, visits []models.VisitRecordModel) (*report.DailyReport, error)

	VisitToModel(v *report.VisitRecord) *models.VisitRecordModel
	VisitToDomain(model *models.VisitRecordModel) (*report.VisitRecord, error)

	CommentToModel(c *report.Comment) *models.ReportCommentModel
	CommentToDomain(model *models.ReportCommentModel) (*report.Comment, error)
}

type ReportMapperImpl struct{}

func NewReportMapper() ReportMapper {
	return &ReportMapperImpl{}
}

func (m *ReportMapperImpl) ToModel(r *report.DailyReport) *models.DailyReportModel {
	return &models.DailyReportModel{
		ID:         r.ID(),
		UserID:     r.UserID(),
		ReportDate: datatypes.Date(r.ReportDate()),
		Problem:    r.Problem(),
		Plan:       r.Plan(),
		CreatedAt:  r.CreatedAt().UnixMilli(),
		UpdatedAt:  r.UpdatedAt().UnixMilli(),
	}
}

func (m *ReportMapperImpl) ToDomain(model *models.DailyReportModel, visits []models.VisitRecordModel) (*report.DailyReport, error) {
	domainVisits := make([]*report.VisitRecord, 0, len(visits))
	for i := range visits {
		v, err := m.VisitToDomain(&visits[i])
		if err != nil {
			return nil, err
		}
		domainVisits = append(domainVisits, v)
	}

	return report.ReconstructDailyReport(
		model.ID,
		model.UserID,
		time.Time(model.ReportDate),
		model.Problem,
		model.Plan,
		domainVisits,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}

func (m *ReportMapperImpl) VisitToModel(v *report.VisitRecord) *models.VisitRecordModel {
	return &models.VisitRecordModel{
		ID:              v.ID(),
		DailyReportID:   v.DailyReportID(),
		CustomerID:      v.CustomerID(),
		VisitContent:    v.VisitContent(),
		VisitTime:       v.VisitTime(),
		DurationMinutes: v.DurationMinutes(),
		CreatedAt:       v.CreatedAt().UnixMilli(),
		UpdatedAt:       v.UpdatedAt().UnixMilli(),
	}
}

func (m *ReportMapperImpl) VisitToDomain(model *models.VisitRecordModel) (*report.VisitRecord, error) {
	return report.ReconstructVisitRecord(
		model.ID,
		model.DailyReportID,
		model.CustomerID,
		model.VisitContent,
		model.VisitTime,
		model.DurationMinutes,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}

func (m *ReportMapperImpl) CommentToModel(c *report.Comment) *models.ReportCommentModel {
	return &models.ReportCommentModel{
		ID:            c.ID(),
		DailyReportID: c.DailyReportID(),
		AuthorID:      c.AuthorID(),
		CommentType:   c.CommentType().String(),
		Content:       c.Content(),
		CreatedAt:     c.CreatedAt().UnixMilli(),
		UpdatedAt:     c.UpdatedAt().UnixMilli(),
	}
}

func (m *ReportMapperImpl) CommentToDomain(model *models.ReportCommentModel) (*report.Comment, error) {
	return report.ReconstructComment(
		model.ID,
		model.DailyReportID,
		model.AuthorID,
		vo.CommentType(model.CommentType),
		model.Content,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}
