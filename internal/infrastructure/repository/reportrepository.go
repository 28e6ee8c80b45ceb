package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"salesdaily/internal/domain/report"
	"salesdaily/internal/infrastructure/persistence/mappers"
	"salesdaily/internal/infrastructure/persistence/models"
	"salesdaily/internal/shared/db"
	apperrors "salesdaily/internal/shared/errors"
)

// visitOrder pins the visit ordering contract: visit time ascending, NULL
// times last, id as tie-break.
const visitOrder = "visit_time IS NULL, visit_time ASC, id ASC"

type ReportRepository struct {
	db     *gorm.DB
	mapper mappers.ReportMapper
}

func NewReportRepository(database *gorm.DB) *ReportRepository {
	return &ReportRepository{
		db:     database,
		mapper: mappers.NewReportMapper(),
	}
}

func (r *ReportRepository) Save(ctx context.Context, rep *report.DailyReport) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := r.mapper.ToModel(rep)
	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsUniqueConstraintViolation(err) {
			return apperrors.NewDuplicateError("a report for this date is already registered")
		}
		return fmt.Errorf("failed to save report: %w", err)
	}

	if err := rep.SetID(model.ID); err != nil {
		return err
	}

	visitModels := make([]models.VisitRecordModel, 0, len(rep.Visits()))
	for _, v := range rep.Visits() {
		visitModels = append(visitModels, *r.mapper.VisitToModel(v))
	}
	if err := tx.Create(&visitModels).Error; err != nil {
		return fmt.Errorf("failed to save visit records: %w", err)
	}
	for i, v := range rep.Visits() {
		if err := v.SetID(visitModels[i].ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *ReportRepository) Update(ctx context.Context, rep *report.DailyReport) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := r.mapper.ToModel(rep)
	result := tx.
		Model(&models.DailyReportModel{}).
		Where("id = ?", model.ID).
		Select("problem", "plan", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update report: %w", result.Error)
	}

	return nil
}

func (r *ReportRepository) Delete(ctx context.Context, reportID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	// Cascade covers databases created from the SQL migrations; the
	// explicit deletes keep AutoMigrate-created dev schemas consistent.
	if err := tx.Where("daily_report_id = ?", reportID).Delete(&models.VisitRecordModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete visit records: %w", err)
	}
	if err := tx.Where("daily_report_id = ?", reportID).Delete(&models.ReportCommentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete report comments: %w", err)
	}

	result := tx.Delete(&models.DailyReportModel{}, reportID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("report not found")
	}

	return nil
}

func (r *ReportRepository) FindByID(ctx context.Context, reportID uint) (*report.DailyReport, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.DailyReportModel
	if err := tx.First(&model, reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("report not found")
		}
		return nil, fmt.Errorf("failed to find report: %w", err)
	}

	visits, err := r.loadVisits(tx, model.ID)
	if err != nil {
		return nil, err
	}

	return r.mapper.ToDomain(&model, visits)
}

func (r *ReportRepository) FindByUserAndDate(ctx context.Context, userID uint, date time.Time) (*report.DailyReport, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.DailyReportModel
	err := tx.
		Where("user_id = ? AND report_date = ?", userID, datatypes.Date(date)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("report not found")
		}
		return nil, fmt.Errorf("failed to find report by date: %w", err)
	}

	visits, err := r.loadVisits(tx, model.ID)
	if err != nil {
		return nil, err
	}

	return r.mapper.ToDomain(&model, visits)
}

func (r *ReportRepository) List(ctx context.Context, filter report.ReportFilter) ([]*report.DailyReport, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.DailyReportModel{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.DateFrom != nil {
		query = query.Where("report_date >= ?", datatypes.Date(*filter.DateFrom))
	}
	if filter.DateTo != nil {
		query = query.Where("report_date <= ?", datatypes.Date(*filter.DateTo))
	}
	if filter.CustomerID != nil {
		query = query.Where(
			"id IN (?)",
			tx.Model(&models.VisitRecordModel{}).
				Select("daily_report_id").
				Where("customer_id = ?", *filter.CustomerID),
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reports: %w", err)
	}

	var modelList []models.DailyReportModel
	if err := query.
		Order("report_date DESC, id DESC").
		Scopes(paginate(filter.Page, filter.PageSize)).
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list reports: %w", err)
	}

	reports := make([]*report.DailyReport, 0, len(modelList))
	for i := range modelList {
		visits, err := r.loadVisits(tx, modelList[i].ID)
		if err != nil {
			return nil, 0, err
		}
		rep, err := r.mapper.ToDomain(&modelList[i], visits)
		if err != nil {
			return nil, 0, err
		}
		reports = append(reports, rep)
	}

	return reports, total, nil
}

func (r *ReportRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.DailyReportModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count reports by user: %w", err)
	}

	return count, nil
}

// overviewRow is the scan target for the dashboard read-model queries.
type overviewRow struct {
	ReportID     uint
	UserID       uint
	UserName     string
	ReportDate   datatypes.Date
	VisitCount   int64
	CommentCount int64
}

func (r *ReportRepository) ListRecentByUser(ctx context.Context, userID uint, limit int) ([]*report.ReportOverview, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []overviewRow
	err := tx.
		Table("daily_reports AS dr").
		Select(`dr.id AS report_id, dr.user_id, u.name AS user_name, dr.report_date,
			(SELECT COUNT(*) FROM visit_records v WHERE v.daily_report_id = dr.id) AS visit_count,
			(SELECT COUNT(*) FROM report_comments c WHERE c.daily_report_id = dr.id) AS comment_count`).
		Joins("JOIN users u ON u.id = dr.user_id").
		Where("dr.user_id = ?", userID).
		Order("dr.report_date DESC, dr.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent reports: %w", err)
	}

	return toOverviews(rows), nil
}

func (r *ReportRepository) ListPendingReview(ctx context.Context) ([]*report.ReportOverview, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []overviewRow
	err := tx.
		Table("daily_reports AS dr").
		Select(`dr.id AS report_id, dr.user_id, u.name AS user_name, dr.report_date,
			(SELECT COUNT(*) FROM visit_records v WHERE v.daily_report_id = dr.id) AS visit_count,
			0 AS comment_count`).
		Joins("JOIN users u ON u.id = dr.user_id").
		Where("NOT EXISTS (SELECT 1 FROM report_comments c WHERE c.daily_report_id = dr.id)").
		Order("dr.report_date ASC, dr.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending reports: %w", err)
	}

	return toOverviews(rows), nil
}

func (r *ReportRepository) loadVisits(tx *gorm.DB, reportID uint) ([]models.VisitRecordModel, error) {
	var visits []models.VisitRecordModel
	if err := tx.
		Where("daily_report_id = ?", reportID).
		Order(visitOrder).
		Find(&visits).Error; err != nil {
		return nil, fmt.Errorf("failed to load visit records: %w", err)
	}
	return visits, nil
}

func toOverviews(rows []overviewRow) []*report.ReportOverview {
	overviews := make([]*report.ReportOverview, 0, len(rows))
	for _, row := range rows {
		overviews = append(overviews, &report.ReportOverview{
			ReportID:     row.ReportID,
			UserID:       row.UserID,
			UserName:     row.UserName,
			ReportDate:   time.Time(row.ReportDate),
			VisitCount:   row.VisitCount,
			CommentCount: row.CommentCount,
		})
	}
	return overviews
}
