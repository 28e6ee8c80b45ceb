package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"salesdaily/internal/domain/report"
	"salesdaily/internal/infrastructure/persistence/mappers"
	"salesdaily/internal/infrastructure/persistence/models"
	"salesdaily/internal/shared/db"
)

type VisitRecordRepository struct {
	db     *gorm.DB
	mapper mappers.ReportMapper
}

func NewVisitRecordRepository(database *gorm.DB) *VisitRecordRepository {
	return &VisitRecordRepository{
		db:     database,
		mapper: mappers.NewReportMapper(),
	}
}

func (r *VisitRecordRepository) CreateBatch(ctx context.Context, visits []*report.VisitRecord) error {
	if len(visits) == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	visitModels := make([]models.VisitRecordModel, 0, len(visits))
	for _, v := range visits {
		visitModels = append(visitModels, *r.mapper.VisitToModel(v))
	}
	if err := tx.Create(&visitModels).Error; err != nil {
		return fmt.Errorf("failed to create visit records: %w", err)
	}

	for i, v := range visits {
		if err := v.SetID(visitModels[i].ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *VisitRecordRepository) UpdateBatch(ctx context.Context, visits []*report.VisitRecord) error {
	tx := db.GetTxFromContext(ctx, r.db)

	for _, v := range visits {
		model := r.mapper.VisitToModel(v)
		result := tx.
			Model(&models.VisitRecordModel{}).
			Where("id = ? AND daily_report_id = ?", model.ID, model.DailyReportID).
			Select("customer_id", "visit_content", "visit_time", "duration_minutes", "updated_at").
			Updates(model)
		if result.Error != nil {
			return fmt.Errorf("failed to update visit record %d: %w", model.ID, result.Error)
		}
	}

	return nil
}

func (r *VisitRecordRepository) DeleteByIDs(ctx context.Context, reportID uint, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("daily_report_id = ? AND id IN ?", reportID, ids).
		Delete(&models.VisitRecordModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete visit records: %w", err)
	}

	return nil
}

func (r *VisitRecordRepository) CountByCustomer(ctx context.Context, customerID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.VisitRecordModel{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count visit records by customer: %w", err)
	}

	return count, nil
}
