package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"salesdaily/internal/domain/report"
	"salesdaily/internal/infrastructure/persistence/mappers"
	"salesdaily/internal/infrastructure/persistence/models"
	"salesdaily/internal/shared/db"
	apperrors "salesdaily/internal/shared/errors"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.ReportMapper
}

func NewCommentRepository(database *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     database,
		mapper: mappers.NewReportMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, c *report.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CommentRepository) Update(ctx context.Context, c *report.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ReportCommentModel{}).
		Where("id = ?", model.ID).
		Select("comment_type", "content", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update comment: %w", result.Error)
	}

	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, commentID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ReportCommentModel{}, commentID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("comment not found")
	}

	return nil
}

func (r *CommentRepository) FindByID(ctx context.Context, commentID uint) (*report.Comment, error) {
	var model models.ReportCommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("comment not found")
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}

	return r.mapper.CommentToDomain(&model)
}

func (r *CommentRepository) ListByReport(ctx context.Context, reportID uint) ([]*report.Comment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.ReportCommentModel
	if err := tx.
		Where("daily_report_id = ?", reportID).
		Order("created_at ASC, id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*report.Comment, 0, len(modelList))
	for i := range modelList {
		c, err := r.mapper.CommentToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	return comments, nil
}
