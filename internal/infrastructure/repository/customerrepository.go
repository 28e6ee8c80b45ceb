package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"salesdaily/internal/domain/customer"
	"salesdaily/internal/infrastructure/persistence/mappers"
	"salesdaily/internal/infrastructure/persistence/models"
	"salesdaily/internal/shared/db"
	apperrors "salesdaily/internal/shared/errors"
)

type CustomerRepository struct {
	db     *gorm.DB
	mapper mappers.CustomerMapper
}

func NewCustomerRepository(database *gorm.DB) *CustomerRepository {
	return &CustomerRepository{
		db:     database,
		mapper: mappers.NewCustomerMapper(),
	}
}

func (r *CustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save customer: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CustomerModel{}).
		Where("id = ?", model.ID).
		Select("name", "company_name", "phone", "email", "address", "notes", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update customer: %w", result.Error)
	}

	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, customerID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.CustomerModel{}, customerID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("customer not found")
	}

	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, customerID uint) (*customer.Customer, error) {
	var model models.CustomerModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("customer not found")
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CustomerRepository) FindExistingIDs(ctx context.Context, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	var found []uint
	if err := tx.
		Model(&models.CustomerModel{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error; err != nil {
		return nil, fmt.Errorf("failed to look up customer ids: %w", err)
	}

	return found, nil
}

func (r *CustomerRepository) List(ctx context.Context, filter customer.CustomerFilter) ([]*customer.Customer, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.CustomerModel{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR company_name LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	var modelList []models.CustomerModel
	if err := query.
		Order("company_name ASC, name ASC").
		Scopes(paginate(filter.Page, filter.PageSize)).
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}

	customers := make([]*customer.Customer, 0, len(modelList))
	for i := range modelList {
		c, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, 0, err
		}
		customers = append(customers, c)
	}

	return customers, total, nil
}
