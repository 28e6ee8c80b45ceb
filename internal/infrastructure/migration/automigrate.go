package migration

import (
	"fmt"

	"gorm.io/gorm"

	"salesdaily/internal/infrastructure/persistence/models"
	"salesdaily/internal/shared/logger"
)

// AutoMigrateModels lists every persistence model the schema covers.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.CustomerModel{},
		&models.DailyReportModel{},
		&models.VisitRecordModel{},
		&models.ReportCommentModel{},
	}
}

// GormAutoMigrateStrategy derives the schema from the model structs. Used in
// development only; versioned SQL scripts own the schema everywhere else.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	s.logger.Infow("starting gorm auto-migration", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		s.logger.Errorw("auto-migration failed", "error", err)
		return fmt.Errorf("failed to auto-migrate models: %w", err)
	}

	s.logger.Infow("auto-migration completed successfully")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
