package migration

import (
	"fmt"

	"gorm.io/gorm"

	"campusdesk/internal/infrastructure/persistence/models"
	"campusdesk/internal/shared/logger"
)

// AutoMigrateModels lists every persistence model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.SchoolModel{},
		&models.UserModel{},
		&models.UserSchoolModel{},
		&models.ProductModel{},
		&models.AssetModel{},
		&models.TicketModel{},
		&models.InquiryModel{},
		&models.SubscriptionModel{},
	}
}

// GormAutoMigrateStrategy lets GORM derive the schema from the models.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		models = AutoMigrateModels()
	}

	s.logger.Infow("running gorm auto-migrate", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}

	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_automigrate"
}
