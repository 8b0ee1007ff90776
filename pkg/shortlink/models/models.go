package models

import "gorm.io/gorm"

// AllModels returns all models for migration
// Note: User must be migrated before Link, which the rest depend on
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&UserSession{},
		&Link{},
		&Schedule{},
		&PasswordProtection{},
		&AccessLogEntry{},
	}
}

// AutoMigrate runs GORM auto-migration for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
