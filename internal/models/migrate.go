package models

import "gorm.io/gorm"

// AutoMigrate creates or updates the tables for every persisted entity.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{}, &Analysis{}, &Strategy{})
}
