package scopes

import "gorm.io/gorm"

func WithID(id uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	}
}

func AvailableListings(db *gorm.DB) *gorm.DB {
	return db.Where("available = ?", true)
}

func WithPendingStatus(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", "Pending")
}
