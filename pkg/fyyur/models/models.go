package models

import (
	"strings"

	"gorm.io/gorm"
)

// AllModels returns all models for migration
// Note: Venue and Artist must be migrated before Show, which references both
func AllModels() []interface{} {
	return []interface{}{
		&Venue{},
		&Artist{},
		&Show{},
	}
}

// AutoMigrate runs GORM auto-migration for all models, then fills the
// search key of rows written before the name_key column existed
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return err
	}
	for _, table := range []string{"venues", "artists"} {
		if err := backfillNameKeys(db, table); err != nil {
			return err
		}
	}
	return nil
}

// NameKey is the case-folded name used for searching. SQLite's LOWER and
// LIKE only fold ASCII, so folding happens here instead of in SQL.
func NameKey(name string) string {
	return strings.ToLower(name)
}

func backfillNameKeys(db *gorm.DB, table string) error {
	type row struct {
		ID   uint
		Name string
	}
	var rows []row
	if err := db.Table(table).Select("id", "name").Where("name_key = '' OR name_key IS NULL").Find(&rows).Error; err != nil {
		return err
	}
	for _, r := range rows {
		if err := db.Table(table).Where("id = ?", r.ID).UpdateColumn("name_key", NameKey(r.Name)).Error; err != nil {
			return err
		}
	}
	return nil
}
