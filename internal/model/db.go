package model

import "gorm.io/gorm"

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Type{}); err != nil {
		return err
	}

	if err := db.AutoMigrate(&Object{}); err != nil {
		return err
	}

	if err := db.AutoMigrate(&Link{}); err != nil {
		return err
	}

	if err := db.AutoMigrate(&Permission{}); err != nil {
		return err
	}

	if err := db.AutoMigrate(&Versioning{}); err != nil {
		return err
	}

	return db.AutoMigrate(&Attribute{})
}
