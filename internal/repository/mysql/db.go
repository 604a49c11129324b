package mysql

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB opens the MySQL connection. TranslateError is on so uniqueness
// violations surface as gorm.ErrDuplicatedKey across drivers.
func InitDB(dsn string) error {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}
	DB = db
	return nil
}
