package tester

import (
	"os"

	"github.com/emrgen/strata/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	testPath = "../../.test/"
)

var (
	db *gorm.DB
)

// Setup builds a fresh sqlite database with the full schema. Each test owns
// its own database state; call this at the top of the test.
func Setup() {
	RemoveDBFile()

	_ = os.Setenv("STRATA_ENV", "test")

	err := os.MkdirAll(testPath+"/db", os.ModePerm)
	if err != nil {
		panic(err)
	}

	db, err = gorm.Open(sqlite.Open(testPath+"db/strata.db"), &gorm.Config{TranslateError: true})
	if err != nil {
		panic(err)
	}

	err = model.Migrate(db)
	if err != nil {
		panic(err)
	}
}

func TestDB() *gorm.DB {
	return db
}

func RemoveDBFile() {
	err := os.RemoveAll(testPath)
	if err != nil {
		panic(err)
	}
}
