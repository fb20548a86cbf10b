package mock

import (
	"database/sql"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-tracker/webapp/internal/integration/persistence/model"
)

var once sync.Once
var db *Db

// Db is the in-memory SQLite goal store shared by every scenario.
type Db struct {
	DbConn *gorm.DB
}

// NewDb opens the shared in-memory database and migrates the key-value table.
func NewDb() *Db {
	if db == nil {
		once.Do(
			func() {
				db = open()
			},
		)
	}

	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := dbConn.AutoMigrate(&model.KeyValueModel{}); err != nil {
		panic("failed to migrate database. err: " + err.Error())
	}

	return &Db{DbConn: dbConn}
}

// ClearDB removes every stored key.
func (d *Db) ClearDB() error {
	return d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.KeyValueModel{}).Error
}
