// Package mock provides in-memory stores for tests.
package mock

import (
	"database/sql"
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Db is an isolated in-memory SQLite database.
type Db struct {
	DbConn *gorm.DB
	sqlDB  *sql.DB
	models []any
}

// NewDb opens a fresh in-memory database and migrates models into it.
// Every call gets its own database, so tests never share rows.
func NewDb(models ...any) *Db {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	dbSQL, err := sql.Open("sqlite", dsn)
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

	if err := dbConn.AutoMigrate(models...); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	return &Db{
		DbConn: dbConn,
		sqlDB:  dbSQL,
		models: models,
	}
}

// ClearDB deletes every row of the migrated models.
func (d *Db) ClearDB() error {
	for _, model := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// Close releases the database.
func (d *Db) Close() {
	_ = d.sqlDB.Close()
}
