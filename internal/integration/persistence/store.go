package persistence

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
)

// Record store engines.
const (
	EngineSQLite   = "sqlite"
	EnginePostgres = "postgres"
	EngineRedis    = "redis"
)

// NewByEngine returns the record store for the configured engine.
// SQL engines need db, the redis engine needs client.
func NewByEngine(engine string, db *gorm.DB, client *redis.Client) (adapter.RecordStore, error) {
	switch engine {
	case EngineSQLite, EnginePostgres:
		if db == nil {
			return nil, fmt.Errorf("record store engine %q requires a database connection", engine)
		}
		return NewGormRecordStore(db), nil
	case EngineRedis:
		if client == nil {
			return nil, fmt.Errorf("record store engine %q requires a redis client", engine)
		}
		return NewRedisRecordStore(client), nil
	}
	return nil, fmt.Errorf("unknown record store engine %q", engine)
}
