package storage

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/logger"
)

const (
	TypePostgres = "postgres"
	TypeSQLite   = "sqlite"
	TypeMongo    = "mongo"
	TypeFile     = "file"
)

// New builds the backend named in the storage section of the config.
func New(ctx context.Context, conf *config.Service) (Storage, error) {
	kind := conf.Storage().Type()
	logger.Info("storage init - start", zap.String("type", kind))
	defer logger.Info("storage init - end")

	switch kind {
	case TypePostgres:
		s, err := NewPostgresStorage(conf.Postgres())
		if err != nil {
			return nil, errors.Wrap(err, "init storage")
		}
		return s, nil
	case TypeSQLite:
		s, err := NewSQLiteStorage(conf.SQLite().Path())
		if err != nil {
			return nil, errors.Wrap(err, "init storage")
		}
		return s, nil
	case TypeMongo:
		s, err := NewMongoStorage(ctx, conf.Mongo())
		if err != nil {
			return nil, errors.Wrap(err, "init storage")
		}
		return s, nil
	case TypeFile:
		s, err := NewFileStorage(conf.File().Path())
		if err != nil {
			return nil, errors.Wrap(err, "init storage")
		}
		return s, nil
	default:
		return nil, errors.Errorf("unsupported storage type %q", kind)
	}
}
