package config

import (
	"github.com/pkg/errors"

	"max.ks1230/expense-tracker/internal/utils"
)

var storageTypes = []string{"postgres", "sqlite", "mongo", "file"}

type StorageConfig struct {
	Kind string `yaml:"type"`
}

func (s *StorageConfig) Type() string {
	return s.Kind
}

func (s *StorageConfig) validate() error {
	if !utils.Contains(storageTypes, s.Kind) {
		return errors.Errorf("unknown storage type %q, expected one of %v", s.Kind, storageTypes)
	}
	return nil
}

type SQLiteConfig struct {
	DBPath string `yaml:"path"`
}

func (s *SQLiteConfig) Path() string {
	return s.DBPath
}

type MongoConfig struct {
	MongoURI string `yaml:"uri"`
	Db       string `yaml:"database"`
}

func (s *MongoConfig) URI() string {
	return s.MongoURI
}

func (s *MongoConfig) Database() string {
	if s.Db == "" {
		return "expenses"
	}
	return s.Db
}

type FileConfig struct {
	FilePath string `yaml:"path"`
}

func (s *FileConfig) Path() string {
	if s.FilePath == "" {
		return "data/expenses.json"
	}
	return s.FilePath
}
