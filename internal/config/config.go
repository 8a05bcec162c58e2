package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	configFile    = "data/config.yaml"
	configPathEnv = "EXPENSES_CONFIG"

	postgresPasswordEnv = "POSTGRES_PASSWORD"
	mongoURIEnv         = "MONGO_URI"
)

type config struct {
	App       AppConfig       `yaml:"app"`
	Storage   StorageConfig   `yaml:"storage"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	SQLite    SQLiteConfig    `yaml:"sqlite"`
	Mongo     MongoConfig     `yaml:"mongo"`
	File      FileConfig      `yaml:"file"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Jaeger    JaegerConfig    `yaml:"jaeger"`
}

type Service struct {
	config config
}

// New reads the config file named by EXPENSES_CONFIG, or data/config.yaml.
func New() (*Service, error) {
	path := os.Getenv(configPathEnv)
	if path == "" {
		path = configFile
	}
	return NewFromFile(path)
}

func NewFromFile(path string) (*Service, error) {
	rawYAML, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	return Parse(rawYAML)
}

func Parse(rawYAML []byte) (*Service, error) {
	s := &Service{}
	if err := yaml.Unmarshal(rawYAML, &s.config); err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	s.applyEnv()
	if err := s.config.Storage.validate(); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}
	return s, nil
}

// applyEnv lets secrets live outside the config file.
func (s *Service) applyEnv() {
	if pswd := os.Getenv(postgresPasswordEnv); pswd != "" {
		s.config.Postgres.Pswd = pswd
	}
	if uri := os.Getenv(mongoURIEnv); uri != "" {
		s.config.Mongo.MongoURI = uri
	}
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Storage() *StorageConfig {
	return &s.config.Storage
}

func (s *Service) Postgres() *PostgresConfig {
	return &s.config.Postgres
}

func (s *Service) SQLite() *SQLiteConfig {
	return &s.config.SQLite
}

func (s *Service) Mongo() *MongoConfig {
	return &s.config.Mongo
}

func (s *Service) File() *FileConfig {
	return &s.config.File
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Kafka() *KafkaConfig {
	return &s.config.Kafka
}

func (s *Service) Metrics() *MetricsConfig {
	return &s.config.Metrics
}

func (s *Service) Jaeger() *JaegerConfig {
	return &s.config.Jaeger
}
