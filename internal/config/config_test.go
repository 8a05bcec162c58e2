package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
app:
  timezone: Europe/Moscow
storage:
  type: postgres
postgres:
  host: db
  db: expenses
  username: app
  password: from-file
memcached:
  hosts: ["cache:11211"]
  ttl-seconds: 60
kafka:
  brokers: ["kafka:9092"]
  consumer-group: workers
  events-topic: expense-events
`

func Test_Parse_ShouldReadSections(t *testing.T) {
	s, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "postgres", s.Storage().Type())
	assert.Equal(t, "db", s.Postgres().Host())
	assert.Equal(t, "from-file", s.Postgres().Password())
	assert.Equal(t, []string{"cache:11211"}, s.Memcached().Hosts())
	assert.Equal(t, int32(60), s.Memcached().TTLSeconds())
	assert.True(t, s.Kafka().Enabled())
	assert.Equal(t, "expense-events", s.Kafka().EventsTopic())
	assert.Equal(t, "Europe/Moscow", s.App().Location().String())
}

func Test_Parse_ShouldApplyDefaults(t *testing.T) {
	s, err := Parse([]byte("storage:\n  type: file\n"))
	require.NoError(t, err)

	assert.Equal(t, "data/expenses.json", s.File().Path())
	assert.Equal(t, "expenses", s.Mongo().Database())
	assert.Equal(t, time.UTC, s.App().Location())
	assert.False(t, s.Memcached().Enabled())
	assert.False(t, s.Kafka().Enabled())
	assert.Equal(t, ":9090", s.Metrics().Addr())
}

func Test_Parse_ShouldPreferSecretsFromEnv(t *testing.T) {
	t.Setenv(postgresPasswordEnv, "from-env")
	t.Setenv(mongoURIEnv, "mongodb://secret")

	s, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "from-env", s.Postgres().Password())
	assert.Equal(t, "mongodb://secret", s.Mongo().URI())
}

func Test_Parse_ShouldRejectUnknownStorage(t *testing.T) {
	_, err := Parse([]byte("storage:\n  type: redis\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("storage: ["))
	assert.Error(t, err)
}

func Test_New_ShouldReadPathFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  type: sqlite\nsqlite:\n  path: x.db\n"), 0o600))
	t.Setenv(configPathEnv, path)

	s, err := New()
	require.NoError(t, err)
	assert.Equal(t, "x.db", s.SQLite().Path())
}
