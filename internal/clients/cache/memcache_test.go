package cache

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	hosts []string
}

func (c testConfig) Hosts() []string   { return c.hosts }
func (c testConfig) TTLSeconds() int32 { return 60 }

func newTestClient(t *testing.T) *MemcacheClient {
	t.Helper()
	hosts := os.Getenv("MEMCACHED_HOSTS")
	if hosts == "" {
		t.Skip("MEMCACHED_HOSTS is not set")
	}
	mc, err := NewMemcache(testConfig{hosts: strings.Split(hosts, ",")})
	require.NoError(t, err)
	return mc
}

func Test_GenerationKey_ShouldBePerUser(t *testing.T) {
	assert.Equal(t, "gen:42", generationKey(42))
	assert.NotEqual(t, generationKey(1), generationKey(11))
}

func Test_Memcache_ShouldMissUnknownKeys(t *testing.T) {
	mc := newTestClient(t)

	_, ok, err := mc.Get("stats:test:missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func Test_Memcache_BumpShouldChangeGeneration(t *testing.T) {
	mc := newTestClient(t)
	userID := int64(987654321)

	before, err := mc.Generation(userID)
	require.NoError(t, err)
	again, err := mc.Generation(userID)
	require.NoError(t, err)
	assert.Equal(t, before, again)

	require.NoError(t, mc.Bump(userID))
	after, err := mc.Generation(userID)
	require.NoError(t, err)
	assert.NotEqual(t, before, after)

	require.NoError(t, mc.Set("stats:test:key", []byte("v")))
	v, ok, err := mc.Get("stats:test:key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), v)
}
