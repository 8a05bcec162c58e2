package tracing

import (
	"testing"

	"github.com/opentracing/opentracing-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	service string
	agent   string
}

func (c testConfig) ServiceName() string   { return c.service }
func (c testConfig) AgentHostPort() string { return c.agent }

func Test_Init_ShouldStayNoopWithoutServiceName(t *testing.T) {
	closer, err := Init(testConfig{})
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
	assert.IsType(t, opentracing.NoopTracer{}, opentracing.GlobalTracer())
}

func Test_Init_ShouldInstallJaegerTracer(t *testing.T) {
	prev := opentracing.GlobalTracer()
	defer opentracing.SetGlobalTracer(prev)

	closer, err := Init(testConfig{service: "expenses-test", agent: "127.0.0.1:6831"})
	require.NoError(t, err)
	defer closer.Close()

	_, isNoop := opentracing.GlobalTracer().(opentracing.NoopTracer)
	assert.False(t, isNoop)
}
