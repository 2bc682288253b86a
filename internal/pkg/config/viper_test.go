package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewViperFromBytes(t *testing.T) {
	raw := []byte(`
app:
  server:
    cors: "http://localhost:4200,http://localhost:3000"
    http:
      address: ":8080"
      read_timeout_seconds: 15
    ratelimit:
      requests_per_second: 20.5
      burst: 40

instrument:
  enabled: true
`)

	cfg, err := NewViperFromBytes("yaml", raw)
	require.NoError(t, err)
	defer cfg.Close()

	assert.Equal(t, ":8080", cfg.GetString("app.server.http.address"))
	assert.Equal(t, 15*time.Second, cfg.GetSecond("app.server.http.read_timeout_seconds"))
	assert.Equal(t, 40, cfg.GetInt("app.server.ratelimit.burst"))
	assert.InDelta(t, 20.5, cfg.GetFloat64("app.server.ratelimit.requests_per_second"), 0.001)
	assert.True(t, cfg.GetBool("instrument.enabled"))
	assert.Equal(t,
		[]string{"http://localhost:4200", "http://localhost:3000"},
		cfg.GetArray("app.server.cors"),
	)
	assert.Empty(t, cfg.GetArray("app.server.missing"))
}

func TestNewViperFromBytes_Invalid(t *testing.T) {
	_, err := NewViperFromBytes("", []byte("a: 1"))
	assert.Error(t, err)

	_, err = NewViperFromBytes("yaml", []byte("a: [unclosed"))
	assert.Error(t, err)
}
