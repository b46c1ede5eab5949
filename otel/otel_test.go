package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDisabled(t *testing.T) {
	shutdown, err := Init(context.Background(), Config{Enabled: false})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestValidateConfig(t *testing.T) {
	valid := Config{
		Enabled:     true,
		Endpoint:    "http://localhost:4318",
		ServiceName: "servinow-client",
		SampleRate:  1.0,
	}

	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"missing service name", func(c *Config) { c.ServiceName = "" }, "ServiceName"},
		{"missing endpoint", func(c *Config) { c.Endpoint = "" }, "Endpoint"},
		{"sample rate too high", func(c *Config) { c.SampleRate = 1.5 }, "SampleRate"},
		{"sample rate negative", func(c *Config) { c.SampleRate = -0.1 }, "SampleRate"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			err := validateConfig(cfg)
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tc.wantErr)
			}
		})
	}
}

func TestInitInvalidConfig(t *testing.T) {
	_, err := Init(context.Background(), Config{Enabled: true})
	assert.ErrorContains(t, err, "invalid configuration")
}
