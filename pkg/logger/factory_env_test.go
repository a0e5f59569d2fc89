package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kyckit/pkg/logger"
)

func TestWithDevelopment(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithDevelopment("svc"), logger.WithOutput(buf))
	log.Debug("msg")
	output := buf.String()
	assert.Contains(t, output, "DEBUG")
	assert.Contains(t, output, "service=svc")
	assert.Contains(t, output, "env=development")
}

func TestWithProduction(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithProduction("svc"), logger.WithOutput(buf))
	log.Debug("dropped")
	assert.Empty(t, buf.String())

	log.Info("msg")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "svc", entry["service"])
	assert.Equal(t, "production", entry["env"])
}

func TestWithEnvironment(t *testing.T) {
	tests := []struct {
		env      string
		expected string
	}{
		{env: "prod", expected: "production"},
		{env: "staging", expected: "staging"},
		{env: "dev", expected: "development"},
		{env: "", expected: "development"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			buf := &bytes.Buffer{}
			log := logger.New(logger.WithEnvironment(tt.env, "kyc"), logger.WithOutput(buf), logger.WithJSONFormatter())
			log.Warn("msg")
			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.expected, entry["env"])
			assert.Equal(t, "kyc", entry["service"])
		})
	}
}
