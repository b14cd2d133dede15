package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIDList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []int64
	}{
		{name: "empty", input: "", expected: nil},
		{name: "single", input: "123456789", expected: []int64{123456789}},
		{name: "multiple with spaces", input: "1, 2 ,3", expected: []int64{1, 2, 3}},
		{name: "malformed entries skipped", input: "1,abc,3", expected: []int64{1, 3}},
		{name: "only malformed", input: "abc,def", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseIDList(tt.input))
		})
	}
}

func TestParseID(t *testing.T) {
	assert.Equal(t, int64(42), parseID("42"))
	assert.Equal(t, int64(42), parseID(" 42 "))
	assert.Equal(t, int64(0), parseID(""))
	assert.Equal(t, int64(0), parseID("abc"))
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Validate())

	cfg.BotToken = "123456:token"
	assert.NoError(t, cfg.Validate())
}

func TestEnvHelpers(t *testing.T) {
	cfg := &Config{GoEnv: "production"}
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsTest())

	cfg.GoEnv = "test"
	assert.False(t, cfg.IsProduction())
	assert.True(t, cfg.IsTest())
}
