package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntOr(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "unset uses default", value: "", want: 24},
		{name: "valid value wins", value: "48", want: 48},
		{name: "negative parses as-is", value: "-1", want: -1},
		{name: "duration suffix rejected", value: "24h", want: 24},
		{name: "garbage rejected", value: "lots", want: 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TOKEN_TTL_HOURS", tt.value)
			assert.Equal(t, tt.want, intOr("TOKEN_TTL_HOURS", 24))
		})
	}
}

func TestLoadKeepsTTLUsableOnMalformedEnv(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DB", "homevista_test")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("TOKEN_TTL_HOURS", "24h")
	t.Setenv("BCRYPT_COST", "cheap")

	cfg := Load()
	assert.Equal(t, 24, cfg.TokenTTLHours, "tokens must not be issued pre-expired")
	assert.Equal(t, 10, cfg.BcryptCost)
}
