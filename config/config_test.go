package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	c := map[string]string{"PORT": "9090", "EMPTY": ""}

	assert.Equal(t, "9090", GetString(c, "PORT", "8080"))
	assert.Equal(t, "", GetString(c, "EMPTY", "fallback"))
	assert.Equal(t, "fallback", GetString(c, "MISSING", "fallback"))
	assert.Equal(t, "fallback", GetString(nil, "PORT", "fallback"))
}

func TestGetInt(t *testing.T) {
	c := map[string]string{"TTL": "48", "BAD": "not-a-number"}

	assert.Equal(t, 48, GetInt(c, "TTL", 24))
	assert.Equal(t, 24, GetInt(c, "BAD", 24))
	assert.Equal(t, 24, GetInt(c, "MISSING", 24))
	assert.Equal(t, 24, GetInt(nil, "TTL", 24))
}

func TestGetBool(t *testing.T) {
	c := map[string]string{"ON": "true", "OFF": "0", "BAD": "maybe"}

	assert.True(t, GetBool(c, "ON", false))
	assert.False(t, GetBool(c, "OFF", true))
	assert.True(t, GetBool(c, "BAD", true))
	assert.False(t, GetBool(c, "MISSING", false))
	assert.True(t, GetBool(nil, "MISSING", true))
}

func TestSplit(t *testing.T) {
	key, value := split("DATABASE_URL=postgres://localhost/app")
	assert.Equal(t, "DATABASE_URL", key)
	assert.Equal(t, "postgres://localhost/app", value)

	key, value = split("FLAG")
	assert.Equal(t, "FLAG", key)
	assert.Equal(t, "", value)

	key, value = split("WITH_EQUALS=a=b=c")
	assert.Equal(t, "WITH_EQUALS", key)
	assert.Equal(t, "a=b=c", value)
}
