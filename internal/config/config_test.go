package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("FINTRACK_TEST_STR", "value")
	assert.Equal(t, "value", GetEnv("FINTRACK_TEST_STR", "fallback"))

	t.Setenv("FINTRACK_TEST_EMPTY", "")
	assert.Equal(t, "fallback", GetEnv("FINTRACK_TEST_EMPTY", "fallback"), "empty counts as unset")

	assert.Equal(t, "fallback", GetEnv("FINTRACK_TEST_MISSING", "fallback"))
}

func TestGetIntEnv(t *testing.T) {
	t.Setenv("FINTRACK_TEST_INT", "42")
	assert.Equal(t, 42, GetIntEnv("FINTRACK_TEST_INT", 7))

	t.Setenv("FINTRACK_TEST_INT", "not-a-number")
	assert.Equal(t, 7, GetIntEnv("FINTRACK_TEST_INT", 7))

	assert.Equal(t, 7, GetIntEnv("FINTRACK_TEST_INT_MISSING", 7))
}

func TestGetDurationEnv(t *testing.T) {
	t.Setenv("FINTRACK_TEST_DUR", "90s")
	assert.Equal(t, 90*time.Second, GetDurationEnv("FINTRACK_TEST_DUR", time.Hour))

	t.Setenv("FINTRACK_TEST_DUR", "soon")
	assert.Equal(t, time.Hour, GetDurationEnv("FINTRACK_TEST_DUR", time.Hour))

	assert.Equal(t, time.Hour, GetDurationEnv("FINTRACK_TEST_DUR_MISSING", time.Hour))
}

func TestIsProduction(t *testing.T) {
	t.Setenv("ENV", "production")
	assert.True(t, IsProduction())

	t.Setenv("ENV", "development")
	assert.False(t, IsProduction())

	t.Setenv("ENV", "")
	assert.False(t, IsProduction(), "defaults to development")
}
