package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedWindow_AllowsUpToLimit(t *testing.T) {
	limiter := NewFixedWindow(&Config{Limit: 3, Window: time.Minute})

	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.False(t, limiter.Allow("1.2.3.4"))
}

func TestFixedWindow_KeysAreIndependent(t *testing.T) {
	limiter := NewFixedWindow(&Config{Limit: 1, Window: time.Minute})

	assert.True(t, limiter.Allow("alice"))
	assert.False(t, limiter.Allow("alice"))
	assert.True(t, limiter.Allow("bob"))
}

func TestFixedWindow_ResetsAfterWindow(t *testing.T) {
	limiter := NewFixedWindow(&Config{Limit: 1, Window: time.Minute})

	current := time.Now()
	limiter.now = func() time.Time { return current }

	assert.True(t, limiter.Allow("key"))
	assert.False(t, limiter.Allow("key"))

	current = current.Add(61 * time.Second)
	assert.True(t, limiter.Allow("key"))
}

func TestFixedWindow_ZeroLimitMeansUnlimited(t *testing.T) {
	limiter := NewFixedWindow(&Config{Limit: 0, Window: time.Minute})

	for i := 0; i < 100; i++ {
		assert.True(t, limiter.Allow("key"))
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 10, cfg.Limit)
	assert.Equal(t, time.Minute, cfg.Window)
}
