package memcache_fx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"tripwise/internal/config"
	"tripwise/pkg/utils"
)

func TestPurgeInterval(t *testing.T) {
	assert.Equal(t, 3*time.Hour, purgeInterval(6*time.Hour))
	assert.Equal(t, time.Minute, purgeInterval(30*time.Second))
	assert.Equal(t, time.Minute, purgeInterval(0))
}

func TestEstimateCacheLifecycle(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{AI: config.AIConfig{EstimateCacheTTL: time.Hour}}

	cache := provideEstimateCache(lc, cfg)
	require.NotNil(t, cache)

	require.NoError(t, lc.Start(context.Background()))
	cache.Set("hue|3|1|USD", utils.TripEstimate{SuggestedBudget: 300})
	_, ok := cache.Get("hue|3|1|USD")
	assert.True(t, ok)
	require.NoError(t, lc.Stop(context.Background()))
}
