package cache

import (
	"context"
	"testing"

	"github.com/flexprice/playbill/internal/config"
	"github.com/flexprice/playbill/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestInMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCache(config.GetDefaultConfig(), logger.NewNopLogger())

	key := GenerateKey(PrefixPlay, "hamlet")
	assert.Equal(t, "play:v1::hamlet", key)

	_, found := c.Get(ctx, key)
	assert.False(t, found)

	c.Set(ctx, key, "Hamlet", 0)
	v, found := c.Get(ctx, key)
	assert.True(t, found)
	assert.Equal(t, "Hamlet", v)

	c.Set(ctx, GenerateKey(PrefixPlay, "as-like"), "As You Like It", 0)
	c.Set(ctx, GenerateKey(PrefixInvoice, "inv_1"), "BigCo", 0)
	c.DeleteByPrefix(ctx, PrefixPlay)

	_, found = c.Get(ctx, key)
	assert.False(t, found)
	_, found = c.Get(ctx, GenerateKey(PrefixInvoice, "inv_1"))
	assert.True(t, found)

	c.Flush(ctx)
	_, found = c.Get(ctx, GenerateKey(PrefixInvoice, "inv_1"))
	assert.False(t, found)
}

func TestInMemoryCacheDisabled(t *testing.T) {
	ctx := context.Background()
	cfg := config.GetDefaultConfig()
	cfg.Cache.Enabled = false
	c := NewInMemoryCache(cfg, logger.NewNopLogger())

	c.Set(ctx, "k", "v", 0)
	_, found := c.Get(ctx, "k")
	assert.False(t, found)
}
