package cache

import (
	"context"
	"testing"
	"time"

	"fast-food/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoop(t *testing.T) {
	var c Cache = Noop{}
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "menu:available", []string{"burger"}, time.Minute))

	var out []string
	hit, err := c.GetJSON(ctx, "menu:available", &out)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, out)
}

func TestNewRedis_UnreachableServer(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := NewRedis(ctx, utils.RedisConfig{Addr: "127.0.0.1:1"}, "fast-food:")
	assert.Error(t, err)
}

func TestRedisKeyPrefix(t *testing.T) {
	r := &Redis{prefix: "fast-food:"}
	assert.Equal(t, "fast-food:menu:available", r.key("menu:available"))
}
