package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestConnect_ServidorInalcanzable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := Connect(ctx, "127.0.0.1:1", "", 0)
	assert.Error(t, err)
}

func TestGet_ErrorDeConexion(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 200 * time.Millisecond})
	defer client.Close()
	c := NewRedisCache(client)

	b, err := c.Get(context.Background(), "code:x")
	assert.Error(t, err)
	assert.Nil(t, b)
	assert.Error(t, c.Set(context.Background(), "code:x", []byte("png"), time.Minute))
}
