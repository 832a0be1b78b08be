package internal

import (
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestNewFeedCache_WithoutRedis(t *testing.T) {
	assert.Nil(t, newFeedCache(nil))
}

func TestNewFeedCache_WithRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer client.Close()

	assert.NotNil(t, newFeedCache(client))
}
