package mock

import (
	"context"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// Redis is a client connected to an in-process Redis server.
type Redis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// NewRedis starts an isolated in-process Redis server.
func NewRedis() *Redis {
	miniRedis, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	conn := redis.NewClient(
		&redis.Options{
			Addr: miniRedis.Addr(),
		},
	)

	return &Redis{Client: conn, Server: miniRedis}
}

// Clear flushes every key.
func (r *Redis) Clear() error {
	return r.Client.FlushAll(context.TODO()).Err()
}

// Close shuts the client and server down.
func (r *Redis) Close() {
	_ = r.Client.Close()
	r.Server.Close()
}
