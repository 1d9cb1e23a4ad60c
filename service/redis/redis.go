package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/lelongx/goapi/base/ctx"
)

// Forever is used as the expire argument when the key should not expire
const Forever = time.Duration(-1)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = redis.ErrNil
	// ErrNoTTL is returned by TTL when the key exists but has no expire
	ErrNoTTL = errors.New("key has no associated ttl")
	// ErrExpireNotExistOrTimeout is returned by Expire when the key does
	// not exist or the timeout could not be set
	ErrExpireNotExistOrTimeout = errors.New("key does not exist or the timeout could not be set")
	// ErrGapTime is returned when no pool is able to serve the command
	ErrGapTime = errors.New("no available redis pool")
)

// Service is the interface over a named redis pool
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	GetZip(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	SetZip(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, ks ...string) (int, error)
	Expire(context ctx.Ctx, key string, ttl time.Duration) error
	Incr(context ctx.Ctx, key string) (int64, error)
	Incrby(context ctx.Ctx, key string, val int) (int64, error)
	Exists(context ctx.Ctx, key string) (bool, error)
	TTL(context ctx.Ctx, key string) (int, error)
	GetConn() (redis.Conn, error)
	Name() string
}
