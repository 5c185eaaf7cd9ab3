package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/jimorie/forbidden-lands-dice/internal/dice"
)

const keyPrefix = "roll:"

// RedisStore keeps snapshots as JSON strings with an expiry.
type RedisStore struct {
	pool *redis.Pool
	ttl  time.Duration
}

// NewRedisPool dials url lazily with a small idle pool.
func NewRedisPool(url string) *redis.Pool {
	return &redis.Pool{
		MaxIdle:     10,
		IdleTimeout: 60 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.DialURL(url)
		},
	}
}

// NewRedisStore stores snapshots in pool for ttl (<=0 => no expiry).
func NewRedisStore(pool *redis.Pool, ttl time.Duration) *RedisStore {
	return &RedisStore{pool: pool, ttl: ttl}
}

func closeConn(ctx context.Context, conn redis.Conn) {
	if err := conn.Close(); err != nil {
		slog.WarnContext(ctx, "error closing redis connection", "err", err)
	}
}

// Ping checks that redis is reachable.
func (s *RedisStore) Ping(ctx context.Context) error {
	conn := s.pool.Get()
	defer closeConn(ctx, conn)
	if _, err := conn.Do("PING"); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// expiryArgs is the SET expiry for ttl in milliseconds, at least 1, since
// redis rejects a zero expiry.
func expiryArgs(ttl time.Duration) redis.Args {
	if ttl <= 0 {
		return nil
	}
	return redis.Args{"PX", max(int64(1), ttl.Milliseconds())}
}

func (s *RedisStore) Put(ctx context.Context, id string, snap dice.Snapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode roll %s: %w", id, err)
	}
	conn := s.pool.Get()
	defer closeConn(ctx, conn)

	args := redis.Args{keyPrefix + id, b}.Add(expiryArgs(s.ttl)...)
	if _, err := conn.Do("SET", args...); err != nil {
		return fmt.Errorf("store roll %s: %w", id, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (dice.Snapshot, error) {
	conn := s.pool.Get()
	defer closeConn(ctx, conn)

	b, err := redis.Bytes(conn.Do("GET", keyPrefix+id))
	if errors.Is(err, redis.ErrNil) {
		return dice.Snapshot{}, ErrNotFound
	}
	if err != nil {
		return dice.Snapshot{}, fmt.Errorf("load roll %s: %w", id, err)
	}
	var snap dice.Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return dice.Snapshot{}, fmt.Errorf("decode roll %s: %w", id, err)
	}
	return snap, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	conn := s.pool.Get()
	defer closeConn(ctx, conn)
	if _, err := conn.Do("DEL", keyPrefix+id); err != nil {
		return fmt.Errorf("delete roll %s: %w", id, err)
	}
	return nil
}
