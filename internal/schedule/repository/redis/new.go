package redis

import (
	"context"
	"fmt"

	"daily-planner/internal/schedule/repository"
	"daily-planner/pkg/log"

	goredis "github.com/go-redis/redis/v8"
)

const (
	// DefaultKey is the key holding the JSON-encoded schedule state.
	DefaultKey = "planner:schedule:state"

	// maxTxRetries bounds optimistic retries when another writer touches the key.
	maxTxRetries = 5
)

type implRepository struct {
	client *goredis.Client
	key    string
	l      log.Logger

	// beforeCommit runs inside the WATCH callback after the state is read. Nil in production.
	beforeCommit func(ctx context.Context)
}

// New creates a Redis-backed Repository. The lock rule is enforced with WATCH/MULTI,
// so several processes sharing one Redis still accept at most two submissions.
func New(client *goredis.Client, key string, l log.Logger) repository.Repository {
	if client == nil {
		panic("schedule/repository/redis: client is required")
	}
	if key == "" {
		key = DefaultKey
	}
	return &implRepository{client: client, key: key, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("schedule/repository/redis.%s", method)
}
