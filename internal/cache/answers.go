package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/nyaya-ai/legal-engine/internal/match"
)

// AnswerCache stores engine results keyed by query text. Cache failures are
// swallowed: the engine is cheap enough that a broken cache must never break
// answering.
type AnswerCache struct {
	client Client
	ttl    time.Duration
}

// NewAnswerCache wraps a Client with answer serialization and a default TTL.
func NewAnswerCache(client Client, ttl time.Duration) *AnswerCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &AnswerCache{client: client, ttl: ttl}
}

// Get returns the cached result for query, or ok=false on a miss or error.
func (a *AnswerCache) Get(ctx context.Context, query string) (match.Result, bool) {
	data, err := a.client.Get(ctx, answerKey(query))
	if err != nil {
		return match.Result{}, false
	}
	var res match.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return match.Result{}, false
	}
	return res, true
}

// Put stores the result for query. Errors are dropped.
func (a *AnswerCache) Put(ctx context.Context, query string, res match.Result) {
	data, err := json.Marshal(res)
	if err != nil {
		return
	}
	_ = a.client.Set(ctx, answerKey(query), data, a.ttl)
}

func answerKey(query string) string {
	sum := sha256.Sum256([]byte(query))
	return "answer:" + hex.EncodeToString(sum[:16])
}
