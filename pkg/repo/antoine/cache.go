package antoine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	r "github.com/redis/go-redis/v9"
	"github.com/scienceol/psat/pkg/middleware/logger"
	"github.com/scienceol/psat/pkg/repo"
	"github.com/scienceol/psat/pkg/repo/model"
)

const cacheKeyPrefix = "psat:antoine:"

var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

// Cache is a read-through redis cache in front of another provider. Only
// successful lookups are stored; errors from the delegate pass through as is.
type Cache struct {
	next   repo.AntoineProvider
	client *r.Client
	ttl    time.Duration
}

func NewCache(next repo.AntoineProvider, client *r.Client, ttl time.Duration) *Cache {
	return &Cache{next: next, client: client, ttl: ttl}
}

func cacheKey(name string, temperature float64) string {
	return fmt.Sprintf("%s%s:%s", cacheKeyPrefix, NormalizeName(name),
		strconv.FormatFloat(temperature, 'g', -1, 64))
}

func (c *Cache) GetAntoineCoef(ctx context.Context, name string, temperature float64) (*model.AntoineCoef, error) {
	if c.client == nil {
		return c.next.GetAntoineCoef(ctx, name, temperature)
	}

	key := cacheKey(name, temperature)
	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		coef := &model.AntoineCoef{}
		decodeErr := json.Unmarshal(data, coef)
		if decodeErr == nil {
			return coef, nil
		}
		logger.Warnf(ctx, "antoine cache decode key: %s err: %+v", key, decodeErr)
	case !errors.Is(err, r.Nil):
		logger.Warnf(ctx, "antoine cache get key: %s err: %+v", key, err)
	}

	coef, err := c.next.GetAntoineCoef(ctx, name, temperature)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(coef); err != nil {
		logger.Warnf(ctx, "antoine cache encode err: %+v", err)
	} else if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logger.Warnf(ctx, "antoine cache set key: %s err: %+v", key, err)
	}
	return coef, nil
}

// Invalidate drops every cached lookup for a substance.
func (c *Cache) Invalidate(ctx context.Context, name string) error {
	if c.client == nil {
		return nil
	}
	match := cacheKeyPrefix + globEscaper.Replace(NormalizeName(name)) + ":*"
	iter := c.client.Scan(ctx, 0, match, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
