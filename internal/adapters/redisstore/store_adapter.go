package redisstore

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/zatekoja/servicemarket/internal/domain/storage"
	redisclient "github.com/zatekoja/servicemarket/internal/infrastructure/clients/redis"
	apperrors "github.com/zatekoja/servicemarket/pkg/errors"
)

// StoreAdapter implements the ordered key-value store port in Redis.
// Values live in a hash and every key is mirrored into a zero-score
// sorted set, so List can enumerate keys in lexicographic order with
// ZRANGEBYLEX.
type StoreAdapter struct {
	client    *redisclient.Client
	keysKey   string
	valuesKey string
}

// NewStoreAdapter creates a store adapter bound to one collection.
func NewStoreAdapter(client *redisclient.Client, collection string) storage.Store {
	return &StoreAdapter{
		client:    client,
		keysKey:   collection + ":keys",
		valuesKey: collection + ":values",
	}
}

// Put persists value under key, replacing any existing value.
func (a *StoreAdapter) Put(ctx context.Context, key string, value []byte) error {
	_, err := a.client.Client().TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, a.keysKey, redis.Z{Score: 0, Member: key})
		pipe.HSet(ctx, a.valuesKey, key, value)
		return nil
	})
	if err != nil {
		return apperrors.NewInternalError("failed to put record", err)
	}
	return nil
}

// Get returns the value stored under key.
func (a *StoreAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := a.client.Client().HGet(ctx, a.valuesKey, key).Bytes()
	if err == redis.Nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("record with id %s not found", key))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get record", err)
	}
	return value, nil
}

// Delete removes the value stored under key.
func (a *StoreAdapter) Delete(ctx context.Context, key string) error {
	removed, err := a.client.Client().HDel(ctx, a.valuesKey, key).Result()
	if err != nil {
		return apperrors.NewInternalError("failed to delete record", err)
	}
	if removed == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("record with id %s not found", key))
	}

	if err := a.client.Client().ZRem(ctx, a.keysKey, key).Err(); err != nil {
		return apperrors.NewInternalError("failed to delete record key", err)
	}
	return nil
}

// List returns all values in ascending key order.
func (a *StoreAdapter) List(ctx context.Context) ([][]byte, error) {
	keys, err := a.client.Client().ZRangeByLex(ctx, a.keysKey, &redis.ZRangeBy{
		Min: "-",
		Max: "+",
	}).Result()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list record keys", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	raw, err := a.client.Client().HMGet(ctx, a.valuesKey, keys...).Result()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list record values", err)
	}

	values := make([][]byte, 0, len(raw))
	for _, entry := range raw {
		if entry == nil {
			continue
		}
		if s, ok := entry.(string); ok {
			values = append(values, []byte(s))
		}
	}
	return values, nil
}
