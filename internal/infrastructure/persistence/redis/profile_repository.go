// Package redis provides Redis-backed persistence for preference models.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/nutricoach/engine/internal/domain/profile"
	"github.com/nutricoach/engine/internal/infrastructure/config"
	"github.com/nutricoach/engine/pkg/errors"
)

const profileKeyPrefix = "profile:"

// maxTxRetries bounds the optimistic retry loop when a concurrent writer
// touches the same key mid-transaction.
const maxTxRetries = 3

// NewClient creates a Redis client from configuration and verifies the
// connection.
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (redis.UniversalClient, error) {
	if cfg == nil {
		return nil, fmt.Errorf("redis config cannot be nil")
	}

	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:    []string{cfg.Addr()},
		Password: cfg.Password,
		DB:       cfg.Database,
		PoolSize: cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Redis connection established", zap.String("addr", cfg.Addr()))
	return client, nil
}

// ProfileRepository stores preference models as JSON documents keyed by
// user id, with version checks for concurrent updates.
type ProfileRepository struct {
	client redis.UniversalClient
	logger *zap.Logger
}

// NewProfileRepository creates a Redis-backed profile repository.
func NewProfileRepository(client redis.UniversalClient, logger *zap.Logger) *ProfileRepository {
	return &ProfileRepository{
		client: client,
		logger: logger.Named("profile-repository"),
	}
}

func profileKey(userID uuid.UUID) string {
	return profileKeyPrefix + userID.String()
}

// FindByUser loads the preference model for a user.
func (r *ProfileRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*profile.PreferenceModel, error) {
	data, err := r.client.Get(ctx, profileKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, errors.NewProfileNotFoundError(userID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load preference model")
	}

	var model profile.PreferenceModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, errors.Wrap(err, "failed to decode preference model")
	}
	return &model, nil
}

// Save stores the model unconditionally.
func (r *ProfileRepository) Save(ctx context.Context, model profile.PreferenceModel) error {
	data, err := json.Marshal(model)
	if err != nil {
		return errors.Wrap(err, "failed to encode preference model")
	}
	if err := r.client.Set(ctx, profileKey(model.UserID), data, 0).Err(); err != nil {
		return errors.Wrap(err, "failed to store preference model")
	}
	return nil
}

// SaveWithVersion stores the model only if the stored version still matches
// expectedVersion. A zero expectedVersion asserts the profile does not exist
// yet.
func (r *ProfileRepository) SaveWithVersion(ctx context.Context, model profile.PreferenceModel, expectedVersion int64) error {
	data, err := json.Marshal(model)
	if err != nil {
		return errors.Wrap(err, "failed to encode preference model")
	}
	key := profileKey(model.UserID)

	txn := func(tx *redis.Tx) error {
		stored, err := tx.Get(ctx, key).Bytes()
		switch {
		case err == redis.Nil:
			if expectedVersion != 0 {
				return errors.NewVersionConflictError(model.UserID.String(), expectedVersion)
			}
		case err != nil:
			return errors.Wrap(err, "failed to load preference model")
		default:
			var current profile.PreferenceModel
			if err := json.Unmarshal(stored, &current); err != nil {
				return errors.Wrap(err, "failed to decode preference model")
			}
			if current.Version != expectedVersion {
				return errors.NewVersionConflictError(model.UserID.String(), expectedVersion)
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txn, key)
		if err == redis.TxFailedErr {
			r.logger.Debug("Profile write raced, retrying",
				zap.String("user_id", model.UserID.String()),
				zap.Int("attempt", i+1))
			continue
		}
		return err
	}
	return errors.NewVersionConflictError(model.UserID.String(), expectedVersion)
}
