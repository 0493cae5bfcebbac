package progression

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-progression/internal/redis"
)

const (
	// Key pattern: progression:mobile:{id}
	mobileKeyPrefix = "progression:mobile:"
	// Set of every stored mobile id
	mobileIndexKey = "progression:mobiles"
)

// RedisConfig contains configuration for the Redis mobile repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedis creates a new Redis-backed mobile repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func mobileKey(id string) string {
	return mobileKeyPrefix + id
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateMobile(input.Mobile); err != nil {
		return nil, err
	}

	m := input.Mobile
	key := mobileKey(m.ID)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.Newf(errors.CodeAlreadyExists, "mobile with ID %s already exists", m.ID)
	}

	now := r.clock.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now

	data, err := json.Marshal(m)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal mobile")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, mobileIndexKey, m.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create mobile")
	}

	return &CreateOutput{Mobile: m}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errMobileIDEmpty)
	}

	result, err := r.client.Get(ctx, mobileKey(input.ID)).Bytes()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("mobile with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get mobile")
	}

	m, err := decodeMobile(result)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Mobile: m}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateMobile(input.Mobile); err != nil {
		return nil, err
	}

	m := input.Mobile
	key := mobileKey(m.ID)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("mobile with ID %s not found", m.ID)
	}

	m.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(m)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal mobile")
	}

	// XX guards against a concurrent delete between the check and the write
	ok, err := r.client.SetXX(ctx, key, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update mobile")
	}
	if !ok {
		return nil, errors.NotFoundf("mobile with ID %s not found", m.ID)
	}

	return &UpdateOutput{Mobile: m}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errMobileIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, mobileKey(input.ID))
	pipe.SRem(ctx, mobileIndexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete mobile")
	}
	if del.Val() == 0 {
		return nil, errors.NotFoundf("mobile with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, mobileIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list mobile ids")
	}
	if len(ids) == 0 {
		return &ListOutput{}, nil
	}
	sort.Strings(ids)

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = mobileKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load mobiles")
	}

	out := &ListOutput{Mobiles: make([]*entities.Mobile, 0, len(values))}
	for _, v := range values {
		// index entries can outlive their key only if a delete was interrupted
		raw, ok := v.(string)
		if !ok {
			continue
		}

		m, err := decodeMobile([]byte(raw))
		if err != nil {
			return nil, err
		}
		if matchesKind(m, input.Kind) {
			out.Mobiles = append(out.Mobiles, m)
		}
	}

	return out, nil
}

func decodeMobile(data []byte) (*entities.Mobile, error) {
	var m entities.Mobile
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal mobile")
	}
	return &m, nil
}
