package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/nucleobets/backend/internal/model"
	"github.com/nucleobets/backend/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Documents are stored as JSON values; secondary lookups (username, email)
// and sorted listings go through index keys kept in sync via pipelines.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	// Drop stale secondary indexes if username/email changed
	old, err := s.GetUser(ctx, user.ID)
	if err != nil && !errors.Is(err, model.ErrUserNotFound) {
		return err
	}

	pipe := s.client.Pipeline()
	if old != nil {
		if old.Username != user.Username {
			pipe.Del(ctx, usernameIndexKey(old.Username))
		}
		if old.Email != "" && old.Email != user.Email {
			pipe.Del(ctx, emailIndexKey(old.Email))
		}
	}
	pipe.Set(ctx, userKey(user.ID), data, 0)
	pipe.Set(ctx, usernameIndexKey(user.Username), string(user.ID), 0)
	if user.Email != "" {
		pipe.Set(ctx, emailIndexKey(user.Email), string(user.ID), 0)
	}
	pipe.ZAdd(ctx, usersIndexKey(), redis.Z{
		Score:  float64(user.CreatedAt.UnixNano()),
		Member: string(user.ID),
	})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	idStr, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	return s.GetUser(ctx, model.UserID(idStr))
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	idStr, err := s.client.Get(ctx, emailIndexKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	return s.GetUser(ctx, model.UserID(idStr))
}

func (s *Storage) ListUsers(ctx context.Context) ([]*model.User, error) {
	ids, err := s.client.ZRange(ctx, usersIndexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.User{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = userKey(model.UserID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	users := make([]*model.User, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // User was deleted under the index
		}
		var user model.User
		if err := json.Unmarshal([]byte(val.(string)), &user); err != nil {
			continue // Skip invalid data
		}
		users = append(users, &user)
	}

	return users, nil
}

func (s *Storage) DeleteUser(ctx context.Context, id model.UserID) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, userKey(id))
	pipe.Del(ctx, usernameIndexKey(user.Username))
	if user.Email != "" {
		pipe.Del(ctx, emailIndexKey(user.Email))
	}
	pipe.ZRem(ctx, usersIndexKey(), string(id))
	_, err = pipe.Exec(ctx)
	return err
}

// Analysis operations

func (s *Storage) SaveAnalysis(ctx context.Context, analysis *model.Analysis) error {
	data, err := json.Marshal(analysis)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, analysisKey(analysis.ID), data, 0)
	pipe.ZAdd(ctx, analysesIndexKey(), redis.Z{
		Score:  float64(analysis.CreatedAt.UnixNano()),
		Member: string(analysis.ID),
	})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetAnalysis(ctx context.Context, id model.AnalysisID) (*model.Analysis, error) {
	data, err := s.client.Get(ctx, analysisKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAnalysisNotFound
		}
		return nil, err
	}

	var analysis model.Analysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (s *Storage) ListAnalyses(ctx context.Context, limit int) ([]*model.Analysis, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}

	// Newest first
	ids, err := s.client.ZRevRange(ctx, analysesIndexKey(), 0, stop).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.Analysis{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = analysisKey(model.AnalysisID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	analyses := make([]*model.Analysis, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var analysis model.Analysis
		if err := json.Unmarshal([]byte(val.(string)), &analysis); err != nil {
			continue
		}
		analyses = append(analyses, &analysis)
	}

	return analyses, nil
}

func (s *Storage) DeleteAnalysis(ctx context.Context, id model.AnalysisID) error {
	deleted, err := s.client.Del(ctx, analysisKey(id)).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return model.ErrAnalysisNotFound
	}
	return s.client.ZRem(ctx, analysesIndexKey(), string(id)).Err()
}

// Valuable tip operations

func (s *Storage) SaveTip(ctx context.Context, tip *model.ValuableTip) error {
	data, err := json.Marshal(tip)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, tipKey(tip.ID), data, 0)
	pipe.ZAdd(ctx, tipsIndexKey(), redis.Z{
		Score:  float64(tip.CreatedAt.UnixNano()),
		Member: string(tip.ID),
	})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetTip(ctx context.Context, id model.TipID) (*model.ValuableTip, error) {
	data, err := s.client.Get(ctx, tipKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrTipNotFound
		}
		return nil, err
	}

	var tip model.ValuableTip
	if err := json.Unmarshal(data, &tip); err != nil {
		return nil, err
	}
	return &tip, nil
}

func (s *Storage) ListTips(ctx context.Context, limit int) ([]*model.ValuableTip, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}

	ids, err := s.client.ZRevRange(ctx, tipsIndexKey(), 0, stop).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.ValuableTip{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = tipKey(model.TipID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	tips := make([]*model.ValuableTip, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var tip model.ValuableTip
		if err := json.Unmarshal([]byte(val.(string)), &tip); err != nil {
			continue
		}
		tips = append(tips, &tip)
	}

	return tips, nil
}

func (s *Storage) DeleteTip(ctx context.Context, id model.TipID) error {
	deleted, err := s.client.Del(ctx, tipKey(id)).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return model.ErrTipNotFound
	}
	return s.client.ZRem(ctx, tipsIndexKey(), string(id)).Err()
}
