package repository

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/JekaTruck/Jeka-Truck/database"
	"github.com/JekaTruck/Jeka-Truck/models"
)

const sessionKey = "admin_user"

// SessionRepository persists the currently authenticated user under the
// "admin_user" key. A login while already logged in simply overwrites it.
type SessionRepository struct {
	kv database.KV
}

func NewSessionRepository(kv database.KV) *SessionRepository {
	return &SessionRepository{kv: kv}
}

// Restore returns the persisted session user, or nil when none exists.
// Malformed data is treated as absent and the corrupt entry is cleared.
func (r *SessionRepository) Restore(ctx context.Context) (*models.User, error) {
	raw, err := r.kv.Get(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, database.ErrNoKey) {
			return nil, nil
		}
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		zap.L().Warn("corrupt session data, clearing", zap.Error(err))
		if delErr := r.kv.Del(ctx, sessionKey); delErr != nil {
			return nil, delErr
		}
		return nil, nil
	}
	return &user, nil
}

func (r *SessionRepository) Persist(ctx context.Context, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, sessionKey, string(data))
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	return r.kv.Del(ctx, sessionKey)
}
