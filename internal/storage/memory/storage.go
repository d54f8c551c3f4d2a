package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/nucleobets/backend/internal/model"
	"github.com/nucleobets/backend/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	users         map[model.UserID]*model.User
	usernameIndex map[string]model.UserID
	emailIndex    map[string]model.UserID
	analyses      map[model.AnalysisID]*model.Analysis
	tips          map[model.TipID]*model.ValuableTip
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:         make(map[model.UserID]*model.User),
		usernameIndex: make(map[string]model.UserID),
		emailIndex:    make(map[string]model.UserID),
		analyses:      make(map[model.AnalysisID]*model.Analysis),
		tips:          make(map[model.TipID]*model.ValuableTip),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.users[user.ID]; ok {
		// Username and email are immutable in practice, but keep the
		// indexes consistent if they ever change
		if existing.Username != user.Username {
			delete(s.usernameIndex, existing.Username)
		}
		if existing.Email != "" && existing.Email != user.Email {
			delete(s.emailIndex, existing.Email)
		}
	}
	s.users[user.ID] = user
	s.usernameIndex[user.Username] = user.ID
	if user.Email != "" {
		s.emailIndex[user.Email] = user.ID
	}
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.emailIndex[email]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) ListUsers(ctx context.Context) ([]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]*model.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

func (s *Storage) DeleteUser(ctx context.Context, id model.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return model.ErrUserNotFound
	}
	delete(s.users, id)
	delete(s.usernameIndex, user.Username)
	if user.Email != "" {
		delete(s.emailIndex, user.Email)
	}
	return nil
}

// Analysis operations

func (s *Storage) SaveAnalysis(ctx context.Context, analysis *model.Analysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses[analysis.ID] = analysis
	return nil
}

func (s *Storage) GetAnalysis(ctx context.Context, id model.AnalysisID) (*model.Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	analysis, ok := s.analyses[id]
	if !ok {
		return nil, model.ErrAnalysisNotFound
	}
	return analysis, nil
}

func (s *Storage) ListAnalyses(ctx context.Context, limit int) ([]*model.Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	analyses := make([]*model.Analysis, 0, len(s.analyses))
	for _, a := range s.analyses {
		analyses = append(analyses, a)
	}
	sort.Slice(analyses, func(i, j int) bool {
		return analyses[i].CreatedAt.After(analyses[j].CreatedAt)
	})
	if limit > 0 && len(analyses) > limit {
		analyses = analyses[:limit]
	}
	return analyses, nil
}

func (s *Storage) DeleteAnalysis(ctx context.Context, id model.AnalysisID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.analyses[id]; !ok {
		return model.ErrAnalysisNotFound
	}
	delete(s.analyses, id)
	return nil
}

// Valuable tip operations

func (s *Storage) SaveTip(ctx context.Context, tip *model.ValuableTip) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tips[tip.ID] = tip
	return nil
}

func (s *Storage) GetTip(ctx context.Context, id model.TipID) (*model.ValuableTip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tip, ok := s.tips[id]
	if !ok {
		return nil, model.ErrTipNotFound
	}
	return tip, nil
}

func (s *Storage) ListTips(ctx context.Context, limit int) ([]*model.ValuableTip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tips := make([]*model.ValuableTip, 0, len(s.tips))
	for _, t := range s.tips {
		tips = append(tips, t)
	}
	sort.Slice(tips, func(i, j int) bool {
		return tips[i].CreatedAt.After(tips[j].CreatedAt)
	})
	if limit > 0 && len(tips) > limit {
		tips = tips[:limit]
	}
	return tips, nil
}

func (s *Storage) DeleteTip(ctx context.Context, id model.TipID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tips[id]; !ok {
		return model.ErrTipNotFound
	}
	delete(s.tips, id)
	return nil
}
