package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
)

var _ port.DraftStorePort = (*DraftStore)(nil)

type draftEntry struct {
	mu      sync.Mutex
	w       *domain.SubmissionWorkflow
	deleted bool
}

// DraftStore хранит формы подачи объявлений. Операции над одним черновиком
// выполняются строго по очереди, разные черновики друг друга не блокируют.
type DraftStore struct {
	mu     sync.Mutex
	drafts map[string]*draftEntry
}

func NewDraftStore() *DraftStore {
	return &DraftStore{drafts: make(map[string]*draftEntry)}
}

func (s *DraftStore) Create(ctx context.Context, w *domain.SubmissionWorkflow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.drafts[w.ID()]; exists {
		return fmt.Errorf("draft %s already exists", w.ID())
	}
	s.drafts[w.ID()] = &draftEntry{w: w}
	return nil
}

func (s *DraftStore) entry(id string) *draftEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drafts[id]
}

func (s *DraftStore) Update(ctx context.Context, id string, fn func(w *domain.SubmissionWorkflow) error) error {
	e := s.entry(id)
	if e == nil {
		return domain.ErrDraftNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.deleted {
		return domain.ErrDraftNotFound
	}
	return fn(e.w)
}

func (s *DraftStore) Delete(ctx context.Context, id string) error {
	e := s.entry(id)
	if e == nil {
		return domain.ErrDraftNotFound
	}

	e.mu.Lock()
	e.deleted = true
	e.mu.Unlock()

	s.mu.Lock()
	delete(s.drafts, id)
	s.mu.Unlock()
	return nil
}

// Len - количество открытых черновиков.
func (s *DraftStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}

// PurgeIdle удаляет черновики, которые не менялись с момента before.
func (s *DraftStore) PurgeIdle(before time.Time) int {
	s.mu.Lock()
	candidates := make(map[string]*draftEntry, len(s.drafts))
	for id, e := range s.drafts {
		candidates[id] = e
	}
	s.mu.Unlock()

	purged := 0
	for id, e := range candidates {
		e.mu.Lock()
		idle := !e.deleted && e.w.UpdatedAt().Before(before)
		if idle {
			e.deleted = true
		}
		e.mu.Unlock()

		if idle {
			s.mu.Lock()
			delete(s.drafts, id)
			s.mu.Unlock()
			purged++
		}
	}
	return purged
}

// RunJanitor периодически удаляет брошенные черновики. Блокируется до отмены контекста.
func (s *DraftStore) RunJanitor(ctx context.Context, interval, ttl time.Duration, logger port.LoggerPort) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Draft janitor stopped", nil)
			return
		case now := <-ticker.C:
			if n := s.PurgeIdle(now.Add(-ttl)); n > 0 {
				logger.Info("Purged idle submission drafts", port.Fields{"count": n, "remaining": s.Len()})
			}
		}
	}
}
