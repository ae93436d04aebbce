package tasks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

// InMemoryRepository keeps tasks in a map guarded by a mutex. Used by tests
// and by the in-memory repository manager.
type InMemoryRepository struct {
	mu   sync.RWMutex
	byID map[string]*Task
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byID: make(map[string]*Task)}
}

func (r *InMemoryRepository) Create(ctx context.Context, task *Task) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *task
	stored.CreatedAt = time.Now()
	r.byID[task.ID] = &stored

	out := stored
	return &out, nil
}

func (r *InMemoryRepository) ListByOwner(ctx context.Context, ownerID string, filter Filter) ([]*Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Task, 0)
	for _, task := range r.byID {
		if task.UserID != ownerID {
			continue
		}
		if filter.Status != nil && task.Status != *filter.Status {
			continue
		}
		out := *task
		result = append(result, &out)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, ownerID, id string, patch Patch) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.byID[id]
	if !ok || task.UserID != ownerID {
		return nil, common.ErrorNotFound
	}

	patch.Apply(task)

	out := *task
	return &out, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, ownerID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.byID[id]
	if ok && task.UserID == ownerID {
		delete(r.byID, id)
	}

	return nil
}
