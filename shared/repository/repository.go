package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"backlog/infras/otel"
	"backlog/shared/constant"
	"backlog/shared/dto"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrExists   = errors.New("record already exists")

	errUnknownSortField = errors.New("unknown sort field")
)

// Sorter orders records by one field. Has reports whether the record carries
// a value for that field; records without one always sort after records with
// one, no matter the direction. A nil Has means the field is always present.
type Sorter[T any] struct {
	Has func(T) bool
	Cmp func(a, b T) int
}

// Repository is an in-process record store. Every exported method takes the
// write or read lock for its whole body, so callers get read-modify-write
// atomicity from a single call.
type Repository[T any] struct {
	otel    otel.Otel
	entitas string
	key     func(T) string
	sorters map[string]Sorter[T]

	mu    sync.RWMutex
	items map[string]T
	order []string
}

func NewRepository[T any](entitasName string, key func(T) string, sorters map[string]Sorter[T], otl otel.Otel) *Repository[T] {
	return &Repository[T]{
		otel:    otl,
		entitas: entitasName,
		key:     key,
		sorters: sorters,
		items:   make(map[string]T),
		order:   []string{},
	}
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	id := repo.key(model)
	scope.SetAttribute(constant.OtelRecordAttributeKey, id)

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.items[id]; ok {
		err := fmt.Errorf("failed to insert data (%s): %w", repo.entitas, ErrExists)
		scope.TraceError(err)

		return err
	}

	repo.items[id] = model
	repo.order = append(repo.order, id)

	return nil
}

// Get returns the zero value of T when no record has the id; callers detect
// absence through the record's own id field.
func (repo *Repository[T]) Get(ctx context.Context, id string) (T, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	scope.SetAttribute(constant.OtelRecordAttributeKey, id)

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return repo.items[id], nil
}

// GetAll filters, sorts, and paginates over one consistent snapshot. It
// returns the requested page and the total number of matches before
// pagination.
func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, match func(T) bool) ([]T, int, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	sorter, ok := repo.sorters[params.SortBy]
	if !ok {
		err := fmt.Errorf("failed to get all data (%s): %w (%s)", repo.entitas, errUnknownSortField, params.SortBy)
		scope.TraceError(err)

		return nil, 0, err
	}

	models := repo.snapshot(match)
	total := len(models)

	desc := params.Order == dto.SortDirDesc
	sort.SliceStable(models, func(i, j int) bool {
		return less(sorter, models[i], models[j], desc)
	})

	start := params.Offset()
	if start >= total {
		return []T{}, total, nil
	}

	end := start + params.PageSize
	if end > total {
		end = total
	}

	return models[start:end], total, nil
}

// Update applies fn to the stored record under the write lock and keeps the
// result. ErrNotFound when no record has the id; an error from fn leaves the
// record untouched.
func (repo *Repository[T]) Update(ctx context.Context, id string, fn func(current T) (T, error)) (T, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	scope.SetAttribute(constant.OtelRecordAttributeKey, id)

	repo.mu.Lock()
	defer repo.mu.Unlock()

	var zero T

	current, ok := repo.items[id]
	if !ok {
		err := fmt.Errorf("failed to update data (%s): %w", repo.entitas, ErrNotFound)
		scope.TraceError(err)

		return zero, err
	}

	updated, err := fn(current)
	if err != nil {
		scope.TraceError(err)

		return zero, err
	}

	repo.items[id] = updated

	return updated, nil
}

// Upsert applies fn to the stored record, or to the zero value when no record
// has the id yet, and keeps the result. The returned flag reports whether a
// new record was created.
func (repo *Repository[T]) Upsert(ctx context.Context, id string, fn func(current T, exists bool) (T, error)) (T, bool, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Upsert", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	scope.SetAttribute(constant.OtelRecordAttributeKey, id)

	repo.mu.Lock()
	defer repo.mu.Unlock()

	var zero T

	current, ok := repo.items[id]

	updated, err := fn(current, ok)
	if err != nil {
		scope.TraceError(err)

		return zero, false, err
	}

	repo.items[id] = updated
	if !ok {
		repo.order = append(repo.order, id)
	}

	return updated, !ok, nil
}

// Delete removes and returns the stored record. ErrNotFound when no record
// has the id.
func (repo *Repository[T]) Delete(ctx context.Context, id string) (T, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Delete", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	scope.SetAttribute(constant.OtelRecordAttributeKey, id)

	repo.mu.Lock()
	defer repo.mu.Unlock()

	var zero T

	removed, ok := repo.items[id]
	if !ok {
		err := fmt.Errorf("failed to delete data (%s): %w", repo.entitas, ErrNotFound)
		scope.TraceError(err)

		return zero, err
	}

	delete(repo.items, id)

	for i, key := range repo.order {
		if key == id {
			repo.order = append(repo.order[:i], repo.order[i+1:]...)

			break
		}
	}

	return removed, nil
}

// snapshot copies the matching records in insertion order, so a later stable
// sort breaks ties by insertion order.
func (repo *Repository[T]) snapshot(match func(T) bool) []T {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	models := make([]T, 0, len(repo.order))

	for _, id := range repo.order {
		model := repo.items[id]
		if match == nil || match(model) {
			models = append(models, model)
		}
	}

	return models
}

func less[T any](sorter Sorter[T], a, b T, desc bool) bool {
	aHas := sorter.Has == nil || sorter.Has(a)
	bHas := sorter.Has == nil || sorter.Has(b)

	if aHas != bHas {
		return aHas
	}

	if !aHas {
		return false
	}

	cmp := sorter.Cmp(a, b)
	if desc {
		cmp = -cmp
	}

	return cmp < 0
}
