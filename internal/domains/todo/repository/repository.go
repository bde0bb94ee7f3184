package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"strings"

	"backlog/infras/otel"
	"backlog/internal/domains/todo/model"
	"backlog/internal/domains/todo/model/dto"
	gRepo "backlog/shared/repository"
)

type Todo interface {
	Insert(ctx context.Context, todo model.Todo) error
	Get(ctx context.Context, id string) (model.Todo, error)
	GetAll(ctx context.Context, req dto.ListTodosRequest) ([]model.Todo, int, error)
	Update(ctx context.Context, id string, apply func(current model.Todo) (model.Todo, error)) (model.Todo, error)
	Upsert(ctx context.Context, id string, apply func(current model.Todo, exists bool) (model.Todo, error)) (model.Todo, bool, error)
	Delete(ctx context.Context, id string) (model.Todo, error)
}

type repositoryImpl struct {
	*gRepo.Repository[model.Todo]
}

func New(otl otel.Otel) Todo {
	return &repositoryImpl{
		Repository: gRepo.NewRepository(model.EntityName, key, sorters(), otl),
	}
}

// GetAll narrows the generic query to the list request's filters.
func (repo *repositoryImpl) GetAll(ctx context.Context, req dto.ListTodosRequest) ([]model.Todo, int, error) {
	return repo.Repository.GetAll(ctx, req.QueryParams, match(req))
}

func key(todo model.Todo) string {
	return todo.ID
}

func sorters() map[string]gRepo.Sorter[model.Todo] {
	return map[string]gRepo.Sorter[model.Todo]{
		model.FieldCreatedAt: {
			Cmp: func(a, b model.Todo) int { return a.CreatedAt.Compare(b.CreatedAt) },
		},
		model.FieldUpdatedAt: {
			Cmp: func(a, b model.Todo) int { return a.UpdatedAt.Compare(b.UpdatedAt) },
		},
		model.FieldDueDate: {
			Has: func(todo model.Todo) bool { return todo.DueDate != nil },
			Cmp: func(a, b model.Todo) int { return a.DueDate.Compare(*b.DueDate) },
		},
		model.FieldPriority: {
			Has: func(todo model.Todo) bool { return todo.Priority != nil },
			Cmp: func(a, b model.Todo) int { return *a.Priority - *b.Priority },
		},
	}
}

// match builds the record predicate for one list request. The text filter is a
// case-insensitive substring match against title or description, a record
// without a description matches as if it were empty.
func match(req dto.ListTodosRequest) func(model.Todo) bool {
	query := strings.ToLower(req.Query)

	return func(todo model.Todo) bool {
		if query != "" {
			description := ""
			if todo.Description != nil {
				description = *todo.Description
			}

			if !strings.Contains(strings.ToLower(todo.Title), query) &&
				!strings.Contains(strings.ToLower(description), query) {
				return false
			}
		}

		if req.Status != "" && todo.Status != model.Status(req.Status) {
			return false
		}

		if req.Priority != nil && (todo.Priority == nil || *todo.Priority != *req.Priority) {
			return false
		}

		return true
	}
}
