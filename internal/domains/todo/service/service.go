package service

import (
	"context"
	"errors"
	"fmt"

	"backlog/config"
	"backlog/infras/otel"
	"backlog/internal/domains/todo/model"
	"backlog/internal/domains/todo/model/dto"
	"backlog/internal/domains/todo/repository"
	"backlog/shared/constant"
	"backlog/shared/events"
	"backlog/shared/failure"
	gRepo "backlog/shared/repository"
	"backlog/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Todo interface {
	Create(ctx context.Context, req dto.CreateTodoRequest) (dto.TodoResponse, error)
	GetAll(ctx context.Context, req dto.ListTodosRequest) (dto.GetTodosResponse, error)
	Get(ctx context.Context, id string) (dto.TodoResponse, error)
	Update(ctx context.Context, req dto.UpdateTodoRequest, id string) (dto.TodoResponse, error)
	Replace(ctx context.Context, req dto.CreateTodoRequest, id string) (dto.TodoResponse, bool, error)
	Delete(ctx context.Context, id string) (dto.TodoResponse, error)
	SetStatus(ctx context.Context, id string, status model.Status) (dto.TodoResponse, error)
}

type serviceImpl struct {
	repo   repository.Todo
	cfg    *config.Config
	events events.Publisher
	otel   otel.Otel
}

func New(repo repository.Todo, cfg *config.Config, publisher events.Publisher, otel otel.Otel) Todo {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		events: publisher,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	todo := req.ToModel()

	if err = s.repo.Insert(ctx, todo); err != nil {
		log.Error().Err(err).Msg("failed to create todo")

		return res, fmt.Errorf("failed to create todo: %w", err)
	}

	res.FromModel(todo)
	s.events.Publish(ctx, model.EventTypeCreated, todo.ID, res)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req dto.ListTodosRequest) (res dto.GetTodosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	todos, total, err := s.repo.GetAll(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return res, fmt.Errorf("failed to get todos: %w", err)
	}

	res.FromModels(todos, req.QueryParams, total)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	todo, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todo")

		return res, fmt.Errorf("failed to get todo: %w", err)
	}

	if todo.ID == "" {
		return res, failure.NotFound("todo not found") // nolint:wrapcheck
	}

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTodoRequest, id string) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	todo, err := s.repo.Update(ctx, id, func(current model.Todo) (model.Todo, error) {
		return req.ApplyTo(current), nil
	})
	if err != nil {
		if errors.Is(err, gRepo.ErrNotFound) {
			log.Error().Msg("todo not found")

			return res, failure.NotFound("todo not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update todo")

		return res, fmt.Errorf("failed to update todo: %w", err)
	}

	res.FromModel(todo)
	s.events.Publish(ctx, model.EventTypeUpdated, todo.ID, res)

	return res, nil
}

func (s *serviceImpl) Replace(ctx context.Context, req dto.CreateTodoRequest, id string) (res dto.TodoResponse, created bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Replace")
	defer scope.End()
	defer scope.TraceIfError(err)

	todo, created, err := s.repo.Upsert(ctx, id, func(current model.Todo, exists bool) (model.Todo, error) {
		if exists {
			return req.ApplyTo(current), nil
		}

		next := req.ToModel()
		next.ID = id

		return next, nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to replace todo")

		return res, false, fmt.Errorf("failed to replace todo: %w", err)
	}

	res.FromModel(todo)

	eventType := model.EventTypeUpdated
	if created {
		eventType = model.EventTypeCreated
	}

	s.events.Publish(ctx, eventType, todo.ID, res)

	return res, created, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	todo, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, gRepo.ErrNotFound) {
			log.Error().Msg("todo not found")

			return res, failure.NotFound("todo not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete todo")

		return res, fmt.Errorf("failed to delete todo: %w", err)
	}

	res.FromModel(todo)
	s.events.Publish(ctx, model.EventTypeDeleted, todo.ID, res)

	return res, nil
}

func (s *serviceImpl) SetStatus(ctx context.Context, id string, status model.Status) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	todo, err := s.repo.Update(ctx, id, func(current model.Todo) (model.Todo, error) {
		current.Status = status
		current.UpdatedAt = timezone.Now()

		return current, nil
	})
	if err != nil {
		if errors.Is(err, gRepo.ErrNotFound) {
			log.Error().Msg("todo not found")

			return res, failure.NotFound("todo not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to set todo status")

		return res, fmt.Errorf("failed to set todo status: %w", err)
	}

	res.FromModel(todo)
	s.events.Publish(ctx, model.EventTypeUpdated, todo.ID, res)

	return res, nil
}
