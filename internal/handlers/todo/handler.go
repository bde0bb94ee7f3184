package todo

import (
	"backlog/infras/otel"
	"backlog/internal/domains/todo/model"
	"backlog/internal/domains/todo/model/dto"
	"backlog/internal/domains/todo/service"
	"backlog/shared/constant"
	"backlog/shared/failure"
	"backlog/shared/validator"
	"backlog/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Todo
	otel    otel.Otel
}

func New(service service.Todo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/todos", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTodo)
		routerGroup.Get("/", handler.GetTodos)
		routerGroup.Get("/{id}", handler.GetTodoByID)
		routerGroup.Patch("/{id}", handler.UpdateTodo)
		routerGroup.Put("/{id}", handler.ReplaceTodo)
		routerGroup.Delete("/{id}", handler.DeleteTodo)
		routerGroup.Post("/{id}/done", handler.MarkTodoDone)
		routerGroup.Post("/{id}/pending", handler.MarkTodoPending)
	})
}

// CreateTodo handles the creation of a new todo item.
// @Summary Create a new todo item
// @Description Create a new todo item with the provided details.
// @Tags Todo
// @Accept json
// @Produce json
// @Param request body dto.CreateTodoRequest true "Create Todo Request"
// @Success 201 {object} dto.TodoResponse "Created todo item"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todos [post]
func (handler *Handler) CreateTodo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTodo")
	defer scope.End()

	req := dto.CreateTodoRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create todo")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Todo created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetTodos retrieves todo items based on query parameters.
// @Summary Get todo items
// @Description Retrieve todo items with optional filtering, sorting and pagination.
// @Tags Todo
// @Accept json
// @Produce json
// @Param q query string false "Filter by text in title or description"
// @Param status query string false "Filter by status" Enums(pending, done)
// @Param priority query int false "Filter by priority" minimum(1) maximum(3)
// @Param page query int false "Page number, starting at 1"
// @Param pageSize query int false "Page size, between 1 and 100"
// @Param sortBy query string false "Sort key" Enums(createdAt, updatedAt, dueDate, priority)
// @Param order query string false "Sort direction" Enums(asc, desc)
// @Success 200 {object} dto.GetTodosResponse "Page of todo items"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todos [get]
func (handler *Handler) GetTodos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodos")
	defer scope.End()

	req := dto.ListTodosRequest{}

	if issues := req.FromRequest(r); len(issues) > 0 {
		err := failure.Validation(issues)
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query parameters")

		response.WithError(w, err)

		return
	}

	todos, err := handler.service.GetAll(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get todos")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todos retrieved successfully")

	response.WithJSON(w, http.StatusOK, todos)
}

// GetTodoByID retrieves a todo item by its ID.
// @Summary Get a todo item by ID
// @Description Retrieve a todo item by its unique identifier.
// @Tags Todo
// @Accept json
// @Produce json
// @Param id path string true "Todo ID"
// @Success 200 {object} dto.TodoResponse "Todo item details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todos/{id} [get]
func (handler *Handler) GetTodoByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodoByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	todo, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get todo by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo retrieved successfully")

	response.WithJSON(w, http.StatusOK, todo)
}

// UpdateTodo applies a partial update to an existing todo item.
// @Summary Update a todo item by ID
// @Description Merge the provided fields into an existing todo item.
// @Tags Todo
// @Accept json
// @Produce json
// @Param id path string true "Todo ID"
// @Param request body dto.UpdateTodoRequest true "Update Todo Request"
// @Success 200 {object} dto.TodoResponse "Updated todo item"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todos/{id} [patch]
func (handler *Handler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTodo")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTodoRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	todo, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo updated successfully")

	response.WithJSON(w, http.StatusOK, todo)
}

// ReplaceTodo replaces a todo item in full, creating it when absent.
// @Summary Replace a todo item by ID
// @Description Replace the full todo item at the given ID, creating it if it does not exist.
// @Tags Todo
// @Accept json
// @Produce json
// @Param id path string true "Todo ID"
// @Param request body dto.CreateTodoRequest true "Replace Todo Request"
// @Success 200 {object} dto.TodoResponse "Replaced todo item"
// @Success 201 {object} dto.TodoResponse "Created todo item"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todos/{id} [put]
func (handler *Handler) ReplaceTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReplaceTodo")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.CreateTodoRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	todo, created, err := handler.service.Replace(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to replace todo")

		response.WithError(w, err)

		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	scope.AddEvent("Todo replaced successfully")

	response.WithJSON(w, status, todo)
}

// DeleteTodo deletes a todo item by its ID.
// @Summary Delete a todo item by ID
// @Description Delete a todo item using its unique identifier.
// @Tags Todo
// @Accept json
// @Produce json
// @Param id path string true "Todo ID"
// @Success 200 {object} dto.TodoResponse "Deleted todo item"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todos/{id} [delete]
func (handler *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTodo")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	todo, err := handler.service.Delete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo deleted successfully")

	response.WithJSON(w, http.StatusOK, todo)
}

// MarkTodoDone marks a todo item as done.
// @Summary Mark a todo item as done
// @Description Set the status of a todo item to done.
// @Tags Todo
// @Accept json
// @Produce json
// @Param id path string true "Todo ID"
// @Success 200 {object} dto.TodoResponse "Updated todo item"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todos/{id}/done [post]
func (handler *Handler) MarkTodoDone(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkTodoDone")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	todo, err := handler.service.SetStatus(ctx, id, model.StatusDone)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark todo as done")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo marked as done")

	response.WithJSON(w, http.StatusOK, todo)
}

// MarkTodoPending marks a todo item as pending.
// @Summary Mark a todo item as pending
// @Description Set the status of a todo item back to pending.
// @Tags Todo
// @Accept json
// @Produce json
// @Param id path string true "Todo ID"
// @Success 200 {object} dto.TodoResponse "Updated todo item"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todos/{id}/pending [post]
func (handler *Handler) MarkTodoPending(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkTodoPending")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	todo, err := handler.service.SetStatus(ctx, id, model.StatusPending)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark todo as pending")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo marked as pending")

	response.WithJSON(w, http.StatusOK, todo)
}
