package dto_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backlog/internal/domains/todo/model"
	"backlog/internal/domains/todo/model/dto"
	"backlog/shared/constant"
	gDto "backlog/shared/dto"
	"backlog/shared/failure"
	"backlog/shared/validator"
)

func issuePaths(err error) []string {
	issues := failure.GetIssues(err)

	paths := make([]string, len(issues))
	for i, issue := range issues {
		paths[i] = issue.Path
	}

	return paths
}

func TestCreateTodoRequest_Validate(t *testing.T) {
	testCases := []struct {
		name  string
		body  string
		paths []string
	}{
		{
			name: "minimal payload passes",
			body: `{"title":"Buy milk"}`,
		},
		{
			name: "full payload passes",
			body: `{"title":"Ship release","description":"cut the tag","status":"done","priority":2,"dueDate":"2026-09-01T12:00:00Z"}`,
		},
		{
			name:  "missing title",
			body:  `{}`,
			paths: []string{"title"},
		},
		{
			name:  "null title reads as missing",
			body:  `{"title":null}`,
			paths: []string{"title"},
		},
		{
			name:  "title too long",
			body:  `{"title":"` + strings.Repeat("a", 201) + `"}`,
			paths: []string{"title"},
		},
		{
			name:  "unknown status",
			body:  `{"title":"x","status":"archived"}`,
			paths: []string{"status"},
		},
		{
			name:  "priority below range",
			body:  `{"title":"x","priority":0}`,
			paths: []string{"priority"},
		},
		{
			name:  "priority above range",
			body:  `{"title":"x","priority":4}`,
			paths: []string{"priority"},
		},
		{
			name:  "malformed due date",
			body:  `{"title":"x","dueDate":"tomorrow"}`,
			paths: []string{"dueDate"},
		},
		{
			name:  "null is not a legal value for optional fields",
			body:  `{"title":"x","description":null,"status":null,"priority":null,"dueDate":null}`,
			paths: []string{"description", "status", "priority", "dueDate"},
		},
		{
			name:  "wrong type surfaces the field",
			body:  `{"title":"x","priority":"high"}`,
			paths: []string{"priority"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var req dto.CreateTodoRequest
			err := validator.Validate(strings.NewReader(tc.body), &req)

			if len(tc.paths) == 0 {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, 400, failure.GetCode(err))
			assert.Equal(t, tc.paths, issuePaths(err))
		})
	}
}

func TestCreateTodoRequest_ToModel(t *testing.T) {
	var req dto.CreateTodoRequest
	err := validator.Validate(
		strings.NewReader(`{"title":"Ship release","description":"cut the tag","status":"done","priority":2,"dueDate":"2026-09-01T12:00:00Z"}`),
		&req,
	)
	require.NoError(t, err)

	todo := req.ToModel()

	assert.NotEmpty(t, todo.ID, "expected ID to be generated")
	assert.Equal(t, "Ship release", todo.Title)
	require.NotNil(t, todo.Description)
	assert.Equal(t, "cut the tag", *todo.Description)
	assert.Equal(t, model.StatusDone, todo.Status)
	require.NotNil(t, todo.Priority)
	assert.Equal(t, 2, *todo.Priority)
	require.NotNil(t, todo.DueDate)
	assert.Equal(t, "2026-09-01T12:00:00Z", todo.DueDate.Format(constant.DateFormat))
	assert.False(t, todo.CreatedAt.IsZero(), "expected CreatedAt to be set")
	assert.Equal(t, todo.CreatedAt, todo.UpdatedAt)
}

func TestCreateTodoRequest_ToModel_Defaults(t *testing.T) {
	var req dto.CreateTodoRequest
	err := validator.Validate(strings.NewReader(`{"title":"Buy milk"}`), &req)
	require.NoError(t, err)

	todo := req.ToModel()

	assert.Equal(t, model.StatusPending, todo.Status)
	assert.Nil(t, todo.Description)
	assert.Nil(t, todo.Priority)
	assert.Nil(t, todo.DueDate)
}

func TestCreateTodoRequest_ApplyTo(t *testing.T) {
	priority := 3
	createdAt := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	current := model.Todo{
		ID:        "existing-id",
		Title:     "Old title",
		Status:    model.StatusDone,
		Priority:  &priority,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}

	var req dto.CreateTodoRequest
	err := validator.Validate(strings.NewReader(`{"title":"New title"}`), &req)
	require.NoError(t, err)

	next := req.ApplyTo(current)

	assert.Equal(t, "existing-id", next.ID)
	assert.Equal(t, createdAt, next.CreatedAt)
	assert.Equal(t, "New title", next.Title)
	assert.Equal(t, model.StatusPending, next.Status, "expected omitted status to fall back to pending")
	assert.Nil(t, next.Priority, "expected omitted priority to be dropped")
	assert.True(t, next.UpdatedAt.After(createdAt))
}

func TestUpdateTodoRequest_Validate(t *testing.T) {
	testCases := []struct {
		name  string
		body  string
		paths []string
	}{
		{
			name: "empty patch passes",
			body: `{}`,
		},
		{
			name: "clearing due date and priority passes",
			body: `{"dueDate":null,"priority":null}`,
		},
		{
			name:  "null title",
			body:  `{"title":null}`,
			paths: []string{"title"},
		},
		{
			name:  "null status",
			body:  `{"status":null}`,
			paths: []string{"status"},
		},
		{
			name:  "null description",
			body:  `{"description":null}`,
			paths: []string{"description"},
		},
		{
			name:  "empty title",
			body:  `{"title":""}`,
			paths: []string{"title"},
		},
		{
			name:  "unknown status",
			body:  `{"status":"archived"}`,
			paths: []string{"status"},
		},
		{
			name:  "malformed due date",
			body:  `{"dueDate":"next week"}`,
			paths: []string{"dueDate"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var req dto.UpdateTodoRequest
			err := validator.Validate(strings.NewReader(tc.body), &req)

			if len(tc.paths) == 0 {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tc.paths, issuePaths(err))
		})
	}
}

func TestUpdateTodoRequest_ApplyTo(t *testing.T) {
	priority := 1
	dueDate := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	description := "existing description"
	current := model.Todo{
		ID:          "existing-id",
		Title:       "Old title",
		Description: &description,
		Status:      model.StatusPending,
		Priority:    &priority,
		DueDate:     &dueDate,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}

	t.Run("set fields overwrite", func(t *testing.T) {
		var req dto.UpdateTodoRequest
		err := validator.Validate(strings.NewReader(`{"title":"New title","status":"done","priority":3}`), &req)
		require.NoError(t, err)

		next := req.ApplyTo(current)

		assert.Equal(t, "New title", next.Title)
		assert.Equal(t, model.StatusDone, next.Status)
		require.NotNil(t, next.Priority)
		assert.Equal(t, 3, *next.Priority)
		require.NotNil(t, next.Description, "expected absent description to stay")
		assert.Equal(t, description, *next.Description)
		require.NotNil(t, next.DueDate, "expected absent dueDate to stay")
		assert.Equal(t, createdAt, next.CreatedAt)
		assert.True(t, next.UpdatedAt.After(createdAt))
	})

	t.Run("null clears due date and priority", func(t *testing.T) {
		var req dto.UpdateTodoRequest
		err := validator.Validate(strings.NewReader(`{"dueDate":null,"priority":null}`), &req)
		require.NoError(t, err)

		next := req.ApplyTo(current)

		assert.Nil(t, next.DueDate)
		assert.Nil(t, next.Priority)
		assert.Equal(t, "Old title", next.Title)
	})

	t.Run("empty patch only refreshes the update time", func(t *testing.T) {
		var req dto.UpdateTodoRequest
		err := validator.Validate(strings.NewReader(`{}`), &req)
		require.NoError(t, err)

		next := req.ApplyTo(current)

		assert.Equal(t, current.Title, next.Title)
		assert.Equal(t, current.Status, next.Status)
		assert.Equal(t, current.Priority, next.Priority)
		assert.Equal(t, current.DueDate, next.DueDate)
		assert.True(t, next.UpdatedAt.After(createdAt))
	})
}

func TestListTodosRequest_FromRequest(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/todos", nil)

		var list dto.ListTodosRequest
		issues := list.FromRequest(req)

		assert.Empty(t, issues)
		assert.Equal(t, 1, list.Page)
		assert.Equal(t, 20, list.PageSize)
		assert.Equal(t, "createdAt", list.SortBy)
		assert.Equal(t, gDto.SortDirDesc, list.Order)
		assert.Empty(t, list.Query)
		assert.Empty(t, list.Status)
		assert.Nil(t, list.Priority)
	})

	t.Run("all filters set", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/todos?q=milk&status=done&priority=2&sortBy=priority&order=asc&page=2&pageSize=5", nil)

		var list dto.ListTodosRequest
		issues := list.FromRequest(req)

		assert.Empty(t, issues)
		assert.Equal(t, "milk", list.Query)
		assert.Equal(t, "done", list.Status)
		require.NotNil(t, list.Priority)
		assert.Equal(t, 2, *list.Priority)
		assert.Equal(t, "priority", list.SortBy)
		assert.Equal(t, gDto.SortDirAsc, list.Order)
		assert.Equal(t, 2, list.Page)
		assert.Equal(t, 5, list.PageSize)
	})

	testCases := []struct {
		name  string
		query string
		paths []string
	}{
		{name: "unknown status", query: "status=archived", paths: []string{"status"}},
		{name: "priority out of range", query: "priority=9", paths: []string{"priority"}},
		{name: "priority not a number", query: "priority=high", paths: []string{"priority"}},
		{name: "unknown sort field", query: "sortBy=title", paths: []string{"sortBy"}},
		{name: "uppercase order", query: "order=ASC", paths: []string{"order"}},
		{name: "multiple issues keep parameter order", query: "page=0&status=archived", paths: []string{"page", "status"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/todos?"+tc.query, nil)

			var list dto.ListTodosRequest
			issues := list.FromRequest(req)

			paths := make([]string, len(issues))
			for i, issue := range issues {
				paths[i] = issue.Path
			}

			assert.Equal(t, tc.paths, paths)
		})
	}
}

func TestTodoResponse_FromModel(t *testing.T) {
	priority := 2
	dueDate := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	description := "cut the tag"
	todo := model.Todo{
		ID:          "test-id",
		Title:       "Ship release",
		Description: &description,
		Status:      model.StatusDone,
		Priority:    &priority,
		DueDate:     &dueDate,
		CreatedAt:   time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC),
	}

	var response dto.TodoResponse
	response.FromModel(todo)

	assert.Equal(t, todo.ID, response.ID)
	assert.Equal(t, todo.Title, response.Title)
	assert.Equal(t, todo.Description, response.Description)
	assert.Equal(t, "done", response.Status)
	assert.Equal(t, todo.Priority, response.Priority)
	require.NotNil(t, response.DueDate)
	assert.Equal(t, "2026-09-01T12:00:00Z", *response.DueDate)
	assert.Equal(t, "2026-08-01T09:30:00Z", response.CreatedAt)
	assert.Equal(t, "2026-08-02T10:00:00Z", response.UpdatedAt)
}

func TestTodoResponse_FromModel_OmitsAbsentFields(t *testing.T) {
	todo := model.Todo{
		ID:        "test-id",
		Title:     "Buy milk",
		Status:    model.StatusPending,
		CreatedAt: time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC),
	}

	var response dto.TodoResponse
	response.FromModel(todo)

	assert.Nil(t, response.Description)
	assert.Nil(t, response.Priority)
	assert.Nil(t, response.DueDate)
}

func TestGetTodosResponse_FromModels(t *testing.T) {
	now := time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)
	todos := []model.Todo{
		{ID: "id-1", Title: "First", Status: model.StatusPending, CreatedAt: now, UpdatedAt: now},
		{ID: "id-2", Title: "Second", Status: model.StatusDone, CreatedAt: now, UpdatedAt: now},
	}

	var response dto.GetTodosResponse
	response.FromModels(todos, gDto.QueryParams{Page: 2, PageSize: 2}, 5)

	assert.Equal(t, 2, response.Page)
	assert.Equal(t, 2, response.PageSize)
	assert.Equal(t, 5, response.Total)
	assert.Equal(t, 3, response.TotalPages)
	require.Len(t, response.Data, 2)
	assert.Equal(t, "id-1", response.Data[0].ID)
	assert.Equal(t, "id-2", response.Data[1].ID)
}

func TestGetTodosResponse_FromModels_Empty(t *testing.T) {
	var response dto.GetTodosResponse
	response.FromModels(nil, gDto.QueryParams{Page: 1, PageSize: 20}, 0)

	assert.Equal(t, 0, response.Total)
	assert.Equal(t, 0, response.TotalPages)
	assert.NotNil(t, response.Data)
	assert.Empty(t, response.Data)
}
