package dto

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"backlog/internal/domains/todo/model"
	"backlog/shared"
	"backlog/shared/constant"
	gDto "backlog/shared/dto"
	"backlog/shared/failure"
	"backlog/shared/timezone"
	"backlog/shared/validator"
)

type CreateTodoRequest struct {
	Title       string                `json:"title" validate:"required,max=200"`
	Description gDto.Optional[string] `json:"description" swaggertype:"string" validate:"omitnil,max=2000"`
	Status      gDto.Optional[string] `json:"status" swaggertype:"string" validate:"omitnil,oneof=pending done"`
	Priority    gDto.Optional[int]    `json:"priority" swaggertype:"integer" validate:"omitnil,min=1,max=3"`
	DueDate     gDto.Optional[string] `json:"dueDate" swaggertype:"string" validate:"omitnil,datetime=2006-01-02T15:04:05Z07:00"`
}

// Validate applies the tag rules, then rejects explicit nulls. A full payload
// has no clearable fields, so null is never a legal value here.
func (c *CreateTodoRequest) Validate() error {
	issues := failure.GetIssues(validator.ValidateStruct(c))

	issues = rejectNull(issues, "description", c.Description)
	issues = rejectNull(issues, "status", c.Status)
	issues = rejectNull(issues, "priority", c.Priority)
	issues = rejectNull(issues, "dueDate", c.DueDate)

	if len(issues) > 0 {
		return failure.Validation(issues) //nolint:wrapcheck
	}

	return nil
}

func (c *CreateTodoRequest) ToModel() model.Todo {
	now := timezone.Now()

	todo := model.Todo{
		ID:        uuid.NewString(),
		Title:     c.Title,
		Status:    model.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	todo.Description = c.Description.Ptr()
	todo.Priority = c.Priority.Ptr()

	if c.Status.Valid {
		todo.Status = model.Status(c.Status.Value)
	}

	if c.DueDate.Valid {
		if dueDate, err := time.Parse(constant.DateFormat, c.DueDate.Value); err == nil {
			todo.DueDate = &dueDate
		}
	}

	return todo
}

// ApplyTo rebuilds an existing record from a full payload. Identity and
// creation time survive, every other field comes from the payload.
func (c *CreateTodoRequest) ApplyTo(current model.Todo) model.Todo {
	next := c.ToModel()
	next.ID = current.ID
	next.CreatedAt = current.CreatedAt

	return next
}

type UpdateTodoRequest struct {
	Title       gDto.Optional[string] `json:"title" swaggertype:"string" validate:"omitnil,min=1,max=200"`
	Description gDto.Optional[string] `json:"description" swaggertype:"string" validate:"omitnil,max=2000"`
	Status      gDto.Optional[string] `json:"status" swaggertype:"string" validate:"omitnil,oneof=pending done"`
	Priority    gDto.Optional[int]    `json:"priority" swaggertype:"integer" validate:"omitnil,min=1,max=3"`
	DueDate     gDto.Optional[string] `json:"dueDate" swaggertype:"string" validate:"omitnil,datetime=2006-01-02T15:04:05Z07:00"`
}

// Validate applies the tag rules, then rejects explicit nulls on the fields
// that cannot be cleared. Null on dueDate or priority is the clear sentinel
// and passes.
func (u *UpdateTodoRequest) Validate() error {
	issues := failure.GetIssues(validator.ValidateStruct(u))

	issues = rejectNull(issues, "title", u.Title)
	issues = rejectNull(issues, "description", u.Description)
	issues = rejectNull(issues, "status", u.Status)

	if len(issues) > 0 {
		return failure.Validation(issues) //nolint:wrapcheck
	}

	return nil
}

// ApplyTo merges the patch into a copy of the record. Set fields overwrite,
// null clears dueDate and priority, absent fields stay untouched. The update
// time refreshes even for an empty patch.
func (u *UpdateTodoRequest) ApplyTo(current model.Todo) model.Todo {
	if u.Title.Valid {
		current.Title = u.Title.Value
	}

	if u.Description.Valid {
		current.Description = &u.Description.Value
	}

	if u.Status.Valid {
		current.Status = model.Status(u.Status.Value)
	}

	switch {
	case u.Priority.IsNull():
		current.Priority = nil
	case u.Priority.Valid:
		current.Priority = &u.Priority.Value
	}

	switch {
	case u.DueDate.IsNull():
		current.DueDate = nil
	case u.DueDate.Valid:
		if dueDate, err := time.Parse(constant.DateFormat, u.DueDate.Value); err == nil {
			current.DueDate = &dueDate
		}
	}

	current.UpdatedAt = timezone.Now()

	return current
}

type ListTodosRequest struct {
	gDto.QueryParams

	Query    string
	Status   string
	Priority *int
}

// FromRequest populates the list query from the URL, collecting one issue per
// invalid parameter. Absent filters stay off.
func (l *ListTodosRequest) FromRequest(r *http.Request) []failure.Issue {
	issues := l.QueryParams.FromRequest(r)

	queryParams := r.URL.Query()

	l.Query = queryParams.Get(constant.RequestParamQuery)

	if status := queryParams.Get(constant.RequestParamStatus); status != "" {
		if status != string(model.StatusPending) && status != string(model.StatusDone) {
			issues = append(issues, failure.Issue{
				Path:    constant.RequestParamStatus,
				Message: "status must be one of pending done",
			})
		} else {
			l.Status = status
		}
	}

	if priority := queryParams.Get(constant.RequestParamPriority); priority != "" {
		priorityInt, err := strconv.Atoi(priority)
		if err != nil || priorityInt < constant.PriorityMin || priorityInt > constant.PriorityMax {
			issues = append(issues, failure.Issue{
				Path:    constant.RequestParamPriority,
				Message: "priority must be one of 1 2 3",
			})
		} else {
			l.Priority = &priorityInt
		}
	}

	switch l.SortBy {
	case model.FieldCreatedAt, model.FieldUpdatedAt, model.FieldDueDate, model.FieldPriority:
	default:
		issues = append(issues, failure.Issue{
			Path:    constant.RequestParamSortBy,
			Message: "sortBy must be one of createdAt updatedAt dueDate priority",
		})
	}

	return issues
}

type TodoResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
	Priority    *int    `json:"priority,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

func (r *TodoResponse) FromModel(todo model.Todo) {
	r.ID = todo.ID
	r.Title = todo.Title
	r.Description = todo.Description
	r.Status = string(todo.Status)
	r.Priority = todo.Priority
	r.CreatedAt = todo.CreatedAt.Format(constant.DateFormat)
	r.UpdatedAt = todo.UpdatedAt.Format(constant.DateFormat)

	if todo.DueDate != nil {
		dueDate := todo.DueDate.Format(constant.DateFormat)
		r.DueDate = &dueDate
	}
}

type GetTodosResponse struct {
	Data       []TodoResponse `json:"data"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	Total      int            `json:"total"`
	TotalPages int            `json:"totalPages"`
}

func (r *GetTodosResponse) FromModels(todos []model.Todo, params gDto.QueryParams, total int) {
	r.Page = params.Page
	r.PageSize = params.PageSize
	r.Total = total
	r.TotalPages = shared.CalculateTotalPage(total, params.PageSize)

	r.Data = make([]TodoResponse, len(todos))
	for i, todo := range todos {
		r.Data[i].FromModel(todo)
	}
}

func rejectNull(issues []failure.Issue, name string, field interface{ IsNull() bool }) []failure.Issue {
	if field.IsNull() {
		issues = append(issues, failure.Issue{
			Path:    name,
			Message: name + " must not be null",
		})
	}

	return issues
}
