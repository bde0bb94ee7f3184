package model

import "time"

const (
	EntityName = "todo"

	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
	FieldDueDate   = "dueDate"
	FieldPriority  = "priority"

	EventTypeCreated = "todo.created"
	EventTypeUpdated = "todo.updated"
	EventTypeDeleted = "todo.deleted"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusDone    Status = "done"
)

type Todo struct {
	ID          string
	Title       string
	Description *string
	Status      Status
	Priority    *int
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
