package validator_test

import (
	"strings"
	"testing"

	"backlog/shared/failure"
	"backlog/shared/validator"
)

// Test structs for validation
type ValidTestStruct struct {
	Title    string  `validate:"required,max=10" json:"title"`
	Status   string  `validate:"omitempty,oneof=pending done" json:"status"`
	Priority *int    `validate:"omitempty,min=1,max=3" json:"priority"`
	DueDate  *string `validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00" json:"dueDate"`
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		data      *ValidTestStruct
		wantPaths []string
	}{
		{
			name: "valid struct",
			data: &ValidTestStruct{
				Title:    "write",
				Status:   "pending",
				Priority: intPtr(2),
				DueDate:  stringPtr("2024-06-01T10:00:00Z"),
			},
		},
		{
			name: "optional fields absent",
			data: &ValidTestStruct{
				Title: "write",
			},
		},
		{
			name:      "missing required field",
			data:      &ValidTestStruct{Status: "pending"},
			wantPaths: []string{"title"},
		},
		{
			name:      "title too long",
			data:      &ValidTestStruct{Title: "this title is far too long"},
			wantPaths: []string{"title"},
		},
		{
			name:      "invalid status",
			data:      &ValidTestStruct{Title: "write", Status: "started"},
			wantPaths: []string{"status"},
		},
		{
			name:      "priority below range",
			data:      &ValidTestStruct{Title: "write", Priority: intPtr(0)},
			wantPaths: []string{"priority"},
		},
		{
			name:      "priority above range",
			data:      &ValidTestStruct{Title: "write", Priority: intPtr(4)},
			wantPaths: []string{"priority"},
		},
		{
			name:      "due date not a timestamp",
			data:      &ValidTestStruct{Title: "write", DueDate: stringPtr("tomorrow")},
			wantPaths: []string{"dueDate"},
		},
		{
			name:      "every violation reported at once",
			data:      &ValidTestStruct{Status: "started", Priority: intPtr(9), DueDate: stringPtr("x")},
			wantPaths: []string{"title", "status", "priority", "dueDate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if len(tt.wantPaths) == 0 {
				if err != nil {
					t.Errorf("expected no validation error, got: %v", err)
				}

				return
			}

			if err == nil {
				t.Fatal("expected validation error, got nil")
			}

			issues := failure.GetIssues(err)
			if len(issues) != len(tt.wantPaths) {
				t.Fatalf("expected %d issues, got %d: %+v", len(tt.wantPaths), len(issues), issues)
			}

			for i, path := range tt.wantPaths {
				if issues[i].Path != path {
					t.Errorf("expected issue %d to have path %s, got %s", i, path, issues[i].Path)
				}
				if issues[i].Message == "" {
					t.Errorf("expected issue %d to carry a message", i)
				}
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		jsonBody string
		wantPath string
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"title":"write","status":"done"}`,
		},
		{
			name:     "unknown fields are ignored",
			jsonBody: `{"title":"write","color":"red"}`,
		},
		{
			name:     "field validation failure",
			jsonBody: `{"title":"write","status":"started"}`,
			wantPath: "status",
		},
		{
			name:     "wrong field type",
			jsonBody: `{"title":123}`,
			wantPath: "title",
		},
		{
			name:     "malformed JSON",
			jsonBody: `{"title":`,
			wantPath: "body",
		},
		{
			name:     "body is not an object",
			jsonBody: `[1,2,3]`,
			wantPath: "body",
		},
		{
			name:     "empty body",
			jsonBody: ``,
			wantPath: "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data ValidTestStruct
			err := validator.Validate(reader, &data)

			if tt.wantPath == "" {
				if err != nil {
					t.Errorf("expected no validation error, got: %v", err)
				}

				return
			}

			if err == nil {
				t.Fatal("expected validation error, got nil")
			}

			issues := failure.GetIssues(err)
			if len(issues) == 0 {
				t.Fatalf("expected issues on the failure, got none: %v", err)
			}
			if issues[0].Path != tt.wantPath {
				t.Errorf("expected issue path %s, got %s", tt.wantPath, issues[0].Path)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	err := validator.ValidateStruct(&ValidTestStruct{})
	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	issues := failure.GetIssues(err)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}

	if issues[0].Message != "title is required" {
		t.Errorf("expected 'title is required', got: %s", issues[0].Message)
	}

	if failure.GetCode(err) != 400 {
		t.Errorf("expected code 400, got %d", failure.GetCode(err))
	}
}

// Validation failures surface as one failure value whose message matches the
// public error body contract.
func TestValidationFailureShape(t *testing.T) {
	err := validator.ValidateStruct(&ValidTestStruct{Status: "started"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	if err.Error() != "Validation error" {
		t.Errorf("expected top-level message 'Validation error', got: %s", err.Error())
	}
}
