package validator_test

import (
	"strings"
	"testing"

	"oberoy/shared/validator"
)

// Test structs for validation
type ValidTestStruct struct {
	Name     string `validate:"required" json:"name"`
	Email    string `validate:"required,email" json:"email"`
	Age      int    `validate:"gte=0,lte=120" json:"age"`
	Category string `validate:"oneof=user admin guest" json:"category"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *ValidTestStruct
		expectError bool
	}{
		{
			name: "valid struct",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Age:      25,
				Category: "user",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &ValidTestStruct{
				Email:    "john@example.com",
				Age:      25,
				Category: "user",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "invalid-email",
				Age:      25,
				Category: "user",
			},
			expectError: true,
		},
		{
			name: "age out of range",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Age:      150,
				Category: "user",
			},
			expectError: true,
		},
		{
			name: "invalid category",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Age:      25,
				Category: "invalid",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid email",
			field:       "test@example.com",
			tag:         "email",
			expectError: false,
		},
		{
			name:        "invalid email",
			field:       "invalid-email",
			tag:         "email",
			expectError: true,
		},
		{
			name:        "valid number in range",
			field:       25,
			tag:         "gte=0,lte=100",
			expectError: false,
		},
		{
			name:        "number out of range",
			field:       150,
			tag:         "gte=0,lte=100",
			expectError: true,
		},
		{
			name:        "empty rule passes for zero value",
			field:       "",
			tag:         "empty",
			expectError: false,
		},
		{
			name:        "empty rule fails for non-zero value",
			field:       "not empty",
			tag:         "empty",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"name":"John Doe","email":"john@example.com","age":25,"category":"user"}`,
			expectError: false,
		},
		{
			name:        "invalid field value",
			jsonBody:    `{"name":"John Doe","email":"invalid-email","age":25,"category":"user"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"John Doe","email":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data ValidTestStruct
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	data := &ValidTestStruct{}
	err := validator.ValidateStruct(data)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	errorMsg := err.Error()

	if !strings.Contains(errorMsg, "required") || errorMsg == "" {
		t.Errorf("expected descriptive error message containing 'required', got: %s", errorMsg)
	}
}
