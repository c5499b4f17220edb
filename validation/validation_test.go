package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/seqtrace/errors"
)

type inner struct {
	SampleRate float64 `mapstructure:"sample_rate" validate:"min=0,max=1"`
}

type sample struct {
	Name      string `mapstructure:"name" validate:"required"`
	Mode      string `mapstructure:"mode" validate:"oneof=fused lazy batch"`
	Telemetry inner  `mapstructure:"telemetry"`
	NoTag     string `validate:"required"`
}

func TestValidate_Valid(t *testing.T) {
	s := sample{Name: "seqtrace", Mode: "fused", NoTag: "x", Telemetry: inner{SampleRate: 0.5}}
	if err := Validate(s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_FieldErrors(t *testing.T) {
	s := sample{Mode: "eager", Telemetry: inner{SampleRate: 2}}
	err := Validate(&s)
	if err == nil {
		t.Fatal("expected error")
	}

	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeValidation {
		t.Errorf("expected VALIDATION_ERROR, got %s", appErr.Code)
	}

	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok {
		t.Fatalf("expected []FieldError details, got %T", appErr.Details["fields"])
	}
	want := map[string]string{
		"name":                  "is required",
		"mode":                  "must be one of: fused lazy batch",
		"telemetry.sample_rate": "must be at most 1",
		"no_tag":                "is required",
	}
	if len(fields) != len(want) {
		t.Fatalf("got %d field errors, want %d: %v", len(fields), len(want), fields)
	}
	for _, f := range fields {
		if want[f.Field] != f.Message {
			t.Errorf("field %q: message %q, want %q", f.Field, f.Message, want[f.Field])
		}
	}
	if !strings.Contains(appErr.Message, "name: is required") {
		t.Errorf("message should list field errors, got %q", appErr.Message)
	}
}

func TestValidate_NotAStruct(t *testing.T) {
	err := Validate(42)
	if !errors.HasCode(err, errors.ErrCodeValidation) {
		t.Fatalf("expected VALIDATION_ERROR for non-struct, got %v", err)
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Name":       "name",
		"SampleRate": "sample_rate",
		"A":          "a",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
