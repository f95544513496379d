package validation

import (
	"errors"
	"strings"
	"testing"
	"time"

	"taskapi/domain/apperr"
)

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "plain title",
			raw:  "Write spec",
			want: "Write spec",
		},
		{
			name: "surrounding whitespace trimmed",
			raw:  "  Write spec\t",
			want: "Write spec",
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			raw:     "   \t\n ",
			wantErr: true,
		},
		{
			name: "exactly 200 characters",
			raw:  strings.Repeat("a", 200),
			want: strings.Repeat("a", 200),
		},
		{
			name:    "201 characters",
			raw:     strings.Repeat("a", 201),
			wantErr: true,
		},
		{
			name: "padding does not count against the limit",
			raw:  "  " + strings.Repeat("a", 200) + "  ",
			want: strings.Repeat("a", 200),
		},
		{
			name: "multibyte runes counted as characters",
			raw:  strings.Repeat("ü", 200),
			want: strings.Repeat("ü", 200),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeTitle(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NormalizeTitle(%q) expected error, got %q", tt.raw, got)
				}
				assertFieldError(t, err, "title")
				return
			}
			if err != nil {
				t.Fatalf("NormalizeTitle(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeDescription(t *testing.T) {
	if _, err := NormalizeDescription(""); err != nil {
		t.Errorf("empty description should be valid, got %v", err)
	}
	if _, err := NormalizeDescription(strings.Repeat("d", 1000)); err != nil {
		t.Errorf("1000-char description should be valid, got %v", err)
	}
	_, err := NormalizeDescription(strings.Repeat("d", 1001))
	if err == nil {
		t.Fatal("1001-char description should be rejected")
	}
	assertFieldError(t, err, "description")
}

func TestNormalizeAssignedTo(t *testing.T) {
	if _, err := NormalizeAssignedTo(""); err != nil {
		t.Errorf("empty assignee should be valid, got %v", err)
	}
	if _, err := NormalizeAssignedTo(strings.Repeat("a", 100)); err != nil {
		t.Errorf("100-char assignee should be valid, got %v", err)
	}
	_, err := NormalizeAssignedTo(strings.Repeat("a", 101))
	if err == nil {
		t.Fatal("101-char assignee should be rejected")
	}
	assertFieldError(t, err, "assigned_to")
}

func TestValidateDueDate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		due     *time.Time
		wantErr bool
	}{
		{
			name: "nil due date",
			due:  nil,
		},
		{
			name: "one second in the future",
			due:  timePtr(now.Add(time.Second)),
		},
		{
			name:    "exactly now",
			due:     timePtr(now),
			wantErr: true,
		},
		{
			name:    "in the past",
			due:     timePtr(now.Add(-time.Hour)),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDueDate(tt.due, now)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				assertFieldError(t, err, "due_date")
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"pending", "in_progress", "completed", "cancelled"} {
		status, err := ParseStatus(raw)
		if err != nil {
			t.Errorf("ParseStatus(%q) unexpected error: %v", raw, err)
		}
		if string(status) != raw {
			t.Errorf("ParseStatus(%q) = %q", raw, status)
		}
	}

	for _, raw := range []string{"", "done", "PENDING", "in-progress"} {
		_, err := ParseStatus(raw)
		if err == nil {
			t.Errorf("ParseStatus(%q) should be rejected", raw)
			continue
		}
		assertFieldError(t, err, "status")
	}
}

func TestParsePriority(t *testing.T) {
	for _, raw := range []string{"low", "medium", "high", "urgent"} {
		priority, err := ParsePriority(raw)
		if err != nil {
			t.Errorf("ParsePriority(%q) unexpected error: %v", raw, err)
		}
		if string(priority) != raw {
			t.Errorf("ParsePriority(%q) = %q", raw, priority)
		}
	}

	if _, err := ParsePriority("critical"); err == nil {
		t.Error("ParsePriority(\"critical\") should be rejected")
	}
}

func assertFieldError(t *testing.T, err error, field string) {
	t.Helper()
	var fe *apperr.FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldError, got %T: %v", err, err)
	}
	if fe.Field != field {
		t.Errorf("FieldError.Field = %q, want %q", fe.Field, field)
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
