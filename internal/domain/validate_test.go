package domain

import (
	"strings"
	"testing"
)

func TestValidateTaskTitle(t *testing.T) {
	cases := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{"valid", "Write report", false},
		{"empty", "", true},
		{"whitespace only", "   \t  ", true},
		{"max length", strings.Repeat("a", 255), false},
		{"too long", strings.Repeat("a", 256), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTaskTitle(tc.title)

			if tc.wantErr && err == nil {
				t.Fatalf("expected error for title %q", tc.title)
			}

			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error for title %q: %v", tc.title, err)
			}

			if tc.wantErr && KindOf(err) != KindValidation {
				t.Fatalf("expected validation kind, got %v", KindOf(err))
			}
		})
	}
}

func TestValidateTaskStatus(t *testing.T) {
	for _, status := range []string{"todo", "in_progress", "done"} {
		if err := ValidateTaskStatus(status); err != nil {
			t.Fatalf("unexpected error for status %q: %v", status, err)
		}
	}

	for _, status := range []string{"", "pending", "DONE", "in progress", "archived"} {
		err := ValidateTaskStatus(status)

		if err == nil {
			t.Fatalf("expected error for status %q", status)
		}

		if KindOf(err) != KindValidation {
			t.Fatalf("expected validation kind for status %q, got %v", status, KindOf(err))
		}
	}
}

func TestValidateProjectName(t *testing.T) {
	if err := ValidateProjectName("Roadmap"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := ValidateProjectName("  "); err == nil {
		t.Fatal("expected error for whitespace-only name")
	}

	if err := ValidateProjectName(strings.Repeat("x", 256)); err == nil {
		t.Fatal("expected error for overlong name")
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.com", "user.name@example.co.uk", "x+tag@domain.io"}

	for _, email := range valid {
		if err := ValidateEmail(email); err != nil {
			t.Fatalf("unexpected error for %q: %v", email, err)
		}
	}

	invalid := []string{"", "bad-email", "missing@domain", "@no-local.com", "spaces in@mail.com"}

	for _, email := range invalid {
		if err := ValidateEmail(email); err == nil {
			t.Fatalf("expected error for %q", email)
		}
	}
}

func TestValidateNotificationType(t *testing.T) {
	valid := []string{"task_created", "task_updated", "task_deleted", "project_created", "project_updated"}

	for _, notificationType := range valid {
		if err := ValidateNotificationType(notificationType); err != nil {
			t.Fatalf("unexpected error for %q: %v", notificationType, err)
		}
	}

	if err := ValidateNotificationType("task_archived"); err == nil {
		t.Fatal("expected error for unknown type")
	}
}

func TestErrorKinds(t *testing.T) {
	err := NewNotFoundError("Task", 42)

	if got := err.Error(); got != "Task with id 42 not found" {
		t.Fatalf("unexpected message: %q", got)
	}

	if KindOf(err) != KindNotFound {
		t.Fatalf("expected not-found kind, got %v", KindOf(err))
	}

	if KindOf(nil) != KindInternal {
		t.Fatal("nil error should classify as internal")
	}
}

func TestTaskStatusHelpers(t *testing.T) {
	task := Task{Status: TaskStatusInProgress}

	if task.IsTodo() || task.IsDone() {
		t.Fatal("status helpers disagree with status")
	}

	if !task.IsInProgress() {
		t.Fatal("expected IsInProgress to be true")
	}
}
