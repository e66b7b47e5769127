package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateSQLMigration(t *testing.T) {
	dir := t.TempDir()

	path, err := CreateSQLMigration(dir, "Add Plan Ratings")
	if err != nil {
		t.Fatalf("create migration: %v", err)
	}
	if !strings.HasSuffix(path, "_add_plan_ratings.sql") {
		t.Fatalf("unexpected filename: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	if !strings.Contains(string(data), "-- +goose Up") || !strings.Contains(string(data), "-- +goose Down") {
		t.Fatalf("template missing goose markers:\n%s", data)
	}

	if _, err := CreateSQLMigration(dir, ""); err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestValidateDirReportsAllProblems(t *testing.T) {
	dir := t.TempDir()

	writeFile := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	writeFile("bad-name.sql", "-- +goose Up\n-- +goose Down\n")
	writeFile("20250812100000_missing_down.sql", "-- +goose Up\n")

	err := ValidateDir(dir)
	if err == nil {
		t.Fatal("expected validation errors")
	}
	msg := err.Error()
	if !strings.Contains(msg, "bad-name.sql") {
		t.Fatalf("missing filename problem in: %s", msg)
	}
	if !strings.Contains(msg, "missing_down") {
		t.Fatalf("missing header problem in: %s", msg)
	}
}

func TestRepositoryMigrationsAreValid(t *testing.T) {
	if err := ValidateDir(filepath.Join("..", "..", "db", "migrations")); err != nil {
		t.Fatalf("repository migrations invalid: %v", err)
	}
}
