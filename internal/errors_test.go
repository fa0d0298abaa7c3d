package internal

import (
	"errors"
	"strings"
	"testing"
)

func TestStoreError(t *testing.T) {
	inner := errors.New("database is locked")
	err := &StoreError{Op: "insert", Err: inner}

	if !strings.Contains(err.Error(), "insert") {
		t.Errorf("Error() = %q, missing op", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("errors.Is() does not unwrap to the inner error")
	}
}

func TestExportError(t *testing.T) {
	inner := errors.New("permission denied")
	err := &ExportError{Format: "csv", Path: "time-commander.csv", Err: inner}

	msg := err.Error()
	if !strings.Contains(msg, "csv") || !strings.Contains(msg, "time-commander.csv") {
		t.Errorf("Error() = %q, missing format or path", msg)
	}
	if !errors.Is(err, inner) {
		t.Error("errors.Is() does not unwrap to the inner error")
	}
}
