package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	// Test to ensure all base error types are defined properly
	if ErrMissingParameters.Error() != "request didn't contain obligatory parameters" {
		t.Errorf("ErrMissingParameters has unexpected message: %s", ErrMissingParameters.Error())
	}
	if ErrPersonLocked.Error() != "person is locked, try later" {
		t.Errorf("ErrPersonLocked has unexpected message: %s", ErrPersonLocked.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"MissingParameters", ErrMissingParameters, 4001},
		{"InvalidPersonID", ErrInvalidPersonID, 4002},
		{"PersonNotFound", ErrPersonNotFound, 4040},
		{"PersonLocked", ErrPersonLocked, 4230},
		{"StoreUnavailable", ErrStoreUnavailable, 5030},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrPersonNotFound), 4040},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestLockError(t *testing.T) {
	lockErr := NewLockError(42)

	expectedMsg := "person 42 is locked, try later"
	if lockErr.Error() != expectedMsg {
		t.Errorf("LockError.Error() = %s, want %s", lockErr.Error(), expectedMsg)
	}

	if !errors.Is(lockErr, ErrPersonLocked) {
		t.Error("LockError should match ErrPersonLocked via errors.Is")
	}

	if !IsLockedError(lockErr) {
		t.Error("IsLockedError should report true for a LockError")
	}
	if IsNotFoundError(lockErr) {
		t.Error("IsNotFoundError should report false for a LockError")
	}
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection refused")
	storeErr := NewStoreError("redis", "isLocked", cause)

	expectedMsg := "redis unavailable during isLocked: connection refused"
	if storeErr.Error() != expectedMsg {
		t.Errorf("StoreError.Error() = %s, want %s", storeErr.Error(), expectedMsg)
	}

	if !errors.Is(storeErr, ErrStoreUnavailable) {
		t.Error("StoreError should match ErrStoreUnavailable via errors.Is")
	}
	if !errors.Is(storeErr, cause) {
		t.Error("StoreError should unwrap to its cause")
	}

	if !IsStoreUnavailableError(storeErr) {
		t.Error("IsStoreUnavailableError should report true for a StoreError")
	}

	var typed *StoreError
	if !errors.As(storeErr, &typed) {
		t.Fatal("errors.As should extract a *StoreError")
	}
	fields := typed.LogFields()
	if fields["store"] != "redis" || fields["operation"] != "isLocked" {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestIsInvalidInputError(t *testing.T) {
	if !IsInvalidInputError(ErrInvalidPersonData) {
		t.Error("IsInvalidInputError should report true for ErrInvalidPersonData")
	}
	if !IsInvalidInputError(ErrInvalidPersonID) {
		t.Error("IsInvalidInputError should report true for ErrInvalidPersonID")
	}
	if !IsInvalidInputError(fmt.Errorf("%w: name must not be empty", ErrInvalidPersonData)) {
		t.Error("IsInvalidInputError should see through wrapped errors")
	}
	if IsInvalidInputError(ErrPersonNotFound) {
		t.Error("IsInvalidInputError should report false for ErrPersonNotFound")
	}
	if IsInvalidInputError(NewStoreError("redis", "lock", errors.New("down"))) {
		t.Error("IsInvalidInputError should report false for a StoreError")
	}
}
