package errs_test

import (
	"errors"
	"testing"

	"meddrone/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("deliveryId", "123")

		assert.Equal(t, "deliveryId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("deliveryId", "123", cause)

		assert.Equal(t, "deliveryId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: deliveryId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("classified via errors.Is", func(t *testing.T) {
		var err error = errs.NewObjectNotFoundError("droneId", "456")
		assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
		assert.False(t, errors.Is(err, errs.ErrStateConflict))
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("priority")

		assert.Equal(t, "priority", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: priority", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("priority", cause)

		assert.Equal(t, "priority", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: priority (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("batteryLevel", 150, 0, 100)

		assert.Equal(t, "batteryLevel", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is batteryLevel, min value is 0, max value is 100", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("batteryLevel", -5, 0, 100, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is batteryLevel, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("hospitalId")

		assert.Equal(t, "hospitalId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: hospitalId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("hospitalId", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: hospitalId (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestPermissionDeniedError(t *testing.T) {
	t.Run("NewPermissionDeniedError", func(t *testing.T) {
		err := errs.NewPermissionDeniedError("only the requester or an admin can cancel")

		assert.Equal(t, "only the requester or an admin can cancel", err.Details)
		require.NoError(t, err.Cause)
		assert.Equal(t, "permission denied: only the requester or an admin can cancel", err.Error())
		assert.Equal(t, errs.ErrPermissionDenied, err.Unwrap())
	})

	t.Run("NewPermissionDeniedErrorWithCause", func(t *testing.T) {
		cause := errors.New("role mismatch")
		err := errs.NewPermissionDeniedErrorWithCause("access denied", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "permission denied: access denied (cause: role mismatch)", err.Error())
	})
}

func TestStateConflictError(t *testing.T) {
	t.Run("NewStateConflictError", func(t *testing.T) {
		err := errs.NewStateConflictError("cannot cancel delivery in current status")

		assert.Equal(t, "cannot cancel delivery in current status", err.Details)
		require.NoError(t, err.Cause)
		assert.Equal(t, "state conflict: cannot cancel delivery in current status", err.Error())
		assert.Equal(t, errs.ErrStateConflict, err.Unwrap())
	})

	t.Run("NewStateConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("status is delivered")
		err := errs.NewStateConflictErrorWithCause("delivery is not pending", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "state conflict: delivery is not pending (cause: status is delivered)", err.Error())
	})
}

func TestResourceExhaustedError(t *testing.T) {
	t.Run("NewResourceExhaustedError", func(t *testing.T) {
		err := errs.NewResourceExhaustedError("no available drones")

		assert.Equal(t, "no available drones", err.Details)
		require.NoError(t, err.Cause)
		assert.Equal(t, "resource exhausted: no available drones", err.Error())
		assert.Equal(t, errs.ErrResourceExhausted, err.Unwrap())
	})

	t.Run("NewResourceExhaustedErrorWithCause", func(t *testing.T) {
		cause := errors.New("all drones in maintenance")
		err := errs.NewResourceExhaustedErrorWithCause("no available drones", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "resource exhausted: no available drones (cause: all drones in maintenance)", err.Error())
	})
}

func TestUnauthenticatedError(t *testing.T) {
	t.Run("NewUnauthenticatedError", func(t *testing.T) {
		err := errs.NewUnauthenticatedError("missing bearer token")

		assert.Equal(t, "missing bearer token", err.Details)
		require.NoError(t, err.Cause)
		assert.Equal(t, "caller is not authenticated: missing bearer token", err.Error())
		assert.Equal(t, errs.ErrUnauthenticated, err.Unwrap())
	})

	t.Run("NewUnauthenticatedErrorWithCause", func(t *testing.T) {
		cause := errors.New("token is expired")
		err := errs.NewUnauthenticatedErrorWithCause("invalid token", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "caller is not authenticated: invalid token (cause: token is expired)", err.Error())
	})

	t.Run("classified via errors.Is", func(t *testing.T) {
		var err error = errs.NewUnauthenticatedError("no identity in request context")
		assert.True(t, errors.Is(err, errs.ErrUnauthenticated))
		assert.False(t, errors.Is(err, errs.ErrPermissionDenied))
	})
}
