package guard_test

import (
	"errors"
	"testing"

	"paperwork/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("quote command not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

// TestConstructorGuardEmbedded shows the guard embedded in a command-like value.
func TestConstructorGuardEmbedded(t *testing.T) {
	errNoteNotConstructed := errors.New("adminNote must be created via newAdminNote")

	type adminNote struct {
		text  string
		guard guard.ConstructorGuard
	}

	newAdminNote := func(text string) (adminNote, error) {
		if text == "" {
			return adminNote{}, errors.New("note text is required")
		}
		return adminNote{text: text, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_passes", func(t *testing.T) {
		note, err := newAdminNote("customer called back")

		require.NoError(t, err)
		require.NoError(t, note.guard.Validate(errNoteNotConstructed))
		assert.Equal(t, "customer called back", note.text)
	})

	t.Run("literal_value_fails", func(t *testing.T) {
		note := adminNote{text: "bypassed"}

		assert.Equal(t, errNoteNotConstructed, note.guard.Validate(errNoteNotConstructed))
	})

	t.Run("constructor_rules_still_apply", func(t *testing.T) {
		_, err := newAdminNote("")

		require.Error(t, err)
	})
}
