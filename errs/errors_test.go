package errs

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	t.Run("args are formatted into the message", func(t *testing.T) {
		err := ErrUnknownFlag.WithArgs("--env", "deploy")
		assert.Equal(t, `flag "--env" not found in command "deploy"`, err.Error())
		assert.Equal(t, ErrUnknownFlagKey, err.Key())
		assert.Equal(t, []interface{}{"--env", "deploy"}, err.Args())
	})

	t.Run("sentinels are not modified by WithArgs or Wrap", func(t *testing.T) {
		_ = ErrFlagConflict.WithArgs("--a", "--b").Wrap(errors.New("boom"))
		assert.Nil(t, ErrFlagConflict.Args())
		assert.Nil(t, ErrFlagConflict.Unwrap())
	})

	t.Run("errors.Is matches the originating sentinel only", func(t *testing.T) {
		err := ErrTypeMismatch.WithArgs("--n", "number", "string")
		assert.True(t, errors.Is(err, ErrTypeMismatch))
		assert.False(t, errors.Is(err, ErrUnknownFlag))
	})

	t.Run("wrapped causes stay reachable", func(t *testing.T) {
		cause := ErrThreadImport.WithArgs("workers/missing")
		err := ErrThreadFailed.WithArgs(1, "--build").Wrap(cause)
		assert.True(t, errors.Is(err, ErrThreadFailed))
		assert.True(t, errors.Is(err, ErrThreadImport))
		assert.Equal(t, `thread 1 of flag "--build" failed: import of thread module "workers/missing" failed`, err.Error())
	})

	t.Run("errors wrapped by fmt keep their identity", func(t *testing.T) {
		err := fmt.Errorf("run: %w", ErrMissingCommand)
		assert.True(t, errors.Is(err, ErrMissingCommand))
	})
}

func TestCategory(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category Category
	}{
		{"reserved", ErrReservedIdentifier.WithArgs("help"), CategorySpecification},
		{"duplicate flag", ErrDuplicateFlag.WithArgs("--a"), CategoryParse},
		{"conflict", ErrFlagConflict.WithArgs("--a", "--b"), CategoryValidation},
		{"callback", ErrCallback.WithArgs("--a").Wrap(errors.New("x")), CategoryCallback},
		{"wrapped by fmt", fmt.Errorf("outer: %w", ErrTypeMismatch), CategoryValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, IsCategory(tt.err, tt.category))
			c, ok := CategoryOf(tt.err)
			assert.True(t, ok)
			assert.Equal(t, tt.category, c)
		})
	}

	_, ok := CategoryOf(errors.New("plain"))
	assert.False(t, ok)
	assert.Equal(t, "validation", CategoryValidation.String())
}

func TestFormatKeepsStack(t *testing.T) {
	err := ErrCallback.WithArgs("--a").Wrap(pkgerrors.New("inner"))
	assert.Equal(t, `callback of "--a" failed: inner`, fmt.Sprintf("%v", err))
	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, `callback of "--a" failed: inner`)
	assert.Contains(t, detailed, "TestFormatKeepsStack")
}
