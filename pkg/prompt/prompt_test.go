package prompt_test

import (
	"testing"

	"github.com/arthur-debert/igno/pkg/errors"
	"github.com/arthur-debert/igno/pkg/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoose_EmptyOptions(t *testing.T) {
	selector := prompt.NewSelector()

	_, err := selector.Choose(nil)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSelection))
}

func TestChoose_NoTerminal(t *testing.T) {
	// Under go test stdin/stdout are not terminals, so the selector
	// must refuse rather than hang on a prompt nobody can answer.
	selector := prompt.NewSelector()

	_, err := selector.Choose([]string{"Go", "Rust"})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSelection))
}
