package ai

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubCompleter_FragmentsConcatenateToResult(t *testing.T) {
	stub := &StubCompleter{Reply: "раз два три"}

	var frags []string
	text, err := stub.Complete(context.Background(), nil, func(d string) {
		frags = append(frags, d)
	})
	require.NoError(t, err)

	assert.Equal(t, "раз два три", text)
	assert.Greater(t, len(frags), 1, "ответ должен приходить по частям")
	assert.Equal(t, text, strings.Join(frags, ""))
}
