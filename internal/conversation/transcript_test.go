package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscript_SeedsWithTopic(t *testing.T) {
	tr := NewTranscript("Допустим ли ананас на пицце?")

	entries := tr.Entries()
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Speaker, "тема не принадлежит ни одному участнику")
	assert.Equal(t, "Допустим ли ананас на пицце?", entries[0].Text)
	assert.Equal(t, 0, tr.Len())
}

func TestTranscript_AppendOnly(t *testing.T) {
	tr := NewTranscript("тема")

	tr.Append(Turn{Speaker: "Оптимист", Text: "первая"})
	tr.Append(Turn{Speaker: "Скептик", Text: "вторая"})

	entries := tr.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "Оптимист", entries[1].Speaker)
	assert.Equal(t, "первая", entries[1].Text)
	assert.Equal(t, "Скептик", entries[2].Speaker)
	assert.Equal(t, "вторая", entries[2].Text)

	last, ok := tr.Last()
	require.True(t, ok)
	assert.Equal(t, "вторая", last.Text)
}

func TestTranscript_IgnoresEmptyTurn(t *testing.T) {
	tr := NewTranscript("тема")

	tr.Append(Turn{Speaker: "Оптимист", Text: ""})
	assert.Equal(t, 0, tr.Len())

	_, ok := tr.Last()
	assert.False(t, ok)
}

func TestTranscript_EntriesIsSnapshot(t *testing.T) {
	tr := NewTranscript("тема")
	tr.Append(Turn{Speaker: "Оптимист", Text: "реплика"})

	entries := tr.Entries()
	entries[1].Text = "подменили"

	fresh := tr.Entries()
	assert.Equal(t, "реплика", fresh[1].Text, "снимок не должен влиять на стенограмму")
}
