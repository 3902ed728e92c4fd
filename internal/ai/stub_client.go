package ai

import (
	"AIDebate/internal/conversation"
	"context"
	"strings"
)

// StubCompleter заглушка, которая не делает реальных запросов. Используется
// в режиме дебага и в тестах: отдаёт фиксированную реплику пофрагментно.
type StubCompleter struct {
	Reply string
}

func NewStubCompleter() *StubCompleter {
	return &StubCompleter{Reply: "реплика получена, продолжаю спор"}
}

func (c *StubCompleter) Complete(_ context.Context, _ []conversation.Message, onDelta func(string)) (string, error) {
	var sb strings.Builder
	for _, word := range strings.SplitAfter(c.Reply, " ") {
		sb.WriteString(word)
		if onDelta != nil {
			onDelta(word)
		}
	}
	return sb.String(), nil
}
