package ai

import (
	"AIDebate/internal/conversation"
	"context"
)

// Completer интерфейс потоковой генерации текста. Все реализации должны быть
// взаимозаменяемыми. Каждый полученный фрагмент передаётся в onDelta в порядке
// прихода; по завершении потока возвращается полный накопленный текст.
type Completer interface {
	Complete(ctx context.Context, messages []conversation.Message, onDelta func(string)) (string, error)
}
