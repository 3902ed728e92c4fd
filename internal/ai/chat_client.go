package ai

import (
	"AIDebate/internal/conversation"
	"context"
	"errors"
	"strings"

	"github.com/openai/openai-go/v3"
)

// ChatClient реализует Completer поверх Chat Completions API в потоковом режиме.
type ChatClient struct {
	client *openai.Client
	model  openai.ChatModel
}

func NewChatClient(client *openai.Client, model openai.ChatModel) *ChatClient {
	if model == "" {
		model = openai.ChatModelGPT4o
	}
	return &ChatClient{client: client, model: model}
}

// Complete отправляет сообщения и вычитывает поток до конца. Фрагменты
// отдаются в onDelta по мере прихода, без буферизации.
func (c *ChatClient) Complete(ctx context.Context, messages []conversation.Message, onDelta func(string)) (string, error) {
	if c.client == nil {
		return "", errors.New("nil openai client")
	}

	params := openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: convertMessages(messages),
	}

	stream := c.client.Chat.Completions.NewStreaming(ctx, params)
	defer stream.Close()

	var sb strings.Builder
	for stream.Next() {
		chunk := stream.Current()
		if len(chunk.Choices) == 0 {
			continue
		}
		delta := chunk.Choices[0].Delta.Content
		if delta == "" {
			continue
		}
		sb.WriteString(delta)
		if onDelta != nil {
			onDelta(delta)
		}
	}
	if err := stream.Err(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func convertMessages(messages []conversation.Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case conversation.RoleSystem:
			out = append(out, openai.SystemMessage(m.Text))
		case conversation.RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Text))
		default:
			out = append(out, openai.UserMessage(m.Text))
		}
	}
	return out
}
