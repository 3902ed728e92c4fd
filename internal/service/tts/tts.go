package tts

import (
	"AIDebate/internal/persona"
	"context"
)

// Synthesizer абстракция TTS. Принимает текст и голосовой профиль участника,
// возвращает закодированное аудио (MP3). Сохранение и воспроизведение —
// забота вызывающего.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, voice persona.VoiceProfile) ([]byte, error)
}
