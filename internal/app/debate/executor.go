package debate

import (
	"AIDebate/internal/ai"
	"AIDebate/internal/conversation"
	"AIDebate/internal/persona"
	"AIDebate/internal/service/audio"
	"AIDebate/internal/service/tts"
	"AIDebate/internal/service/tts/player"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Executor выполняет один ход участника: собирает его взгляд на стенограмму,
// получает потоковый ответ модели, озвучивает и сохраняет аудио.
// Добавление реплики в стенограмму — ответственность вызывающего.
type Executor struct {
	views  *conversation.ViewBuilder
	ai     ai.Completer
	tts    tts.Synthesizer // nil — голос выключен
	store  *audio.Store
	player player.Player
	out    io.Writer
	logger *zap.SugaredLogger
}

func NewExecutor(views *conversation.ViewBuilder, completer ai.Completer, synth tts.Synthesizer, store *audio.Store, ply player.Player, out io.Writer, logger *zap.SugaredLogger) *Executor {
	return &Executor{
		views:  views,
		ai:     completer,
		tts:    synth,
		store:  store,
		player: ply,
		out:    out,
		logger: logger,
	}
}

// Execute выполняет ход участника p. Фрагменты ответа выводятся по мере
// прихода. При ошибке провайдера возвращается сентинельная реплика, текст
// которой явно помечает отказ участника, вместе с самой ошибкой; повторов нет.
func (e *Executor) Execute(ctx context.Context, p persona.Persona, t *conversation.Transcript) (conversation.Turn, error) {
	msgs := e.views.Build(t, p)

	fmt.Fprintf(e.out, "\n%s: ", p.Name)
	text, err := e.ai.Complete(ctx, msgs, func(delta string) {
		fmt.Fprint(e.out, delta)
	})
	fmt.Fprintln(e.out)
	if err != nil {
		sentinel := conversation.Turn{
			Speaker: p.Name,
			Text:    fmt.Sprintf("[%s не смог продолжить спор]", p.Name),
		}
		return sentinel, err
	}

	if text != "" {
		e.voice(ctx, p, text)
	}
	return conversation.Turn{Speaker: p.Name, Text: text}, nil
}

// voice — best-effort озвучка: ошибки синтеза, сохранения и воспроизведения
// логируются и не влияют на результат хода.
func (e *Executor) voice(ctx context.Context, p persona.Persona, text string) {
	if e.tts == nil {
		return
	}
	data, err := e.tts.Synthesize(ctx, text, p.Voice)
	if err != nil {
		e.logger.Warnw("Не удалось синтезировать речь", "persona", p.Name, "error", err)
		return
	}
	path, err := e.store.Save(p.Name, data)
	if err != nil {
		e.logger.Warnw("Не удалось сохранить аудиофайл", "persona", p.Name, "error", err)
		return
	}
	if perr := e.player.Play(path); perr != nil {
		e.logger.Warnw("Не удалось воспроизвести аудио", "file", path, "error", perr)
	}
}
