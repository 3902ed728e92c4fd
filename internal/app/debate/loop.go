package debate

import (
	"AIDebate/internal/ai"
	"AIDebate/internal/config"
	"AIDebate/internal/conversation"
	"AIDebate/internal/persona"
	"AIDebate/internal/service/audio"
	"AIDebate/internal/service/tts"
	"AIDebate/internal/service/tts/google"
	"AIDebate/internal/service/tts/player"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Loop проводит спор: заданное число раундов «первый — второй»,
// начиная с темы. Выполнение строго последовательное: ход участника
// целиком (поток, синтез, воспроизведение) завершается до следующего.
type Loop struct {
	reg    *persona.Registry
	exec   *Executor
	store  *audio.Store
	out    io.Writer
	logger *zap.SugaredLogger
}

// New собирает цикл спора. Синтезатор и плеер выбираются один раз при старте:
// в режиме дебага голос выключен целиком, при -disable-playback файлы
// сохраняются, но не проигрываются.
func New(cfg *config.Config, reg *persona.Registry, completer ai.Completer, store *audio.Store, out io.Writer, logger *zap.SugaredLogger) *Loop {
	var ply player.Player
	playerName := strings.ToLower(strings.TrimSpace(cfg.Player))
	switch {
	case cfg.DebugMode || cfg.DisablePlayback:
		ply = player.NewDisabled(logger)
		playerName = "disabled"
	case playerName == "beep":
		ply = player.NewBeep()
	default:
		ply = player.NewSystem(logger)
		playerName = "system"
	}

	var synth tts.Synthesizer
	if !cfg.DebugMode {
		synth = google.New(logger)
	}
	logger.Infow("Player selected", "player", playerName, "voice", synth != nil)

	views := conversation.NewViewBuilder(reg)
	exec := NewExecutor(views, completer, synth, store, ply, out, logger)
	return &Loop{reg: reg, exec: exec, store: store, out: out, logger: logger}
}

// Run выполняет exchanges раундов и возвращает итоговую стенограмму.
func (l *Loop) Run(ctx context.Context, topic string, exchanges int) (*conversation.Transcript, error) {
	t := conversation.NewTranscript(topic)
	first, second := l.reg.First(), l.reg.Second()

	for round := 1; round <= exchanges; round++ {
		// Ход первого: результат добавляется безусловно, сентинель тоже —
		// отказ первого участника раунд не прерывает.
		turn, err := l.exec.Execute(ctx, first, t)
		if err != nil {
			l.logger.Errorw("Участник не смог ответить", "persona", first.Name, "round", round, "error", err)
		}
		t.Append(turn)

		// Ход второго: отказ или пустой ответ завершают спор,
		// сломанная реплика в стенограмму не попадает.
		turn, err = l.exec.Execute(ctx, second, t)
		if err != nil || turn.Text == "" {
			l.logger.Errorw("Спор остановлен: участник не смог ответить", "persona", second.Name, "round", round, "error", err)
			fmt.Fprintf(l.out, "\nСпор прерван: %s не смог ответить.\n", second.Name)
			return t, err
		}
		t.Append(turn)
	}

	l.logger.Infow("Спор завершён", "rounds", exchanges, "turns", t.Len(), "audioDir", l.store.Dir())
	fmt.Fprintf(l.out, "\nСпор завершён. Аудиофайлы сохранены в %s\n", l.store.Dir())
	return t, nil
}
