package debate

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"AIDebate/internal/conversation"
	"AIDebate/internal/persona"
	"AIDebate/internal/service/audio"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeCompleter отдаёт заранее заданные ответы пофрагментно; по желанию
// падает на выбранных по счёту вызовах.
type fakeCompleter struct {
	replies []string
	errs    []error
	calls   int
	seen    [][]conversation.Message
}

func (f *fakeCompleter) Complete(_ context.Context, msgs []conversation.Message, onDelta func(string)) (string, error) {
	i := f.calls
	f.calls++
	f.seen = append(f.seen, msgs)
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	reply := ""
	if i < len(f.replies) {
		reply = f.replies[i]
	}
	// отдаём ответ двумя кусками, как настоящий поток
	half := len(reply) / 2
	for _, frag := range []string{reply[:half], reply[half:]} {
		if frag != "" && onDelta != nil {
			onDelta(frag)
		}
	}
	return reply, nil
}

type fakeSynth struct {
	data  []byte
	err   error
	calls int
}

func (f *fakeSynth) Synthesize(_ context.Context, _ string, _ persona.VoiceProfile) ([]byte, error) {
	f.calls++
	return f.data, f.err
}

type fakePlayer struct {
	played []string
	err    error
}

func (f *fakePlayer) Play(path string) error {
	f.played = append(f.played, path)
	return f.err
}

func testPersonas() (*persona.Registry, persona.Persona, persona.Persona) {
	first := persona.Persona{Name: "Оптимист", Instruction: "ты оптимист"}
	second := persona.Persona{Name: "Скептик", Instruction: "ты скептик"}
	return persona.NewRegistry(first, second), first, second
}

func newTestExecutor(t *testing.T, completer *fakeCompleter, synth *fakeSynth, ply *fakePlayer, out *bytes.Buffer) (*Executor, *audio.Store) {
	t.Helper()
	reg, _, _ := testPersonas()
	store, err := audio.NewStore(t.TempDir())
	require.NoError(t, err)
	views := conversation.NewViewBuilder(reg)
	return NewExecutor(views, completer, synth, store, ply, out, zap.NewNop().Sugar()), store
}

func TestExecutor_StreamsFragmentsAndReturnsTurn(t *testing.T) {
	completer := &fakeCompleter{replies: []string{"ананас уместен"}}
	synth := &fakeSynth{data: []byte("mp3")}
	ply := &fakePlayer{}
	out := &bytes.Buffer{}
	exec, _ := newTestExecutor(t, completer, synth, ply, out)

	_, first, _ := testPersonas()
	tr := conversation.NewTranscript("тема")

	turn, err := exec.Execute(context.Background(), first, tr)
	require.NoError(t, err)
	assert.Equal(t, conversation.Turn{Speaker: "Оптимист", Text: "ананас уместен"}, turn)

	// фрагменты попали в вывод по мере прихода, вместе с именем участника
	assert.Contains(t, out.String(), "Оптимист: ")
	assert.Contains(t, out.String(), "ананас уместен")

	// реплика озвучена и проиграна
	assert.Equal(t, 1, synth.calls)
	require.Len(t, ply.played, 1)
	data, rerr := os.ReadFile(ply.played[0])
	require.NoError(t, rerr)
	assert.Equal(t, []byte("mp3"), data)

	// стенограмму исполнитель не трогает — это забота вызывающего
	assert.Equal(t, 0, tr.Len())
}

func TestExecutor_ProviderErrorYieldsSentinel(t *testing.T) {
	completer := &fakeCompleter{errs: []error{errors.New("rate limited")}}
	synth := &fakeSynth{}
	ply := &fakePlayer{}
	exec, _ := newTestExecutor(t, completer, synth, ply, &bytes.Buffer{})

	_, first, _ := testPersonas()
	tr := conversation.NewTranscript("тема")

	turn, err := exec.Execute(context.Background(), first, tr)
	require.Error(t, err)
	assert.Contains(t, turn.Text, "Оптимист")
	assert.Contains(t, turn.Text, "не смог")
	assert.Equal(t, "Оптимист", turn.Speaker)

	// при отказе провайдера озвучки нет
	assert.Equal(t, 0, synth.calls)
	assert.Empty(t, ply.played)
}

func TestExecutor_SynthesisFailureDoesNotFailTurn(t *testing.T) {
	completer := &fakeCompleter{replies: []string{"текст реплики"}}
	synth := &fakeSynth{err: errors.New("quota exceeded")}
	ply := &fakePlayer{}
	exec, _ := newTestExecutor(t, completer, synth, ply, &bytes.Buffer{})

	_, first, _ := testPersonas()
	tr := conversation.NewTranscript("тема")

	turn, err := exec.Execute(context.Background(), first, tr)
	require.NoError(t, err)
	assert.Equal(t, "текст реплики", turn.Text)
	assert.Empty(t, ply.played)
}

func TestExecutor_PlaybackFailureDoesNotFailTurn(t *testing.T) {
	completer := &fakeCompleter{replies: []string{"текст реплики"}}
	synth := &fakeSynth{data: []byte("mp3")}
	ply := &fakePlayer{err: errors.New("no audio device")}
	exec, _ := newTestExecutor(t, completer, synth, ply, &bytes.Buffer{})

	_, first, _ := testPersonas()
	tr := conversation.NewTranscript("тема")

	turn, err := exec.Execute(context.Background(), first, tr)
	require.NoError(t, err)
	assert.Equal(t, "текст реплики", turn.Text)
}

func TestExecutor_NilSynthesizerSkipsVoice(t *testing.T) {
	completer := &fakeCompleter{replies: []string{"текст"}}
	ply := &fakePlayer{}
	out := &bytes.Buffer{}

	reg, first, _ := testPersonas()
	store, err := audio.NewStore(t.TempDir())
	require.NoError(t, err)
	exec := NewExecutor(conversation.NewViewBuilder(reg), completer, nil, store, ply, out, zap.NewNop().Sugar())

	turn, err := exec.Execute(context.Background(), first, conversation.NewTranscript("тема"))
	require.NoError(t, err)
	assert.Equal(t, "текст", turn.Text)
	assert.Empty(t, ply.played)
}
