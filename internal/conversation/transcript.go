package conversation

import "sync"

// Turn — одна завершённая реплика участника. После добавления не меняется.
type Turn struct {
	Speaker string
	Text    string
}

// Entry — элемент снимка стенограммы. Для темы Speaker пустой.
type Entry struct {
	Speaker string
	Text    string
}

// Transcript — единственный источник правды о споре: тема плюс
// упорядоченный append-only журнал реплик. Реплики строго чередуются,
// за порядок отвечает цикл спора; Append на всякий случай сериализован.
type Transcript struct {
	topic string
	mu    sync.Mutex
	turns []Turn
}

// NewTranscript создаёт стенограмму, засеянную темой. Тема считается
// репликой внешнего пользователя и не принадлежит ни одному участнику.
func NewTranscript(topic string) *Transcript {
	return &Transcript{topic: topic}
}

func (t *Transcript) Topic() string { return t.topic }

// Append добавляет реплику в конец журнала. Пустые реплики игнорируются.
func (t *Transcript) Append(turn Turn) {
	if turn.Text == "" {
		return
	}
	t.mu.Lock()
	t.turns = append(t.turns, turn)
	t.mu.Unlock()
}

// Len возвращает число реплик (тема не считается).
func (t *Transcript) Len() int {
	t.mu.Lock()
	l := len(t.turns)
	t.mu.Unlock()
	return l
}

// Last возвращает последнюю реплику, если она есть.
func (t *Transcript) Last() (Turn, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.turns) == 0 {
		return Turn{}, false
	}
	return t.turns[len(t.turns)-1], true
}

// Entries возвращает снимок: тема первой записью, далее реплики по порядку.
func (t *Transcript) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Entry, 0, len(t.turns)+1)
	out = append(out, Entry{Text: t.topic})
	for _, turn := range t.turns {
		out = append(out, Entry{Speaker: turn.Speaker, Text: turn.Text})
	}
	return out
}
