package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Store сохраняет аудиофайлы реплик в уникальную директорию запуска:
// {base}/{uuid}/NNN-speaker.mp3. Монотонный счётчик плюс уникальная
// директория исключают коллизии имён; файлы никогда не перезаписываются
// и не читаются обратно.
type Store struct {
	dir string

	mu  sync.Mutex
	seq int
}

// NewStore создаёт директорию сессии внутри base (по умолчанию audio).
func NewStore(base string) (*Store, error) {
	if base == "" {
		base = "audio"
	}
	dir := filepath.Join(base, uuid.NewString())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Dir возвращает директорию текущей сессии.
func (s *Store) Dir() string { return s.dir }

// Save записывает data в следующий по счёту файл и возвращает его путь.
func (s *Store) Save(speaker string, data []byte) (string, error) {
	s.mu.Lock()
	s.seq++
	n := s.seq
	s.mu.Unlock()

	name := fmt.Sprintf("%03d-%s.mp3", n, sanitize(speaker))
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// sanitize убирает из имени участника символы, неудобные для файловой системы.
func sanitize(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "unknown"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
}
