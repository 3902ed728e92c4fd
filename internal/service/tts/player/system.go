package player

import (
	"os/exec"
	"runtime"

	"go.uber.org/zap"
)

// family — семейство ОС для выбора системной утилиты воспроизведения.
// Определяется один раз при создании плеера, дальше ветвлений нет.
type family int

const (
	familyDarwin family = iota
	familyWindows
	familyLinux
)

// System проигрывает файл внешней утилитой ОС: afplay (macOS),
// start (Windows), mpg123 (Linux и прочие).
type System struct {
	fam    family
	logger *zap.SugaredLogger
}

func NewSystem(logger *zap.SugaredLogger) *System {
	var fam family
	switch runtime.GOOS {
	case "darwin":
		fam = familyDarwin
	case "windows":
		fam = familyWindows
	default:
		fam = familyLinux
	}
	return &System{fam: fam, logger: logger}
}

func (s *System) Play(path string) error {
	var cmd *exec.Cmd
	switch s.fam {
	case familyDarwin:
		cmd = exec.Command("afplay", path)
	case familyWindows:
		cmd = exec.Command("cmd", "/C", "start", "/min", "", path)
	default:
		cmd = exec.Command("mpg123", "-q", path)
	}
	if s.logger != nil {
		s.logger.Infow("Воспроизведение", "file", path)
	}
	return cmd.Run()
}

// Disabled пропускает воспроизведение, сообщая только путь к сохранённому
// файлу. Включается флагом -disable-playback / DISABLE_PLAYBACK.
type Disabled struct {
	logger *zap.SugaredLogger
}

func NewDisabled(logger *zap.SugaredLogger) *Disabled { return &Disabled{logger: logger} }

func (d *Disabled) Play(path string) error {
	if d.logger != nil {
		d.logger.Infow("Воспроизведение отключено, файл сохранён", "file", path)
	}
	return nil
}
