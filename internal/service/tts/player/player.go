package player

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// Player воспроизводит сохранённый аудиофайл по пути.
type Player interface {
	Play(path string) error
}

// Beep воспроизводит файл внутри процесса через faiface/beep (mp3 и wav,
// формат определяется по расширению).
type Beep struct{ volumeDB float64 }

// NewBeep создаёт плеер без изменения громкости (0 dB).
func NewBeep() *Beep { return &Beep{volumeDB: 0} }

// NewBeepWithVolume создаёт плеер с предустановленной громкостью в dB (отрицательные — тише).
func NewBeepWithVolume(db float64) *Beep { return &Beep{volumeDB: db} }

func (b *Beep) Play(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "wav":
		streamer, format, derr := wav.Decode(f)
		if derr != nil {
			return derr
		}
		defer streamer.Close()
		return playStreamer(streamer, format, b.volumeDB)
	case "mp3", "":
		streamer, format, derr := mp3.Decode(f)
		if derr != nil {
			return derr
		}
		defer streamer.Close()
		return playStreamer(streamer, format, b.volumeDB)
	default:
		return errors.New("unsupported format for direct playback; use mp3 or wav")
	}
}

func playStreamer(streamer beep.StreamSeekCloser, format beep.Format, volDB float64) error {
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return err
	}
	vol := &effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   volDB,
		Silent:   false,
	}
	done := make(chan struct{})
	speaker.Play(beep.Seq(vol, beep.Callback(func() { close(done) })))
	<-done
	return nil
}
