package config

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	DebugMode       bool   `env:"DEBUG_MODE"`       // Режим дебага: заглушка вместо OpenAI, без голоса
	Model           string `env:"OPENAI_MODEL"`     // Модель для генерации реплик
	Exchanges       int    `env:"EXCHANGES"`        // Число обменов по умолчанию, если пользователь не ввёл своё
	AudioDir        string `env:"AUDIO_DIR"`        // Базовая директория для аудиофайлов реплик
	Player          string `env:"PLAYER"`           // Способ воспроизведения: system|beep
	DisablePlayback bool   `env:"DISABLE_PLAYBACK"` // Пропускать воспроизведение, файлы всё равно сохраняются

	// Участники спора: First ходит первым в каждом раунде
	First  FirstPersonaConfig
	Second SecondPersonaConfig

	// Путь к файлу ключа сервисного аккаунта Google TTS.
	// Фактически читается из ENV GOOGLE_APPLICATION_CREDENTIALS,
	// здесь храним дефолт (service-account.json в корне проекта) для удобства.
	GoogleCredentialsPath string `env:"GOOGLE_APPLICATION_CREDENTIALS"`
}

// FirstPersonaConfig — первый участник спора и его голос.
type FirstPersonaConfig struct {
	Name         string  `env:"FIRST_NAME"`
	Prompt       string  `env:"FIRST_PROMPT"`
	Language     string  `env:"FIRST_TTS_LANGUAGE"`
	Voice        string  `env:"FIRST_TTS_VOICE"`
	Gender       string  `env:"FIRST_TTS_GENDER"`
	SpeakingRate float64 `env:"FIRST_TTS_SPEAKING_RATE"`
	Pitch        float64 `env:"FIRST_TTS_PITCH"`
	VolumeGainDb float64 `env:"FIRST_TTS_VOLUME_DB"`
}

// SecondPersonaConfig — второй участник спора и его голос.
type SecondPersonaConfig struct {
	Name         string  `env:"SECOND_NAME"`
	Prompt       string  `env:"SECOND_PROMPT"`
	Language     string  `env:"SECOND_TTS_LANGUAGE"`
	Voice        string  `env:"SECOND_TTS_VOICE"`
	Gender       string  `env:"SECOND_TTS_GENDER"`
	SpeakingRate float64 `env:"SECOND_TTS_SPEAKING_RATE"`
	Pitch        float64 `env:"SECOND_TTS_PITCH"`
	VolumeGainDb float64 `env:"SECOND_TTS_VOLUME_DB"`
}

// Defaults возвращает конфигурацию с предустановленными значениями по умолчанию.
// Эти значения перекрываются .env, переменными окружения и флагами CLI.
func Defaults() *Config {
	return &Config{
		DebugMode: false,
		Model:     "gpt-4o",
		Exchanges: 5,
		AudioDir:  "audio",
		Player:    "system", // system|beep
		First: FirstPersonaConfig{
			Name:         "Оптимист",
			Prompt:       "Ты Оптимист: доброжелательный спорщик, который в любой теме находит светлую сторону и отстаивает её с азартом. Отвечай коротко, двумя-тремя предложениями.",
			Language:     "ru-RU",
			Voice:        "ru-RU-Wavenet-B",
			Gender:       "male",
			SpeakingRate: 1.0,
			Pitch:        0.0,
			VolumeGainDb: 0.0,
		},
		Second: SecondPersonaConfig{
			Name:         "Скептик",
			Prompt:       "Ты Скептик: язвительный спорщик, который сомневается во всём и разбирает доводы собеседника по косточкам. Отвечай коротко, двумя-тремя предложениями.",
			Language:     "ru-RU",
			Voice:        "ru-RU-Wavenet-C",
			Gender:       "female",
			SpeakingRate: 1.05,
			Pitch:        -1.0,
			VolumeGainDb: 0.0,
		},
		GoogleCredentialsPath: "service-account.json",
	}
}

// NewConfig загружает конфигурацию приложения.
func NewConfig() *Config {
	_ = godotenv.Load()

	// Стартуем с дефолтов, затем перекрываем .env/окружением и флагами
	cfg := Defaults()
	_ = env.Parse(cfg)

	flag.BoolVar(&cfg.DebugMode, "debug-mode", cfg.DebugMode, "режим дебага: заглушка вместо OpenAI, без синтеза и воспроизведения")
	flag.StringVar(&cfg.Model, "model", cfg.Model, "модель OpenAI для генерации реплик")
	flag.IntVar(&cfg.Exchanges, "exchanges", cfg.Exchanges, "число обменов по умолчанию (если в консоли не введено своё)")
	flag.StringVar(&cfg.AudioDir, "audio-dir", cfg.AudioDir, "базовая директория для сохранения аудиофайлов")
	flag.StringVar(&cfg.Player, "player", cfg.Player, "способ воспроизведения: system|beep")
	flag.BoolVar(&cfg.DisablePlayback, "disable-playback", cfg.DisablePlayback, "не воспроизводить аудио (файлы всё равно сохраняются)")
	// Первый участник
	flag.StringVar(&cfg.First.Name, "first-name", cfg.First.Name, "имя первого участника")
	flag.StringVar(&cfg.First.Prompt, "first-prompt", cfg.First.Prompt, "системная инструкция первого участника")
	flag.StringVar(&cfg.First.Language, "first-tts-language", cfg.First.Language, "язык синтеза первого участника, напр. ru-RU")
	flag.StringVar(&cfg.First.Voice, "first-tts-voice", cfg.First.Voice, "имя голоса первого участника, напр. ru-RU-Wavenet-B")
	flag.StringVar(&cfg.First.Gender, "first-tts-gender", cfg.First.Gender, "пол голоса первого участника: male|female|neutral")
	flag.Float64Var(&cfg.First.SpeakingRate, "first-tts-speaking-rate", cfg.First.SpeakingRate, "скорость речи первого участника (1.0 по умолчанию)")
	flag.Float64Var(&cfg.First.Pitch, "first-tts-pitch", cfg.First.Pitch, "тон первого участника (полутоны), может быть отрицательным")
	flag.Float64Var(&cfg.First.VolumeGainDb, "first-tts-volume-db", cfg.First.VolumeGainDb, "усиление громкости первого участника (дБ)")
	// Второй участник
	flag.StringVar(&cfg.Second.Name, "second-name", cfg.Second.Name, "имя второго участника")
	flag.StringVar(&cfg.Second.Prompt, "second-prompt", cfg.Second.Prompt, "системная инструкция второго участника")
	flag.StringVar(&cfg.Second.Language, "second-tts-language", cfg.Second.Language, "язык синтеза второго участника, напр. ru-RU")
	flag.StringVar(&cfg.Second.Voice, "second-tts-voice", cfg.Second.Voice, "имя голоса второго участника, напр. ru-RU-Wavenet-C")
	flag.StringVar(&cfg.Second.Gender, "second-tts-gender", cfg.Second.Gender, "пол голоса второго участника: male|female|neutral")
	flag.Float64Var(&cfg.Second.SpeakingRate, "second-tts-speaking-rate", cfg.Second.SpeakingRate, "скорость речи второго участника (1.0 по умолчанию)")
	flag.Float64Var(&cfg.Second.Pitch, "second-tts-pitch", cfg.Second.Pitch, "тон второго участника (полутоны), может быть отрицательным")
	flag.Float64Var(&cfg.Second.VolumeGainDb, "second-tts-volume-db", cfg.Second.VolumeGainDb, "усиление громкости второго участника (дБ)")
	flag.StringVar(&cfg.GoogleCredentialsPath, "google-tts-credentials", cfg.GoogleCredentialsPath, "путь к service-account.json (также читается из ENV GOOGLE_APPLICATION_CREDENTIALS)")
	flag.Parse()

	// Валидация обязательных ключей. В режиме дебага внешние сервисы
	// не используются, поэтому проверки пропускаем.
	if !cfg.DebugMode {
		if strings.TrimSpace(os.Getenv("OPENAI_API_KEY")) == "" {
			panic(fmt.Errorf("openai: переменная окружения OPENAI_API_KEY не задана"))
		}

		// Если ENV пуст, но в конфиге указан путь к cred-файлу — устанавливаем ENV.
		cred := strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
		if cred == "" {
			if cp := strings.TrimSpace(cfg.GoogleCredentialsPath); cp != "" {
				_ = os.Setenv("GOOGLE_APPLICATION_CREDENTIALS", cp)
				cred = cp
			}
		}
		if cred == "" {
			panic(fmt.Errorf("google tts: переменная окружения GOOGLE_APPLICATION_CREDENTIALS не задана; укажите ENV или флаг -google-tts-credentials"))
		}
		if _, err := os.Stat(cred); err != nil {
			panic(fmt.Errorf("google tts: файл ключа не найден: %s", cred))
		}
	}

	return cfg
}
