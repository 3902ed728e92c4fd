package main

import (
	"AIDebate/internal/ai"
	"AIDebate/internal/app/debate"
	"AIDebate/internal/config"
	"AIDebate/internal/persona"
	"AIDebate/internal/service/audio"
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/openai/openai-go/v3"
	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()
	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx := context.Background()

	sugar.Infow(
		"Starting app",
		"DebugMode", cfg.DebugMode,
		"Model", cfg.Model,
	)

	reg := persona.NewRegistry(
		persona.Persona{
			Name:        cfg.First.Name,
			Instruction: cfg.First.Prompt,
			Voice: persona.VoiceProfile{
				Language:     cfg.First.Language,
				Voice:        cfg.First.Voice,
				Gender:       cfg.First.Gender,
				SpeakingRate: cfg.First.SpeakingRate,
				Pitch:        cfg.First.Pitch,
				VolumeGainDb: cfg.First.VolumeGainDb,
			},
		},
		persona.Persona{
			Name:        cfg.Second.Name,
			Instruction: cfg.Second.Prompt,
			Voice: persona.VoiceProfile{
				Language:     cfg.Second.Language,
				Voice:        cfg.Second.Voice,
				Gender:       cfg.Second.Gender,
				SpeakingRate: cfg.Second.SpeakingRate,
				Pitch:        cfg.Second.Pitch,
				VolumeGainDb: cfg.Second.VolumeGainDb,
			},
		},
	)

	// В режиме дебага реальных запросов к OpenAI нет
	var completer ai.Completer
	if cfg.DebugMode {
		completer = ai.NewStubCompleter()
	} else {
		oClient := openai.NewClient() // ключ берётся из OPENAI_API_KEY
		completer = ai.NewChatClient(&oClient, openai.ChatModel(cfg.Model))
	}

	store, err := audio.NewStore(cfg.AudioDir)
	if err != nil {
		sugar.Errorw("Не удалось создать директорию для аудио", "dir", cfg.AudioDir, "error", err)
		return
	}

	in := bufio.NewScanner(os.Stdin)
	topic := promptTopic(in)
	if topic == "" {
		// EOF до ввода темы
		return
	}
	exchanges := promptExchanges(in, cfg.Exchanges)

	loop := debate.New(cfg, reg, completer, store, os.Stdout, sugar)
	if _, err := loop.Run(ctx, topic, exchanges); err != nil {
		sugar.Errorw("Спор завершился с ошибкой", "error", err)
	}
}

// promptTopic запрашивает тему спора, пока не получит непустую строку.
func promptTopic(in *bufio.Scanner) string {
	for {
		fmt.Print("Тема спора: ")
		if !in.Scan() {
			return ""
		}
		if s := strings.TrimSpace(in.Text()); s != "" {
			return s
		}
		fmt.Println("Тема не может быть пустой.")
	}
}

// promptExchanges запрашивает число обменов; пустой или некорректный ввод
// молча заменяется значением по умолчанию.
func promptExchanges(in *bufio.Scanner, def int) int {
	fmt.Printf("Число обменов репликами [%d]: ", def)
	if !in.Scan() {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(in.Text()))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
