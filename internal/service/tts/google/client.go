package google

import (
	"AIDebate/internal/persona"
	"context"
	"strings"
	"time"

	gctts "cloud.google.com/go/texttospeech/apiv1"
	ttspb "cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"go.uber.org/zap"
)

// Client реализует синтез речи через Google Cloud Text-to-Speech.
type Client struct {
	logger *zap.SugaredLogger
}

func New(logger *zap.SugaredLogger) *Client {
	return &Client{logger: logger}
}

// Synthesize выполняет запрос к Google TTS и возвращает MP3-байты.
func (c *Client) Synthesize(ctx context.Context, text string, voice persona.VoiceProfile) ([]byte, error) {
	// Создаём клиента SDK (ключ берётся из GOOGLE_APPLICATION_CREDENTIALS)
	ttsClient, err := gctts.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	defer ttsClient.Close()

	req := &ttspb.SynthesizeSpeechRequest{
		Input: &ttspb.SynthesisInput{
			InputSource: &ttspb.SynthesisInput_Text{Text: text},
		},
		Voice: &ttspb.VoiceSelectionParams{
			LanguageCode: voice.Language,
			Name:         voice.Voice, // поддержка Standard/Wavenet голосов
			SsmlGender:   ssmlGender(voice.Gender),
		},
		// Только MP3
		AudioConfig: &ttspb.AudioConfig{
			AudioEncoding: ttspb.AudioEncoding_MP3,
			SpeakingRate:  voice.SpeakingRate,
			Pitch:         voice.Pitch,
			VolumeGainDb:  voice.VolumeGainDb,
		},
	}

	started := time.Now()
	resp, err := ttsClient.SynthesizeSpeech(ctx, req)
	if err != nil {
		return nil, err
	}
	if c.logger != nil {
		c.logger.Infow("Google TTS synthesize completed", "took", time.Since(started).String())
	}
	return resp.GetAudioContent(), nil
}

func ssmlGender(g string) ttspb.SsmlVoiceGender {
	switch strings.ToLower(strings.TrimSpace(g)) {
	case "male":
		return ttspb.SsmlVoiceGender_MALE
	case "female":
		return ttspb.SsmlVoiceGender_FEMALE
	case "neutral":
		return ttspb.SsmlVoiceGender_NEUTRAL
	default:
		return ttspb.SsmlVoiceGender_SSML_VOICE_GENDER_UNSPECIFIED
	}
}
