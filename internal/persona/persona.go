package persona

// VoiceProfile — набор параметров синтеза речи для одного участника.
// Передаётся в TTS как есть, ядро его содержимое не интерпретирует.
type VoiceProfile struct {
	Language     string  // язык/локаль, напр. ru-RU
	Voice        string  // имя голоса, напр. ru-RU-Wavenet-B
	Gender       string  // подсказка пола: male|female|neutral
	SpeakingRate float64 // скорость речи (1.0 — без изменений)
	Pitch        float64 // тон в полутонах, может быть отрицательным
	VolumeGainDb float64 // усиление громкости в дБ
}

// Persona — неизменяемый участник спора: имя, системная инструкция и голос.
type Persona struct {
	Name        string
	Instruction string
	Voice       VoiceProfile
}

// Registry хранит ровно двух участников в порядке хода:
// First ходит первым в каждом раунде, Second отвечает.
type Registry struct {
	first  Persona
	second Persona
}

func NewRegistry(first, second Persona) *Registry {
	return &Registry{first: first, second: second}
}

func (r *Registry) First() Persona  { return r.first }
func (r *Registry) Second() Persona { return r.second }

// ByName возвращает участника по имени.
func (r *Registry) ByName(name string) (Persona, bool) {
	switch name {
	case r.first.Name:
		return r.first, true
	case r.second.Name:
		return r.second, true
	}
	return Persona{}, false
}
