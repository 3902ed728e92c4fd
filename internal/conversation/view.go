package conversation

import (
	"AIDebate/internal/persona"
)

// Role — роль сообщения в запросе к AI-провайдеру.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message — одно role-tagged сообщение запроса. Запрос собирается заново
// на каждый ход и нигде не сохраняется.
type Message struct {
	Role Role
	Text string
}

// Дополнение к теме для второго участника: явное приглашение спорить.
const argueSuffix = " Выскажи своё мнение и оспорь позицию собеседника."

// ViewBuilder проецирует общую стенограмму в персональный взгляд участника:
// каждый видит собеседника как «пользователя». Правила для первого и второго
// участника намеренно несимметричны — это поведение унаследовано от
// действующего продукта и сохраняется как есть (см. DESIGN.md).
type ViewBuilder struct {
	reg *persona.Registry
}

func NewViewBuilder(reg *persona.Registry) *ViewBuilder {
	return &ViewBuilder{reg: reg}
}

// Build собирает последовательность сообщений для хода участника target.
// Системное сообщение всегда первое; самая свежая реплика собеседника —
// всегда последняя.
func (b *ViewBuilder) Build(t *Transcript, target persona.Persona) []Message {
	if target.Name == b.reg.First().Name {
		return b.buildFirst(t, target)
	}
	return b.buildSecond(t, target)
}

// buildFirst: все записи стенограммы, включая собственные реплики участника,
// помечаются ролью user. Собственное авторство при этом теряется — так ведёт
// себя действующий продукт, не исправляем без подтверждения.
func (b *ViewBuilder) buildFirst(t *Transcript, target persona.Persona) []Message {
	msgs := []Message{{Role: RoleSystem, Text: target.Instruction}}
	for _, e := range t.Entries() {
		msgs = append(msgs, Message{Role: RoleUser, Text: e.Text})
	}
	return msgs
}

// buildSecond: тема с приглашением спорить, затем обход реплик с корректной
// атрибуцией (свои — assistant, чужие — user), и в конце последняя реплика
// собеседника дублируется отдельным user-сообщением, чтобы модель видела её
// самой свежей.
func (b *ViewBuilder) buildSecond(t *Transcript, target persona.Persona) []Message {
	msgs := []Message{{Role: RoleSystem, Text: target.Instruction}}
	msgs = append(msgs, Message{Role: RoleUser, Text: t.Topic() + argueSuffix})

	var lastOpponent string
	for _, e := range t.Entries()[1:] {
		role := RoleUser
		if e.Speaker == target.Name {
			role = RoleAssistant
		} else {
			lastOpponent = e.Text
		}
		msgs = append(msgs, Message{Role: role, Text: e.Text})
	}
	if lastOpponent != "" {
		msgs = append(msgs, Message{Role: RoleUser, Text: lastOpponent})
	}
	return msgs
}
