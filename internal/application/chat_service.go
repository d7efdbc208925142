package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/accadex/accadex/pkg/helpers"
)

// Persona selects the instruction the chat proxy prepends to a message.
type Persona string

const (
	PersonaAICoach      Persona = "ai_coach"
	PersonaPhysician    Persona = "physician"
	PersonaHeadCoach    Persona = "head_coach"
	PersonaNutritionist Persona = "nutritionist"
)

// Personas lists every persona in display order.
var Personas = []Persona{PersonaAICoach, PersonaPhysician, PersonaHeadCoach, PersonaNutritionist}

const (
	DemoModeReply    = "AI is running in demo mode. Please configure GEMINI_API_KEY."
	UnavailableReply = "AI service is temporarily unavailable. Please try again shortly."
)

// ParsePersona maps a request value to a persona. Empty and unknown values
// fall back to the AI coach.
func ParsePersona(s string) Persona {
	switch p := Persona(strings.TrimSpace(s)); p {
	case PersonaPhysician, PersonaHeadCoach, PersonaNutritionist, PersonaAICoach:
		return p
	default:
		return PersonaAICoach
	}
}

// Instruction is the system text for the persona.
func (p Persona) Instruction() string {
	switch p {
	case PersonaPhysician:
		return "You are Dr. Sarah, a sports physician. Provide injury prevention and recovery advice."
	case PersonaHeadCoach:
		return "You are Coach Mike, a strict but motivating head coach. Focus on tactics and discipline."
	case PersonaNutritionist:
		return "You are Lisa, a sports nutritionist. Give diet and hydration advice."
	default:
		return "You are an advanced AI Sports Coach. Provide technical and performance feedback."
	}
}

// BuildPrompt combines the persona instruction, the user message and, when
// a video was attached, a note that the model cannot watch it.
func BuildPrompt(p Persona, message, videoURL string) string {
	var b strings.Builder
	b.WriteString(p.Instruction())
	b.WriteString("\n\nUser: ")
	b.WriteString(message)
	if videoURL != "" {
		fmt.Fprintf(&b, "\n\n[System Note: The user uploaded a video at %s. You cannot directly view it, so acknowledge and give general guidance based on the message.]", videoURL)
	}
	return b.String()
}

// Generator produces a completion for a single prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type ChatInput struct {
	Message  string
	VideoURL string
	Persona  Persona
}

type ChatService struct {
	// Gen is nil when no API key is configured; Reply then answers in demo mode.
	Gen     Generator
	Timeout time.Duration
	Logger  *logrus.Logger
}

func NewChatService(gen Generator, timeout time.Duration, logger *logrus.Logger) *ChatService {
	if logger == nil {
		logger = helpers.NewNopLogger()
	}
	return &ChatService{Gen: gen, Timeout: timeout, Logger: logger}
}

// DemoMode reports whether replies are canned.
func (s *ChatService) DemoMode() bool {
	return s.Gen == nil
}

// Reply forwards one stateless turn to the generator. In demo mode every
// request, even an empty one, gets DemoModeReply.
func (s *ChatService) Reply(ctx context.Context, in ChatInput) (string, error) {
	if s.DemoMode() {
		s.Logger.Warn("GEMINI_API_KEY missing, chat in demo mode")
		return DemoModeReply, nil
	}
	if strings.TrimSpace(in.Message) == "" && strings.TrimSpace(in.VideoURL) == "" {
		return "", ErrEmptyChat
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	text, err := s.Gen.Generate(ctx, BuildPrompt(in.Persona, in.Message, in.VideoURL))
	if err != nil {
		s.Logger.WithError(err).WithField("persona", in.Persona).Error("chat generation failed")
		return "", fmt.Errorf("%w: %v", ErrChatUnavailable, err)
	}
	return text, nil
}
