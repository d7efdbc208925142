package client

import (
	"context"
	"time"
)

// Persona ids accepted by the chat endpoint.
const (
	PersonaAICoach      = "ai_coach"
	PersonaPhysician    = "physician"
	PersonaHeadCoach    = "head_coach"
	PersonaNutritionist = "nutritionist"
)

const (
	ConnectionTrouble = "Sorry, I'm having trouble connecting to the server right now."
	SendFileFailed    = "Failed to send file."
)

var greetings = map[string]string{
	PersonaAICoach:      "Hello! I'm your AI Coach. Upload a match clip or ask me about your recent performance.",
	PersonaPhysician:    "Hi, I'm Dr. Sarah. How is your body feeling today? Any pain or soreness?",
	PersonaHeadCoach:    "Coach Mike here. Ready to review your game plan?",
	PersonaNutritionist: "Hi, I'm Lisa. Let's talk about your meal plan for the upcoming tournament.",
}

// Contact describes a persona for display.
type Contact struct {
	ID    string
	Name  string
	Title string
}

var Contacts = []Contact{
	{ID: PersonaAICoach, Name: "AI Coach", Title: "Performance Analyst"},
	{ID: PersonaPhysician, Name: "Dr. Sarah", Title: "Physician"},
	{ID: PersonaHeadCoach, Name: "Coach Mike", Title: "Head Coach"},
	{ID: PersonaNutritionist, Name: "Lisa", Title: "Nutritionist"},
}

// KnownPersona reports whether id names one of the chat personas.
func KnownPersona(id string) bool {
	_, ok := greetings[id]
	return ok
}

const (
	FromUser = "user"
	FromBot  = "bot"
)

type Message struct {
	From    string    `json:"from"`
	Text    string    `json:"text"`
	IsVideo bool      `json:"isVideo,omitempty"`
	At      time.Time `json:"at"`
}

// Board keeps one ordered history per persona.
type Board map[string][]Message

// NewBoard returns a board with every persona's greeting.
func NewBoard() Board {
	b := Board{}
	for id := range greetings {
		b.seed(id)
	}
	return b
}

func (b Board) seed(persona string) {
	if len(b[persona]) == 0 {
		if g, ok := greetings[persona]; ok {
			b[persona] = []Message{{From: FromBot, Text: g}}
		}
	}
}

// History returns the persona's messages, oldest first.
func (b Board) History(persona string) []Message {
	b.seed(persona)
	return b[persona]
}

func (b Board) Append(persona string, m Message) {
	b.seed(persona)
	if m.At.IsZero() {
		m.At = time.Now().UTC()
	}
	b[persona] = append(b[persona], m)
}

// Reset drops a persona's conversation back to its greeting.
func (b Board) Reset(persona string) {
	delete(b, persona)
	b.seed(persona)
}

// Send records the user's text, asks the persona and records the reply.
// On failure the canned connection message is recorded and the error returned.
func (b Board) Send(ctx context.Context, c *Client, persona, text string) (Message, error) {
	b.Append(persona, Message{From: FromUser, Text: text})
	return b.ask(ctx, c, persona, ChatRequest{Message: text, Role: persona}, ConnectionTrouble)
}

// SendVideo records an upload notice and asks the persona about videoURL.
func (b Board) SendVideo(ctx context.Context, c *Client, persona, note, videoURL string) (Message, error) {
	b.Append(persona, Message{From: FromUser, Text: note, IsVideo: true})
	return b.ask(ctx, c, persona, ChatRequest{VideoURL: videoURL, Message: note, Role: persona}, SendFileFailed)
}

func (b Board) ask(ctx context.Context, c *Client, persona string, req ChatRequest, failure string) (Message, error) {
	reply, err := c.Chat(ctx, req)
	if err != nil {
		m := Message{From: FromBot, Text: failure}
		b.Append(persona, m)
		return m, err
	}
	m := Message{From: FromBot, Text: reply}
	b.Append(persona, m)
	return m, nil
}
