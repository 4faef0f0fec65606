package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type InteractionType string

const (
	InteractionTypeMessage    InteractionType = "message"
	InteractionTypeReaction   InteractionType = "reaction"
	InteractionTypeHandRaised InteractionType = "handRaised"
)

// InteractionPayload is the type-specific part of an interaction.
type InteractionPayload interface {
	Type() InteractionType
	Content() string
}

type MessagePayload struct {
	Text string
}

func (p MessagePayload) Type() InteractionType { return InteractionTypeMessage }
func (p MessagePayload) Content() string       { return p.Text }

type ReactionPayload struct {
	Emoji string
}

func (p ReactionPayload) Type() InteractionType { return InteractionTypeReaction }
func (p ReactionPayload) Content() string       { return p.Emoji }

type HandRaisedPayload struct{}

func (p HandRaisedPayload) Type() InteractionType { return InteractionTypeHandRaised }
func (p HandRaisedPayload) Content() string       { return "" }

// NewInteractionPayload rebuilds a payload from its stored type and content.
func NewInteractionPayload(t InteractionType, content string) (InteractionPayload, error) {
	switch t {
	case InteractionTypeMessage:
		return MessagePayload{Text: content}, nil
	case InteractionTypeReaction:
		return ReactionPayload{Emoji: content}, nil
	case InteractionTypeHandRaised:
		return HandRaisedPayload{}, nil
	default:
		return nil, fmt.Errorf("unknown interaction type %q", t)
	}
}

type Interaction struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	UserId    uuid.UUID
	Payload   InteractionPayload
	Timestamp time.Time
}
