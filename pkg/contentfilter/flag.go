package contentfilter

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/listingkit/pkg/logger"
)

// Reason identifies why content was flagged.
type Reason string

// ReasonProfanity marks text that matched the profanity list. Such text is
// still accepted; the flag only queues it for review.
const ReasonProfanity Reason = "profanity"

// Flag is an advisory record of content that needs human review.
type Flag struct {
	ID        uuid.UUID `json:"id"`
	Reason    Reason    `json:"reason"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Flagger receives advisory flags. Implementations may persist them to a
// review queue; failures never affect the submission.
type Flagger interface {
	Flag(ctx context.Context, flag Flag) error
}

// FlaggerFunc adapts a function to the Flagger interface.
type FlaggerFunc func(ctx context.Context, flag Flag) error

func (f FlaggerFunc) Flag(ctx context.Context, flag Flag) error {
	return f(ctx, flag)
}

// LogFlagger writes flags to a structured logger at warn level.
type LogFlagger struct {
	log *slog.Logger
}

// NewLogFlagger creates a Flagger backed by log. A nil logger uses slog.Default.
func NewLogFlagger(log *slog.Logger) *LogFlagger {
	if log == nil {
		log = slog.Default()
	}
	return &LogFlagger{log: log}
}

func (l *LogFlagger) Flag(ctx context.Context, flag Flag) error {
	l.log.WarnContext(ctx, "content flagged for review",
		logger.Component("contentfilter"),
		slog.String("flag_id", flag.ID.String()),
		slog.String("reason", string(flag.Reason)),
		slog.Int("text_length", len(flag.Text)),
	)
	return nil
}
