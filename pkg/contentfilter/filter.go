package contentfilter

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/dmitrymomot/listingkit/pkg/logger"
)

// Filter matches text against spam and profanity lists.
// It is safe for concurrent use.
type Filter struct {
	spam      []string // case-folded
	profanity *regexp.Regexp
	flagger   Flagger
	log       *slog.Logger
	now       func() time.Time
}

// Option configures a Filter.
type Option func(*Filter)

// WithFlagger sets where advisory profanity flags are sent.
func WithFlagger(f Flagger) Option {
	return func(fl *Filter) {
		if f != nil {
			fl.flagger = f
		}
	}
}

// WithLogger sets the logger used for flagger failures.
func WithLogger(log *slog.Logger) Option {
	return func(fl *Filter) {
		if log != nil {
			fl.log = log
		}
	}
}

// WithClock overrides the time source used to stamp flags.
func WithClock(now func() time.Time) Option {
	return func(fl *Filter) {
		if now != nil {
			fl.now = now
		}
	}
}

// New builds a Filter from lists.
func New(lists Lists, opts ...Option) (*Filter, error) {
	spam := compact(lists.Spam)
	profanity := compact(lists.Profanity)
	if len(spam) == 0 && len(profanity) == 0 {
		return nil, ErrEmptyLists
	}

	f := &Filter{
		spam: make([]string, 0, len(spam)),
		log:  slog.New(slog.DiscardHandler),
		now:  time.Now,
	}
	for _, phrase := range spam {
		f.spam = append(f.spam, fold(phrase))
	}
	if len(profanity) > 0 {
		words := make([]string, 0, len(profanity))
		for _, w := range profanity {
			words = append(words, regexp.QuoteMeta(w))
		}
		f.profanity = regexp.MustCompile(`(?i)\b(?:` + strings.Join(words, "|") + `)\b`)
	}

	for _, opt := range opts {
		opt(f)
	}
	if f.flagger == nil {
		f.flagger = NewLogFlagger(f.log)
	}

	return f, nil
}

// Default returns a Filter over DefaultLists.
func Default(opts ...Option) *Filter {
	f, err := New(DefaultLists(), opts...)
	if err != nil {
		// Default lists are never empty.
		panic(err)
	}
	return f
}

// ContainsSpam reports whether text contains any prohibited phrase, ignoring case.
func (f *Filter) ContainsSpam(text string) bool {
	if text == "" || len(f.spam) == 0 {
		return false
	}
	folded := fold(text)
	for _, phrase := range f.spam {
		if strings.Contains(folded, phrase) {
			return true
		}
	}
	return false
}

// ContainsProfanity reports whether text contains a listed word as a whole word, ignoring case.
func (f *Filter) ContainsProfanity(text string) bool {
	if text == "" || f.profanity == nil {
		return false
	}
	return f.profanity.MatchString(text)
}

// Review checks text for profanity and, on a match, sends an advisory flag.
// It reports whether text was flagged. Flagger errors are logged and dropped.
func (f *Filter) Review(ctx context.Context, text string) bool {
	if !f.ContainsProfanity(text) {
		return false
	}

	flag := Flag{
		ID:        uuid.New(),
		Reason:    ReasonProfanity,
		Text:      text,
		CreatedAt: f.now(),
	}
	if err := f.flagger.Flag(ctx, flag); err != nil {
		f.log.WarnContext(ctx, "failed to submit content flag",
			logger.Component("contentfilter"),
			logger.Error(err),
		)
	}
	return true
}

// fold returns a caseless form of s. Casers are stateful, so one is created per call.
func fold(s string) string {
	return cases.Fold().String(s)
}

var defaultFilter = Default()

// ContainsSpam checks text against the default prohibited phrases.
func ContainsSpam(text string) bool {
	return defaultFilter.ContainsSpam(text)
}

// ContainsProfanity checks text against the default profanity list.
func ContainsProfanity(text string) bool {
	return defaultFilter.ContainsProfanity(text)
}
