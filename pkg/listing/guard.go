package listing

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/listingkit/pkg/contentfilter"
	"github.com/dmitrymomot/listingkit/pkg/logger"
	"github.com/dmitrymomot/listingkit/pkg/ratelimiter"
	"github.com/dmitrymomot/listingkit/pkg/validator"
)

// ProhibitedContentMessage is reported when the title or description
// contains a prohibited phrase.
const ProhibitedContentMessage = "Your listing contains prohibited content. Please review and try again."

// Problem keys used in Outcome.Problems for failures not tied to a field.
const (
	ProblemContent  = "content"
	ProblemCooldown = "cooldown"
)

// Limiter throttles submissions. *ratelimiter.Cooldown implements it.
type Limiter interface {
	Check(ctx context.Context) ratelimiter.Result
	Record(ctx context.Context)
}

// Guard validates drafts. It is safe for concurrent use when its Limiter is.
type Guard struct {
	rules   validator.Ruleset
	filter  *contentfilter.Filter
	limiter Limiter
	log     *slog.Logger
}

// Option configures a Guard.
type Option func(*Guard)

// WithRuleset replaces validator.ListingRules.
func WithRuleset(rs validator.Ruleset) Option {
	return func(g *Guard) {
		g.rules = rs
	}
}

// WithFilter replaces the default content filter.
func WithFilter(f *contentfilter.Filter) Option {
	return func(g *Guard) {
		if f != nil {
			g.filter = f
		}
	}
}

// WithLogger sets the logger for rejected submissions.
func WithLogger(log *slog.Logger) Option {
	return func(g *Guard) {
		if log != nil {
			g.log = log
		}
	}
}

// NewGuard creates a Guard. A nil limiter disables the cooldown check.
func NewGuard(limiter Limiter, opts ...Option) *Guard {
	g := &Guard{
		rules:   validator.ListingRules,
		limiter: limiter,
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.filter == nil {
		g.filter = contentfilter.Default(contentfilter.WithLogger(g.log))
	}
	return g
}

// Validate checks every field and collects all failures.
func (g *Guard) Validate(ctx context.Context, d Draft) Outcome {
	_, err := g.rules.ValidateAll(
		validator.Input{Field: validator.FieldTitle, Value: d.Title},
		validator.Input{Field: validator.FieldDescription, Value: d.Description},
		validator.Input{Field: validator.FieldPrice, Value: string(d.Price)},
		validator.Input{Field: validator.FieldSellerName, Value: d.SellerName},
		validator.Input{Field: validator.FieldSellerPhone, Value: d.SellerPhone},
	)
	problems := validator.ExtractValidationErrors(err)
	for _, field := range problems.Fields() {
		g.log.DebugContext(ctx, "listing field rejected",
			logger.Component("listing"),
			logger.Field(field),
		)
	}

	text := d.Title + " " + d.Description
	if g.filter.ContainsSpam(text) {
		problems.Add(validator.ValidationError{Field: ProblemContent, Message: ProhibitedContentMessage})
		g.log.InfoContext(ctx, "listing rejected for prohibited content",
			logger.Component("listing"),
			logger.Event("prohibited_content"),
		)
	}

	// Advisory only; never affects the outcome.
	g.filter.Review(ctx, text)

	if g.limiter != nil {
		if rl := g.limiter.Check(ctx); !rl.Allowed {
			problems.Add(validator.ValidationError{Field: ProblemCooldown, Message: rl.Message})
		}
	}

	return Outcome{
		Valid:     problems.IsEmpty(),
		Errors:    problems.Messages(),
		Problems:  problems,
		Sanitized: d.Sanitized(),
	}
}

// RecordSubmission starts the cooldown after a successful upstream submit.
func (g *Guard) RecordSubmission(ctx context.Context) {
	if g.limiter != nil {
		g.limiter.Record(ctx)
	}
}
