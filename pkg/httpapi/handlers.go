package httpapi

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/listingkit/handler"
	"github.com/dmitrymomot/listingkit/pkg/binder"
	"github.com/dmitrymomot/listingkit/pkg/fingerprint"
	"github.com/dmitrymomot/listingkit/pkg/listing"
	"github.com/dmitrymomot/listingkit/pkg/logger"
	"github.com/dmitrymomot/listingkit/pkg/validator"
)

// SubmissionResponse is returned for an accepted listing.
type SubmissionResponse struct {
	Listing     listing.Draft `json:"listing"`
	DeviceID    string        `json:"device_id"`
	SubmittedAt time.Time     `json:"submitted_at"`
}

// SaveSessionRequest is the body of PUT /seller/session.
type SaveSessionRequest struct {
	Phone string `json:"phone"`
	Name  string `json:"name"`
}

type noBody struct{}

// bodyRoute wraps h with the JSON binder and the API error handler.
func bodyRoute[R any](a *API, h handler.HandlerFunc[handler.Context, R]) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinder[handler.Context, R](binder.JSON(binder.WithMaxSize(maxBodyBytes))),
		handler.WithErrorHandler[handler.Context, R](a.errors),
	)
}

// route wraps a handler that reads no body.
func route(a *API, h handler.HandlerFunc[handler.Context, noBody]) http.HandlerFunc {
	return handler.Wrap(h, handler.WithErrorHandler[handler.Context, noBody](a.errors))
}

func (a *API) validateListing(ctx handler.Context, draft listing.Draft) handler.Response {
	return handler.JSON(a.guard.Validate(ctx, draft))
}

func (a *API) submitListing(ctx handler.Context, draft listing.Draft) handler.Response {
	out := a.guard.Validate(ctx, draft)
	if err := out.Err(); err != nil {
		return handler.JSONError(err, handler.WithJSONMessage("The listing could not be submitted"))
	}

	if err := a.publisher.Publish(ctx, out.Sanitized); err != nil {
		a.log.ErrorContext(ctx, "failed to publish listing",
			logger.Component("httpapi"),
			logger.Error(err),
		)
		return handler.JSONError(ErrPublishFailed)
	}
	a.guard.RecordSubmission(ctx)

	return handler.JSON(SubmissionResponse{
		Listing:     out.Sanitized,
		DeviceID:    fingerprint.DeviceIDFromContext(ctx),
		SubmittedAt: a.now().UTC(),
	}, handler.WithJSONStatus(http.StatusCreated))
}

func (a *API) loadSession(ctx handler.Context, _ noBody) handler.Response {
	res := a.sessions.Load(ctx)
	if res == nil {
		return handler.JSONError(ErrNoSession)
	}
	return handler.JSON(res)
}

func (a *API) saveSession(ctx handler.Context, req SaveSessionRequest) handler.Response {
	inputs := []validator.Input{{Field: validator.FieldSellerPhone, Value: req.Phone}}
	if req.Name != "" {
		inputs = append(inputs, validator.Input{Field: validator.FieldSellerName, Value: req.Name})
	}

	values, err := validator.ListingRules.ValidateAll(inputs...)
	if err != nil {
		return handler.JSONError(err, handler.WithJSONMessage("The seller details are invalid"))
	}

	return handler.JSON(a.sessions.Save(ctx, values[validator.FieldSellerPhone], values[validator.FieldSellerName]))
}

func (a *API) clearSession(ctx handler.Context, _ noBody) handler.Response {
	a.sessions.Clear(ctx)
	return handler.Empty()
}

func (a *API) profile(ctx handler.Context, _ noBody) handler.Response {
	p := a.sessions.Describe(ctx)
	if p == nil {
		return handler.JSONError(ErrNoSession)
	}
	return handler.JSON(p)
}

func (a *API) health(ctx handler.Context, _ noBody) handler.Response {
	status := make(map[string]string, len(a.checks))
	failed := make(map[string][]string)

	for _, c := range a.checks {
		if err := c.check(ctx); err != nil {
			a.log.ErrorContext(ctx, "readiness check failed",
				logger.Component("httpapi"),
				logger.Event(c.name),
				logger.Error(err),
			)
			status[c.name] = "unavailable"
			failed[c.name] = []string{"unavailable"}
			continue
		}
		status[c.name] = "ok"
	}

	if len(failed) > 0 {
		return handler.JSONError(ErrNotReady, handler.WithJSONDetails(failed))
	}
	return handler.JSON(map[string]any{"status": "ok", "checks": status})
}
