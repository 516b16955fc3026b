package httpapi

import "github.com/dmitrymomot/listingkit/handler"

var (
	ErrNoSession     = handler.ErrNotFound.WithMessage("No seller session for this device")
	ErrPublishFailed = handler.ErrBadGateway.WithMessage("The listing could not be published, please try again")
	ErrNotReady      = handler.ErrServiceUnavailable.WithMessage("Some dependencies are unavailable")
)
