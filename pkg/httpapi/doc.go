// Package httpapi exposes the listing guard and the seller session store over
// JSON HTTP endpoints for server-rendered or native clients.
//
// Routes:
//
//	GET    /healthz               readiness of the configured backends
//	POST   /listings/validate     validate a draft, never records
//	POST   /listings/submissions  validate, publish and start the cooldown
//	GET    /seller/session        current seller session or 404
//	PUT    /seller/session        save phone and name for this device
//	DELETE /seller/session        forget the seller (logout)
//	GET    /seller/profile        display profile or 404
//
// Each browser profile is identified by a random client id (pkg/clientid)
// kept in the clientid.DefaultCookie cookie or sent in the
// clientid.DefaultHeader header. All profile state, the device id, the
// cached seller and the last submission time, lives in the shared storage
// under that client id.
//
// Handlers are built with the handler package and bind bodies with
// binder.JSON. Responses use handler.JSONResponse: {"data": ...} on success
// and {"error": {"code", "message", "details"}} on failure, where details
// maps a field name (or "content" / "cooldown") to its messages.
package httpapi
