// Package handler provides type-safe JSON request handling.
//
// Handlers are generic functions that receive a bound request value and
// return a Response. Wrap turns them into http.HandlerFunc values, running
// the configured binders first and routing binding or rendering failures to
// an ErrorHandler:
//
//	type SaveSessionRequest struct {
//		Phone string `json:"phone"`
//		Name  string `json:"name"`
//	}
//
//	func save(ctx handler.Context, req SaveSessionRequest) handler.Response {
//		res, err := sessions.Save(ctx, req.Phone, req.Name)
//		if err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.JSON(res)
//	}
//
//	r.Put("/seller/session", handler.Wrap(save,
//		handler.WithBinder[handler.Context, SaveSessionRequest](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, SaveSessionRequest](handler.NewErrorHandler(log)),
//	))
//
// # Responses
//
//	handler.JSON(data)                                   // 200 with {"data": ...}
//	handler.JSON(data, handler.WithJSONStatus(201))      // custom status
//	handler.JSONError(err)                               // {"error": {...}}
//	handler.Empty()                                      // 204
//
// # Errors
//
// JSONError and the default ErrorHandler map errors to status codes:
// HTTPError values carry their own code, validator.ValidationErrors become
// 422 with per-field details, binder failures become 400 or 415, anything
// else is a 500 whose message is not exposed.
package handler
