package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/openkraft/storefront/internal/domain"
)

// errorBody covers the usual JSON error shapes: {"message": ...},
// {"error": ...} and Laravel-style {"errors": {"field": ["msg"]}}.
type errorBody struct {
	Message string              `json:"message"`
	Error   string              `json:"error"`
	Errors  map[string][]string `json:"errors"`
}

func classifyTransport(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return domain.NewNetworkError("request timed out", err)
	case errors.Is(err, context.Canceled):
		return domain.NewNetworkError("request cancelled", err)
	default:
		return domain.NewNetworkError("could not reach the store", err)
	}
}

// classifyStatus maps an HTTP error status to the domain taxonomy. A 404 on a
// named resource is NotFound; other 4xx are ValidationError and 5xx are
// ServerError.
func classifyStatus(status int, body []byte, resource string) error {
	var eb errorBody
	_ = json.Unmarshal(body, &eb)

	msg := eb.Message
	if msg == "" {
		msg = eb.Error
	}

	switch {
	case status == http.StatusNotFound && resource != "":
		if msg == "" {
			msg = fmt.Sprintf("%s not found", resource)
		}
		return domain.NewNotFoundError(msg)
	case status >= 500:
		if msg == "" {
			msg = fmt.Sprintf("server error (%d)", status)
		}
		return domain.NewServerError(status, msg)
	default:
		if msg == "" {
			msg = strings.ToLower(http.StatusText(status))
			if msg == "" {
				msg = fmt.Sprintf("request rejected (%d)", status)
			}
		}
		e := domain.NewValidationError(msg, fieldErrors(eb.Errors)...)
		e.Status = status
		return e
	}
}

func fieldErrors(errs map[string][]string) []domain.FieldError {
	if len(errs) == 0 {
		return nil
	}
	names := make([]string, 0, len(errs))
	for name := range errs {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []domain.FieldError
	for _, name := range names {
		for _, msg := range errs[name] {
			out = append(out, domain.FieldError{Field: name, Message: msg})
		}
	}
	return out
}
