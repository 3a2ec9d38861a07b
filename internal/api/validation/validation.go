// internal/api/validation/validation.go
package validation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"user-registry/internal/response"
)

// messagePrefix is prepended to the joined constraint-violation messages.
const messagePrefix = "Invalid input: "

type ctxKey int

const (
	idKey ctxKey = iota
	bodyKey
)

var validate = newValidator()

// newValidator builds the shared validator instance. Field names in error
// reports follow the json tags so violation messages match the wire format.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(validateUpdateUser, UpdateUserRequest{})
	return v
}

// CreateUserRequest is the schema for POST /users bodies.
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
	Age   *int64 `json:"age" validate:"omitempty,min=0"`
}

// UpdateUserRequest is the schema for PUT /users/{id} bodies. Every field is
// optional under the same per-field constraints as creation, but the body as
// a whole must supply at least one of them.
type UpdateUserRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=2"`
	Email *string `json:"email" validate:"omitempty,email"`
	Age   *int64  `json:"age" validate:"omitempty,min=0"`
}

func validateUpdateUser(sl validator.StructLevel) {
	req := sl.Current().Interface().(UpdateUserRequest)
	if req.Name == nil && req.Email == nil && req.Age == nil {
		sl.ReportError(req.Name, "body", "Name", "atleastone", "")
	}
}

// ID is a chi middleware validating that the {id} path parameter is a
// positive integer. The parsed value is stored in the request context; on
// violation the pipeline short-circuits with a 400 envelope and the wrapped
// handler is never invoked.
func ID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			writeInvalid(w, []string{"id must be a positive integer"})
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), idKey, id)))
	})
}

// Body returns a chi middleware that decodes the request body into T,
// validates it against T's schema, and stores the decoded value in the
// request context. Violations short-circuit with a 400 envelope carrying the
// joined constraint messages.
func Body[T any]() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body T
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				writeInvalid(w, []string{"request body must be valid JSON"})
				return
			}
			if err := validate.Struct(body); err != nil {
				var violations []string
				if fieldErrs, ok := err.(validator.ValidationErrors); ok {
					for _, fe := range fieldErrs {
						violations = append(violations, violationMessage(fe))
					}
				} else {
					violations = append(violations, "request body is invalid")
				}
				writeInvalid(w, violations)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), bodyKey, body)))
		})
	}
}

// IDFromContext returns the validated {id} path parameter. It must only be
// called below the ID middleware.
func IDFromContext(ctx context.Context) int64 {
	id, _ := ctx.Value(idKey).(int64)
	return id
}

// BodyFromContext returns the validated request body of type T. It must only
// be called below the matching Body[T] middleware.
func BodyFromContext[T any](ctx context.Context) T {
	body, _ := ctx.Value(bodyKey).(T)
	return body
}

// violationMessage translates a single field error into a human-readable
// constraint message.
func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	case "atleastone":
		return "at least one of name, email or age must be provided"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// writeInvalid writes the short-circuit 400 envelope for schema violations.
func writeInvalid(w http.ResponseWriter, violations []string) {
	res := response.Failure[any](messagePrefix+strings.Join(violations, ", "), http.StatusBadRequest)
	payload, err := json.Marshal(res)
	if err != nil {
		slog.Error("Failed to marshal validation response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_, _ = w.Write(payload)
}
