// Package respond holds the JSON plumbing shared by the HTTP handlers.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/de-tools/growth-scorecard/pkg/models/api"
	"github.com/de-tools/growth-scorecard/pkg/models/domain"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

// Error maps err to a status code: not found is 404, invalid input is 400, anything else
// is logged and reported as 500 without details.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	logger := zerolog.Ctx(r.Context())

	switch {
	case errors.Is(err, domain.ErrNotFound):
		JSON(w, r, http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		resp := api.ErrorResponse{Error: err.Error()}
		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			for _, v := range verrs {
				resp.Details = append(resp.Details, api.FieldError{Field: v.Field, Message: v.Message})
			}
		}
		logger.Debug().Err(err).Msg("rejected request")
		JSON(w, r, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrDuplicate):
		JSON(w, r, http.StatusConflict, api.ErrorResponse{Error: err.Error()})
	default:
		logger.Error().Err(err).Msg("request failed")
		JSON(w, r, http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}

// Decode reads a JSON body into T and validates its struct tags.
func Decode[T any](r *http.Request) (T, error) {
	var payload T

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return payload, fmt.Errorf("%w: malformed request body: %v", domain.ErrInvalidInput, err)
	}

	if err := validate.Struct(payload); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return payload, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		var verrs domain.ValidationErrors
		for _, fe := range fieldErrs {
			verrs.Add(fieldPath(fe), describe(fe))
		}
		return payload, verrs
	}
	return payload, nil
}

// fieldPath drops the root struct name, e.g. "CustomerRequest.interactions[0].kind".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "email":
		return "must be a valid email"
	case "gte", "min":
		return "must be at least " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	default:
		return "failed " + fe.Tag() + " check"
	}
}
