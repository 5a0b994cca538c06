package handlers

import (
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/ajg/form"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/planetary-api/internal/models"
)

const (
	msgInvalidBody     = "invalid request body"
	msgInternalServer  = "Internal server error"
	msgPasswordTooLong = "Password must be at most 72 bytes"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their wire names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeRequest reads a JSON or form-urlencoded body into v and validates it.
// The returned string is the client-facing message when decoding fails.
func decodeRequest(r *http.Request, v interface{}) (string, bool) {
	var err error
	switch render.GetRequestContentType(r) {
	case render.ContentTypeForm:
		err = decodeForm(r.Body, v)
	default:
		err = render.Decode(r, v)
	}
	if err != nil {
		return msgInvalidBody, false
	}
	if err := validate.Struct(v); err != nil {
		return validationMessage(err), false
	}
	return "", true
}

// decodeForm ignores fields the request type does not declare, like the JSON decoder does.
func decodeForm(r io.Reader, v interface{}) error {
	d := form.NewDecoder(r)
	d.IgnoreUnknownKeys(true)
	return d.Decode(v)
}

// pathParam returns the decoded value of a chi URL parameter. chi matches on
// the escaped path whenever the request carries one.
func pathParam(r *http.Request, key string) (string, error) {
	value := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return value, nil
	}
	return url.PathUnescape(value)
}

func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return msgInvalidBody
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return "missing required fields: " + strings.Join(fields, ", ")
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

func writeMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, status, models.MessageResponse{Message: message})
}
