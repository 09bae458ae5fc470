package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"waste-management-backend/internal/database"
	"waste-management-backend/internal/models"
	"waste-management-backend/pkg/utils"
)

// Broadcaster receives entity change events after successful writes.
type Broadcaster interface {
	BroadcastAll(data interface{})
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON field names rather than Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeBody parses a JSON body into dst. An empty body decodes as {} so that
// validation reports the missing fields.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func validateBody(w http.ResponseWriter, dst interface{}) bool {
	if err := validate.Struct(dst); err != nil {
		utils.RespondError(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func bindBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	return decodeBody(w, r, dst) && validateBody(w, dst)
}

// validationMessage describes the first failing field
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request body"
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "datetime":
		return fe.Field() + " must be a date (YYYY-MM-DD)"
	case "email":
		return fe.Field() + " must be a valid email address"
	}
	return fe.Field() + " is invalid"
}

// pathID reads the numeric {id} route parameter
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		utils.RespondError(w, http.StatusBadRequest, "Invalid ID")
		return 0, false
	}
	return id, true
}

// queryID reads an optional numeric filter such as ?area_id=2
func queryID(w http.ResponseWriter, r *http.Request, key string) (*int64, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, key+" must be a number")
		return nil, false
	}
	return &id, true
}

func wantsStatistics(r *http.Request) bool {
	return r.URL.Query().Has("statistics")
}

// respondStoreError maps repository errors onto the response envelope.
// Driver errors are logged and replaced by the generic message.
func respondStoreError(w http.ResponseWriter, r *http.Request, err error, generic string) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		utils.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, database.ErrConflict), errors.Is(err, database.ErrInvalidReference):
		utils.RespondError(w, http.StatusBadRequest, err.Error())
	default:
		utils.Logger.WithError(err).
			WithField("request_id", chimiddleware.GetReqID(r.Context())).
			Errorf("❌ %s: %s %s", generic, r.Method, r.URL.Path)
		utils.RespondError(w, http.StatusInternalServerError, generic)
	}
}

func publish(events Broadcaster, entity, action string, id int64) {
	if events == nil {
		return
	}
	events.BroadcastAll(models.NewEntityEvent(entity, action, id))
}

// MissingID answers PUT and DELETE on a collection path
func MissingID(w http.ResponseWriter, r *http.Request) {
	utils.RespondError(w, http.StatusBadRequest, "ID is required")
}

// NotFound and MethodNotAllowed keep router errors inside the JSON envelope
func NotFound(w http.ResponseWriter, r *http.Request) {
	utils.RespondError(w, http.StatusNotFound, "Endpoint not found")
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.RespondError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
