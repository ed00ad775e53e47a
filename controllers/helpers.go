package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"marketing-tracker/responses"
	"marketing-tracker/services"
	"marketing-tracker/storage"
)

func writeJSON(rw http.ResponseWriter, code int, v interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)
	json.NewEncoder(rw).Encode(v)
}

func errorResponse(rw http.ResponseWriter, err error, code int) {
	writeJSON(rw, code, responses.RecordResponse{
		Status:  code,
		Message: "error",
		Data:    map[string]interface{}{"data": err.Error()},
	})
}

func formResponse(rw http.ResponseWriter, data map[string]interface{}) {
	writeJSON(rw, http.StatusOK, responses.RecordResponse{
		Status:  http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

func listResponse(rw http.ResponseWriter, data interface{}, total int64, page, perPage int, q string) {
	writeJSON(rw, http.StatusOK, responses.ListResponse{
		Status:  http.StatusOK,
		Message: "success",
		Data:    data,
		Total:   total,
		Page:    page,
		PerPage: perPage,
		Query:   q,
	})
}

// serviceError maps the service error taxonomy onto responses: validation
// failures redisplay the form as a 400 flash, unresolvable ids are 404,
// unconfigured storage is 503, anything else is a 500.
func serviceError(rw http.ResponseWriter, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		errorResponse(rw, err, http.StatusBadRequest)
	case errors.Is(err, services.ErrNotFound):
		errorResponse(rw, err, http.StatusNotFound)
	case errors.Is(err, storage.ErrNotConfigured):
		errorResponse(rw, err, http.StatusServiceUnavailable)
	default:
		errorResponse(rw, err, http.StatusInternalServerError)
	}
}

func getPage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return services.ClampPage(page)
}

func getPerPage(r *http.Request) int {
	perPage, err := strconv.Atoi(r.URL.Query().Get("per_page"))
	if err != nil {
		return services.DefaultPerPage
	}
	return services.ClampPerPage(perPage)
}

func getQuery(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get("q"))
}

func pathID(r *http.Request, name string) (uint, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, services.ErrNotFound
	}
	return uint(id), nil
}

func formUint(r *http.Request, name string) uint {
	id, err := strconv.ParseUint(strings.TrimSpace(r.FormValue(name)), 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

func formUintList(r *http.Request, name string) []uint {
	var ids []uint
	for _, raw := range r.Form[name] {
		id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
		if err == nil && id != 0 {
			ids = append(ids, uint(id))
		}
	}
	return ids
}

func formUintPtr(r *http.Request, name string) *uint {
	if id := formUint(r, name); id != 0 {
		return &id
	}
	return nil
}

func formIntPtr(r *http.Request, name string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(r.FormValue(name)))
	if err != nil {
		return nil
	}
	return &n
}

func formInt64Ptr(r *http.Request, name string) *int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(r.FormValue(name)), 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// formDate parses an ISO date field; anything unparseable becomes nil.
func formDate(r *http.Request, name string) *time.Time {
	raw := strings.TrimSpace(r.FormValue(name))
	if raw == "" {
		return nil
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &d
}

func queryUint(r *http.Request, name string) uint {
	id, err := strconv.ParseUint(strings.TrimSpace(r.URL.Query().Get(name)), 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}
