package util

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/romana/rlog"

	"restaurant_system/constants"
)

// Accepted layouts for date query parameters; zone-less values are read in the local zone.
var queryTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func FetchReqObject(r *http.Request, reqObj interface{}) error {
	if r == nil || r.Body == nil {
		return errors.Wrap(constants.ErrValidation, "request body is required")
	}
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		rlog.Error("Read request body failed: " + err.Error())
		return errors.Wrap(constants.ErrValidation, "read request body failed: "+err.Error())
	}
	err = json.Unmarshal(reqBody, reqObj)
	if err != nil {
		rlog.Error("Unmarshal request body failed: " + err.Error())
		return errors.Wrap(constants.ErrValidation, "unmarshal request body failed: "+err.Error())
	}
	return nil
}

// PathID parses the named route variable as a record identifier.
// The store never assigns 0, so that id is reported as not found.
func PathID(r *http.Request, name string) (uint, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return 0, errors.Wrapf(constants.ErrValidation, "invalid %s %q", name, raw)
	}
	if id == 0 {
		return 0, errors.Wrapf(constants.ErrNotFound, "%s 0", name)
	}
	return uint(id), nil
}

// QueryTime parses the named query parameter, which is required.
func QueryTime(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, errors.Wrapf(constants.ErrValidation, "query parameter %s is required", name)
	}
	for _, layout := range queryTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Wrapf(constants.ErrValidation, "query parameter %s: cannot parse %q as a date", name, raw)
}

func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	respBody, err := json.Marshal(body)
	if err != nil {
		rlog.Error("Marshal response failed: " + err.Error())
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(respBody)
}

func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// StatusOf maps an error to the response status: not found 404, validation
// and lifecycle violations 400, store failures 500.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, constants.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, constants.ErrValidation), errors.Is(err, constants.ErrInvalidState):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func WriteError(w http.ResponseWriter, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		rlog.Error(err.Error())
	}
	http.Error(w, err.Error(), status)
}

func GetStringPtr(s string) *string {
	return &s
}
