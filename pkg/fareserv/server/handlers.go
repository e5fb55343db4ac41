package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/nekruzvatanshoev/fareserv/pkg/fareserv/dal"
	"github.com/nekruzvatanshoev/fareserv/pkg/fareserv/fault"
	"github.com/nekruzvatanshoev/fareserv/pkg/fareserv/quote"
)

type errorResponse struct {
	Error string `json:"error"`
}

// GetForm renders the empty form
func (h *httpServer) GetForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, newPage(dal.DefaultForm(h.now())))
}

// PostForm prices the submitted form and renders the result on the same page
func (h *httpServer) PostForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.log.Printf("%s form parse failed: %v", requestID(r), err)
		p := newPage(dal.DefaultForm(h.now()))
		p.Error = quote.ErrorMessage(err)
		h.render(w, http.StatusBadRequest, p)
		return
	}
	vars := r.PostForm

	form, err := decodeForm(vars)
	p := newPage(form)
	if cerr := quote.CheckCities(form.Source, form.Destination); cerr != nil {
		err = cerr
	}
	if err != nil {
		h.log.Printf("%s form validation failed: %v", requestID(r), err)
		p.Error = quote.ErrorMessage(err)
		h.render(w, http.StatusOK, p)
		return
	}

	q, err := h.quote.Quote(form)
	if err != nil {
		h.log.Printf("%s quote failed: %v", requestID(r), err)
		p.Error = quote.ErrorMessage(err)
		h.render(w, http.StatusOK, p)
		return
	}
	p.Result = q.Display()
	h.render(w, http.StatusOK, p)
}

// PostPredict is the JSON variant of PostForm
func (h *httpServer) PostPredict(w http.ResponseWriter, r *http.Request) {
	var form dal.TripForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	q, err := h.quote.Quote(form)
	if err != nil {
		h.log.Printf("%s quote failed: %v", requestID(r), err)
		writeQuoteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q.Response())
}

// GetOptions lists what the form accepts
func (h *httpServer) GetOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dal.OptionsResponse{
		Airlines:     dal.Airlines,
		FareNotes:    dal.FareNotes,
		Sources:      dal.Sources,
		Destinations: dal.Destinations,
		Defaults:     dal.DefaultForm(h.now()),
	})
}

// Health reports whether predictions can be served
func (h *httpServer) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Halted answers every request once the model failed to load
func (h *httpServer) Halted(w http.ResponseWriter, r *http.Request) {
	msg := h.loadErr.Error()
	if strings.HasPrefix(r.URL.Path, "/api/") || r.URL.Path == "/healthz" {
		writeError(w, http.StatusServiceUnavailable, msg)
		return
	}
	h.render(w, http.StatusServiceUnavailable, page{Diagnostic: msg})
}

// decodeForm reads the form fields. The returned form carries every value that
// could be read, even when err is set.
func decodeForm(vars url.Values) (dal.TripForm, error) {
	form := dal.TripForm{
		Airline:     vars.Get("airline"),
		FareNote:    vars.Get("additional_info"),
		Source:      vars.Get("source"),
		Destination: vars.Get("destination"),
		Date:        vars.Get("date"),
		Departure:   vars.Get("departure_time"),
		Arrival:     vars.Get("arrival_time"),
	}

	stops, err := validateStops(vars)
	if err != nil {
		return form, err
	}
	form.Stops = stops

	duration, err := validateDuration(vars)
	if err != nil {
		return form, err
	}
	form.Duration = duration
	return form, nil
}

func validateStops(vars url.Values) (int, error) {
	stops := strings.TrimSpace(vars.Get("total_stops"))
	if stops == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(stops)
	if err != nil {
		return 0, fault.InvalidInputError{Field: "total_stops", Msg: "total_stops must be a whole number", Err: err}
	}
	return n, nil
}

func validateDuration(vars url.Values) (float64, error) {
	duration := strings.TrimSpace(vars.Get("duration"))
	if duration == "" {
		return 0, fault.InvalidInputError{Field: "duration", Msg: "duration is required"}
	}
	d, err := strconv.ParseFloat(duration, 64)
	if err != nil {
		return 0, fault.InvalidInputError{Field: "duration", Msg: "duration must be a number of hours", Err: err}
	}
	return d, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeQuoteError(w http.ResponseWriter, err error) {
	switch {
	case fault.IsSameCity(err), fault.IsInvalidInput(err), fault.IsInvalidOption(err):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
