package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/nekruzvatanshoev/fareserv/pkg/fareserv/dal"
	"github.com/nekruzvatanshoev/fareserv/pkg/fareserv/encoder"
	"github.com/nekruzvatanshoev/fareserv/pkg/fareserv/fault"
	"github.com/nekruzvatanshoev/fareserv/pkg/fareserv/quote"
)

// fixedModel prices every row by its stop count
type fixedModel struct{}

func (fixedModel) Predict(row []float64) (float64, error) {
	return 3500.5 + 1000*row[encoder.TotalStops], nil
}

func (fixedModel) Columns() []string { return encoder.Columns() }

func newTestServer() *httpServer {
	h := newHTTPServer(quote.NewService(fixedModel{}), nil)
	h.log.SetOutput(io.Discard)
	h.now = func() time.Time { return time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC) }
	return h
}

func sampleValues() url.Values {
	return url.Values{
		"airline":         {"IndiGo"},
		"additional_info": {"No Info"},
		"total_stops":     {"1"},
		"source":          {"Delhi"},
		"destination":     {"Cochin"},
		"date":            {"2024-03-15"},
		"departure_time":  {"09:30"},
		"arrival_time":    {"12:45"},
		"duration":        {"3.25"},
	}
}

func TestServer(t *testing.T) {

	tests := []struct {
		name     string
		path     string
		body     dal.TripForm
		status   int
		expected string
	}{
		{
			name: "Predict",
			path: "/api/predict",
			body: dal.TripForm{
				Airline: "IndiGo", FareNote: "No Info", Stops: 1, Source: "Delhi", Destination: "Cochin",
				Date: "2024-03-15", Departure: "09:30", Arrival: "12:45", Duration: 3.25,
			},
			status:   http.StatusOK,
			expected: "Estimated Price: ₹4500.50",
		},
		{
			name: "SameCity",
			path: "/api/predict",
			body: dal.TripForm{
				Airline: "IndiGo", FareNote: "No Info", Source: "Delhi", Destination: "Delhi",
				Date: "2024-03-15", Departure: "09:30", Arrival: "12:45", Duration: 3.25,
			},
			status:   http.StatusBadRequest,
			expected: "Please select different cities for departure and arrival",
		},
		{
			name: "UnknownAirline",
			path: "/api/predict",
			body: dal.TripForm{
				Airline: "FakeAir", FareNote: "No Info", Source: "Delhi", Destination: "Cochin",
				Date: "2024-03-15", Departure: "09:30", Arrival: "12:45", Duration: 3.25,
			},
			status:   http.StatusBadRequest,
			expected: "Invalid option: Airline_FakeAir",
		},
	}

	ts := httptest.NewServer(newTestServer().routes())

	defer ts.Close()

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			payload, err := json.Marshal(tc.body)
			if err != nil {
				t.Fatal(err)
			}
			resp, err := http.Post(ts.URL+tc.path, "application/json", bytes.NewReader(payload))
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			respBody, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatal(err)
			}

			if resp.StatusCode != tc.status {
				t.Errorf("Expected status: %d, Got: %d (%s)", tc.status, resp.StatusCode, respBody)
			}
			if !strings.Contains(string(respBody), tc.expected) {
				t.Errorf("Expected: %q in %s", tc.expected, respBody)
			}
			if resp.Header.Get("X-Request-Id") == "" {
				t.Error("missing request id")
			}
		})
	}
}

func TestPredictPrice(t *testing.T) {
	r := newTestServer().routes()
	payload := `{"airline":"IndiGo","additional_info":"No Info","total_stops":2,"source":"Delhi",
		"destination":"Cochin","date":"2024-03-15","departure_time":"09:30","arrival_time":"12:45","duration":3.25}`
	req := httptest.NewRequest(http.MethodPost, "/api/predict", strings.NewReader(payload))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp dal.QuoteResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Price != 5500.5 || resp.Display != "Estimated Price: ₹5500.50" {
		t.Errorf("Unexpected response: %+v", resp)
	}
}

func TestPredictInvalidJSON(t *testing.T) {
	r := newTestServer().routes()
	req := httptest.NewRequest(http.MethodPost, "/api/predict", strings.NewReader("{"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, Got: %d", w.Code)
	}
}

func TestForm(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(url.Values)
		expected string
	}{
		{"Success", func(url.Values) {}, "Estimated Price: ₹4500.50"},
		{"MalformedTime", func(v url.Values) { v.Set("departure_time", "1200") }, "Error: Invalid time format. Please use HH:MM format"},
		{"UnknownFareNote", func(v url.Values) { v.Set("additional_info", "Free lounge") }, "Error: Invalid option: Additional_Info_Free lounge"},
		{"BadStops", func(v url.Values) { v.Set("total_stops", "one") }, "Error: total_stops must be a whole number"},
		{
			"SameCityWins",
			func(v url.Values) { v.Set("destination", "Delhi"); v.Set("total_stops", "one") },
			"Please select different cities for departure and arrival",
		},
	}

	r := newTestServer().routes()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vals := sampleValues()
			tc.mutate(vals)
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(vals.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("Expected 200, Got: %d", w.Code)
			}
			if !strings.Contains(w.Body.String(), tc.expected) {
				t.Errorf("Expected: %q in %s", tc.expected, w.Body.String())
			}
		})
	}
}

func TestGetFormDefaults(t *testing.T) {
	r := newTestServer().routes()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	body := w.Body.String()
	for _, want := range []string{`value="2024-03-15"`, `value="12:00"`, `value="14:00"`, `value="2"`, "Predict Flight Price"} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected: %q in form", want)
		}
	}
}

func TestGetOptions(t *testing.T) {
	r := newTestServer().routes()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/options", nil))

	var resp dal.OptionsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Airlines) != 12 || len(resp.FareNotes) != 10 || len(resp.Sources) != 5 || len(resp.Destinations) != 6 {
		t.Errorf("Unexpected options: %+v", resp)
	}
	if resp.Defaults.Date != "2024-03-15" {
		t.Errorf("Unexpected default date: %s", resp.Defaults.Date)
	}
}

func TestHalted(t *testing.T) {
	loadErr := fault.ModelLoadError{Msg: "Model file not found. Please ensure the file path is correct."}
	h := newHTTPServer(nil, loadErr)
	h.log.SetOutput(io.Discard)
	r := h.routes()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/"},
		{http.MethodPost, "/"},
		{http.MethodPost, "/api/predict"},
		{http.MethodGet, "/healthz"},
	}
	for _, tc := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, strings.NewReader("{}")))
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("%s %s: Expected 503, Got: %d", tc.method, tc.path, w.Code)
		}
		if !strings.Contains(w.Body.String(), "Model file not found") {
			t.Errorf("%s %s: diagnostic missing from %s", tc.method, tc.path, w.Body.String())
		}
		if strings.Contains(w.Body.String(), "<form") {
			t.Errorf("%s %s: form rendered while halted", tc.method, tc.path)
		}
	}
}

func TestHealth(t *testing.T) {
	r := newTestServer().routes()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, Got: %d", w.Code)
	}
}
