package server

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/nekruzvatanshoev/fareserv/pkg/fareserv/dal"
)

type option struct {
	Value    string
	Selected bool
}

type page struct {
	Form         dal.TripForm
	Airlines     []option
	FareNotes    []option
	Sources      []option
	Destinations []option
	Stops        []option
	Result       string
	Error        string
	Diagnostic   string
}

func newPage(form dal.TripForm) page {
	return page{
		Form:         form,
		Airlines:     options(dal.Airlines, form.Airline),
		FareNotes:    options(dal.FareNotes, form.FareNote),
		Sources:      options(dal.Sources, form.Source),
		Destinations: options(dal.Destinations, form.Destination),
		Stops:        options([]string{"0", "1", "2", "3", "4"}, strconv.Itoa(form.Stops)),
	}
}

func options[T ~string](values []T, selected string) []option {
	out := make([]option, len(values))
	for i, v := range values {
		out[i] = option{Value: string(v), Selected: string(v) == selected}
	}
	return out
}

func (h *httpServer) render(w http.ResponseWriter, status int, p page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTmpl.Execute(w, p); err != nil {
		h.log.Printf("render failed: %v", err)
	}
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Flight Price Predictor</title></head>
<body>
<h1>Flight Price Predictor</h1>
{{if .Diagnostic}}
<p class="error">{{.Diagnostic}}</p>
{{else}}
<form method="post" action="/">
<fieldset><legend>Flight Details</legend>
<label>Airline <select name="airline">{{range .Airlines}}<option{{if .Selected}} selected{{end}}>{{.Value}}</option>{{end}}</select></label>
<label>Additional Info <select name="additional_info">{{range .FareNotes}}<option{{if .Selected}} selected{{end}}>{{.Value}}</option>{{end}}</select></label>
<label>Number of Stops <select name="total_stops">{{range .Stops}}<option{{if .Selected}} selected{{end}}>{{.Value}}</option>{{end}}</select></label>
<label>Departure City <select name="source">{{range .Sources}}<option{{if .Selected}} selected{{end}}>{{.Value}}</option>{{end}}</select></label>
<label>Arrival City <select name="destination">{{range .Destinations}}<option{{if .Selected}} selected{{end}}>{{.Value}}</option>{{end}}</select></label>
</fieldset>
<fieldset><legend>Timing Information</legend>
<label>Travel Date <input type="date" name="date" value="{{.Form.Date}}"></label>
<label>Departure Time (HH:MM) <input type="text" name="departure_time" value="{{.Form.Departure}}"></label>
<label>Flight Duration (hours) <input type="number" name="duration" min="0.5" max="24" step="0.5" value="{{.Form.Duration}}"></label>
<label>Arrival Time (HH:MM) <input type="text" name="arrival_time" value="{{.Form.Arrival}}"></label>
</fieldset>
<button type="submit">Predict Flight Price</button>
</form>
{{if .Result}}<p class="success">{{.Result}}</p>{{end}}
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{end}}
</body>
</html>
`))
