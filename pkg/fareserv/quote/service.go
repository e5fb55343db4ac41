// Package quote runs one prediction: validate the form, encode it, ask the model.
package quote

import (
	"fmt"

	"github.com/nekruzvatanshoev/fareserv/pkg/fareserv/dal"
	"github.com/nekruzvatanshoev/fareserv/pkg/fareserv/encoder"
	"github.com/nekruzvatanshoev/fareserv/pkg/fareserv/fault"
	"github.com/nekruzvatanshoev/fareserv/pkg/fareserv/model"
)

// Currency is the symbol the training data was priced in
const Currency = "₹"

// Quote is a predicted price
type Quote struct {
	Price float64
}

// Display renders the price the way the form shows it
func (q Quote) Display() string {
	return fmt.Sprintf("Estimated Price: %s%.2f", Currency, q.Price)
}

// Response converts the quote to its JSON shape
func (q Quote) Response() dal.QuoteResponse {
	return dal.QuoteResponse{Price: q.Price, Display: q.Display()}
}

// Service prices trips against one loaded model
type Service struct {
	model model.Regressor
}

func NewService(m model.Regressor) *Service {
	return &Service{model: m}
}

// Quote prices a submitted form. Cities are compared before anything is parsed.
func (s *Service) Quote(form dal.TripForm) (Quote, error) {
	if err := CheckCities(form.Source, form.Destination); err != nil {
		return Quote{}, err
	}
	trip, err := form.Request()
	if err != nil {
		return Quote{}, err
	}
	return s.Price(trip)
}

// Price encodes a trip and runs the model on it
func (s *Service) Price(trip dal.TripRequest) (Quote, error) {
	vec, err := encoder.Encode(trip)
	if err != nil {
		return Quote{}, err
	}
	price, err := s.model.Predict(vec.Row())
	if err != nil {
		return Quote{}, fmt.Errorf("predict: %w", err)
	}
	return Quote{Price: price}, nil
}

// CheckCities rejects a trip that departs and arrives in the same city
func CheckCities(source, destination string) error {
	if source == destination {
		return fault.SameCityError{City: source}
	}
	return nil
}

// ErrorMessage renders a failure the way the form shows it
func ErrorMessage(err error) string {
	if fault.IsSameCity(err) {
		return err.Error()
	}
	return "Error: " + err.Error()
}
