package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nekruzvatanshoev/fareserv/pkg/fareserv/dal"
	"github.com/nekruzvatanshoev/fareserv/pkg/fareserv/model"
	"github.com/nekruzvatanshoev/fareserv/pkg/fareserv/quote"
)

var PredictCmd = &cobra.Command{
	Use:          PredictCmdName,
	Short:        PredictCmdShort,
	Long:         PredictCmdLong,
	SilenceUsage: true,
	RunE:         predictCmdFunc,
}

func init() {
	defaults := dal.DefaultForm(time.Now())
	f := PredictCmd.Flags()
	f.String("airline", defaults.Airline, "airline")
	f.String("additional-info", defaults.FareNote, "fare note category")
	f.Int("stops", defaults.Stops, "number of stops (0-4)")
	f.String("source", defaults.Source, "departure city")
	f.String("destination", defaults.Destination, "arrival city")
	f.String("date", defaults.Date, "travel date (YYYY-MM-DD)")
	f.String("departure", defaults.Departure, "departure time (HH:MM)")
	f.String("arrival", defaults.Arrival, "arrival time (HH:MM)")
	f.Float64("duration", defaults.Duration, "flight duration in hours")
}

func predictCmdFunc(cmd *cobra.Command, args []string) error {
	form, err := formFromFlags(cmd)
	if err != nil {
		return err
	}

	regressor, err := model.Load(viper.GetString(keyModelPath))
	if err != nil {
		return err
	}

	q, err := quote.NewService(regressor).Quote(form)
	if err != nil {
		return errors.New(quote.ErrorMessage(err))
	}
	fmt.Fprintln(cmd.OutOrStdout(), q.Display())
	return nil
}

func formFromFlags(cmd *cobra.Command) (dal.TripForm, error) {
	f := cmd.Flags()
	var (
		form dal.TripForm
		err  error
	)
	get := func(name string, dst *string) {
		if err == nil {
			*dst, err = f.GetString(name)
		}
	}
	get("airline", &form.Airline)
	get("additional-info", &form.FareNote)
	get("source", &form.Source)
	get("destination", &form.Destination)
	get("date", &form.Date)
	get("departure", &form.Departure)
	get("arrival", &form.Arrival)
	if err != nil {
		return form, err
	}
	if form.Stops, err = f.GetInt("stops"); err != nil {
		return form, err
	}
	if form.Duration, err = f.GetFloat64("duration"); err != nil {
		return form, err
	}
	return form, nil
}
