package cmd

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nekruzvatanshoev/fareserv/pkg/fareserv/model"
	"github.com/nekruzvatanshoev/fareserv/pkg/fareserv/quote"
	"github.com/nekruzvatanshoev/fareserv/pkg/fareserv/server"
)

var RootCmd = &cobra.Command{
	Use:   RootCmdName,
	Short: RootCmdShort,
	Long:  RootCmdLong,
}

func Execute() {

	if err := RootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(-1)
	}
}

func init() {
	RootCmd.PersistentFlags().String(keyModelPath, defaultModelPath, "path of the model artifact")
	ServeCmd.Flags().String(keyAddress, defaultAddress, "listen address")

	RootCmd.AddCommand(ServeCmd)
	RootCmd.AddCommand(PredictCmd)

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	viper.BindEnv(keyAddress, envPrefix+"_ADDRESS", "SERVER_ADDRESS")
	viper.BindPFlags(RootCmd.PersistentFlags())
	viper.BindPFlags(ServeCmd.Flags())
}

var (
	ServeCmd = &cobra.Command{
		Use:   ServeCmdName,
		Short: ServeCmdShort,
		Long:  ServeCmdLong,
		Run:   serveCmdFunc(),
	}
)

func serveCmdFunc() func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {

		log.Println("Started serve cmd")

		addr := viper.GetString(keyAddress)
		modelPath := viper.GetString(keyModelPath)

		var serve *http.Server
		regressor, err := model.Load(modelPath)
		if err != nil {
			log.Printf("Model %s unavailable, serving diagnostic only: %v", modelPath, err)
			serve = server.NewDiagnosticServer(addr, err)
		} else {
			log.Printf("Loaded model %s", modelPath)
			serve = server.NewHTTPServer(addr, quote.NewService(regressor))
		}

		signalCh := make(chan os.Signal, 1)

		go func() {
			if err := serve.ListenAndServe(); err != nil {
				log.Printf("Shutting down the server...%v", err)
				signalCh <- os.Interrupt

			}
		}()

		signal.Notify(signalCh, os.Interrupt)

		sig := <-signalCh

		log.Printf("Shutdown the server...%s", sig.String())
	}
}
