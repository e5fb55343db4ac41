package cmd

const (
	RootCmdName  = "fareserv"
	RootCmdShort = "Flight ticket price predictor"
	RootCmdLong  = `fareserv encodes a flight trip into the feature row of a trained
regression model and reports the predicted ticket price.`

	ServeCmdName  = "serve"
	ServeCmdShort = "Serve the prediction form over HTTP"
	ServeCmdLong  = `Loads the model artifact once and serves the prediction form on "/"
and its JSON variant on "/api/predict".`

	PredictCmdName  = "predict"
	PredictCmdShort = "Predict the price of one trip"
	PredictCmdLong  = `Loads the model artifact, prices the trip given by flags and prints
the estimated price.`
)

// Config keys
const (
	keyModelPath = "model-path"
	keyAddress   = "address"
	envPrefix    = "FARESERV"

	defaultModelPath = "model.json"
	defaultAddress   = ":8080"
)
