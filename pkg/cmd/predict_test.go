package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nekruzvatanshoev/fareserv/pkg/fareserv/encoder"
	"github.com/nekruzvatanshoev/fareserv/pkg/fareserv/fault"
)

func writeModel(t *testing.T) string {
	t.Helper()
	cols := encoder.Columns()
	coef := make([]float64, len(cols))
	coef[encoder.TotalStops] = 1000
	raw, err := json.Marshal(map[string]any{
		"kind":         "linear",
		"columns":      cols,
		"intercept":    2500.126,
		"coefficients": coef,
	})
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runPredict(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(append([]string{PredictCmdName}, args...))
	err := RootCmd.Execute()
	return out.String(), err
}

func TestPredictCmd(t *testing.T) {
	out, err := runPredict(t,
		"--model-path", writeModel(t),
		"--airline", "IndiGo",
		"--additional-info", "No Info",
		"--stops", "1",
		"--source", "Delhi",
		"--destination", "Cochin",
		"--date", "2024-03-15",
		"--departure", "09:30",
		"--arrival", "12:45",
		"--duration", "3.25",
	)
	if err != nil {
		t.Fatalf("predict error = %v", err)
	}
	if !strings.Contains(out, "Estimated Price: ₹3500.13") {
		t.Errorf("Unexpected output: %q", out)
	}
}

func TestPredictCmdMissingModel(t *testing.T) {
	_, err := runPredict(t, "--model-path", filepath.Join(t.TempDir(), "none.json"))
	if !fault.IsModelLoad(err) {
		t.Fatalf("Expected ModelLoadError, Got: %v", err)
	}
}
