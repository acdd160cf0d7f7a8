// internal/predictor/client_integration_test.go
//go:build integration
// +build integration

package predictor

import (
	"context"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"
)

// Runs against a live prediction service:
//
//	PREDICTOR_URL=http://localhost:8000/predict go test -tags integration ./internal/predictor/
func TestPredictIntegration(t *testing.T) {
	url := os.Getenv("PREDICTOR_URL")
	if url == "" {
		url = DefaultURL
	}

	client := NewClient(url, 10*time.Second, nil, zap.NewNop())
	result, err := client.Predict(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("Failed to score claim: %v", err)
	}

	if result.IsFraudulent == nil {
		t.Fatal("is_fraudulent missing from response")
	}
	if result.FraudProbability == nil {
		t.Fatal("fraud_probability missing from response")
	}
	if p := *result.FraudProbability; p < 0 || p > 1 {
		t.Errorf("fraud_probability = %v, want within [0, 1]", p)
	}

	t.Logf("Claim scored: fraudulent=%v probability=%v", *result.IsFraudulent, *result.FraudProbability)
}
