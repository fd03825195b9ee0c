package utils

import (
	"encoding/json"
	"testing"
)

func TestNormalizeOptionsBareStrings(t *testing.T) {
	var options []RawOption
	payload := `["red", "green", "blue"]`
	if err := json.Unmarshal([]byte(payload), &options); err != nil {
		t.Fatalf("decoding %q failed: %v", payload, err)
	}

	normalized := NormalizeOptions(options)
	if len(normalized) != 3 {
		t.Fatalf("got %d options, want 3", len(normalized))
	}

	wantKeys := []string{"A", "B", "C"}
	for i, opt := range normalized {
		if opt.Key != wantKeys[i] {
			t.Errorf("option %d key = %q, want %q", i, opt.Key, wantKeys[i])
		}
		if opt.IsCorrect {
			t.Errorf("option %d marked correct, bare strings default to incorrect", i)
		}
	}
	if normalized[1].Text != "green" {
		t.Errorf("option 1 text = %q, want %q", normalized[1].Text, "green")
	}
}

func TestNormalizeOptionsStructured(t *testing.T) {
	var options []RawOption
	payload := `[{"text": "Paris", "isCorrect": true}, {"key": "Z", "text": "Rome"}, "Berlin"]`
	if err := json.Unmarshal([]byte(payload), &options); err != nil {
		t.Fatalf("decoding %q failed: %v", payload, err)
	}

	normalized := NormalizeOptions(options)

	if normalized[0].Key != "A" || !normalized[0].IsCorrect {
		t.Errorf("option 0 = %+v, want default key A and isCorrect", normalized[0])
	}
	if normalized[1].Key != "Z" {
		t.Errorf("option 1 key = %q, explicit key must win over positional default", normalized[1].Key)
	}
	if normalized[2].Key != "C" || normalized[2].Text != "Berlin" {
		t.Errorf("option 2 = %+v, want key C text Berlin", normalized[2])
	}

	if got := CountCorrect(normalized); got != 1 {
		t.Errorf("CountCorrect = %d, want 1", got)
	}
}
