package remote

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEmptyOptions(t *testing.T) {
	buf, err := json.Marshal(&Options{})
	if err != nil {
		t.Fatalf("json.Marshal(&Options{}) returned error: %s", err)
	}
	if string(buf) != "{}" {
		t.Fatalf("json.Marshal(&Options{}) returned %q, expected '{}'", buf)
	}
	if !(&Options{}).IsZero() {
		t.Fatal("(&Options{}).IsZero() = false, want true")
	}
}

func TestToMap(t *testing.T) {
	o := &Options{
		EnableVNC:      true,
		EnableVideo:    true,
		VideoName:      "orders.mp4",
		SessionTimeout: "5m",
		Labels:         map[string]string{"suite": "orders"},
	}
	if o.IsZero() {
		t.Fatal("o.IsZero() = true, want false")
	}
	got, err := o.ToMap()
	if err != nil {
		t.Fatalf("o.ToMap() returned error: %v", err)
	}
	want := map[string]interface{}{
		"enableVNC":      true,
		"enableVideo":    true,
		"videoName":      "orders.mp4",
		"sessionTimeout": "5m",
		"labels":         map[string]interface{}{"suite": "orders"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("o.ToMap() returned diff (-want/+got):\n%s", diff)
	}
}
