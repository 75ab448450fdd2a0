package serializers_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fairfix/quote-engine/pkg/serializers"
	"gopkg.in/yaml.v3"
)

type testEstimate struct {
	Service string
	Total   float64
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := serializers.NewWriter(serializers.FormatJSON, &buf)

	data := []testEstimate{
		{Service: "Oil Change", Total: 100},
		{Service: "Tire Rotation", Total: 45.5},
	}

	err := writer.Serialize(data)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testEstimate
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if len(result) != 2 {
		t.Errorf("Expected 2 items, got %d", len(result))
	}

	if result[0].Service != "Oil Change" || result[0].Total != 100 {
		t.Errorf("Unexpected data: %+v", result[0])
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := serializers.NewWriter(serializers.FormatYAML, &buf)

	data := testEstimate{Service: "Oil Change", Total: 100}

	if err := writer.Serialize(data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testEstimate
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}

	if result.Service != "Oil Change" {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := serializers.NewWriter(serializers.FormatTable, &buf)

	data := testEstimate{Service: "Oil Change", Total: 100}

	if err := writer.Serialize(data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "FIELD") || !strings.Contains(out, "Oil Change") {
		t.Errorf("table output missing expected content:\n%s", out)
	}
}

func TestWriter_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	writer := serializers.NewWriter(serializers.Format("csv"), &buf)

	if err := writer.Serialize(testEstimate{}); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestFormat_IsUnknown(t *testing.T) {
	for _, f := range []serializers.Format{serializers.FormatJSON, serializers.FormatYAML, serializers.FormatTable} {
		if f.IsUnknown() {
			t.Errorf("format %q reported unknown", f)
		}
	}
	if !serializers.Format("xml").IsUnknown() {
		t.Error("expected xml to be unknown")
	}
}
