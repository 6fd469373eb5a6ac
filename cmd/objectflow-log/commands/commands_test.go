package commands

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/objectflow/objectflow-go/pkg/log"
	"github.com/objectflow/objectflow-go/pkg/model"
)

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.flog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test log: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()
	return path
}

func sampleEvents() []log.Event {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 0, time.UTC)
	relay := log.ObjectRef{Type: 43000}
	ticker := log.ObjectRef{Type: 43002}
	return []log.Event{
		{Timestamp: ts, RegistryID: "abcdef1234", Category: log.CategoryInterval, Object: ticker,
			Interval: &log.IntervalData{Now: 100, Elapsed: 100, Interval: 100}},
		{Timestamp: ts.Add(time.Millisecond), RegistryID: "abcdef1234", Category: log.CategoryPull, Object: ticker,
			Peer: &log.ObjectRef{Type: 43001}, Value: &log.ValueData{Kind: "integer", Text: "1"}},
		{Timestamp: ts.Add(2 * time.Millisecond), RegistryID: "abcdef1234", Category: log.CategoryPush, Object: ticker,
			Peer: &relay, Value: &log.ValueData{Kind: "integer", Text: "1"}},
		{Timestamp: ts.Add(3 * time.Millisecond), RegistryID: "abcdef1234", Category: log.CategoryDefault, Object: relay,
			Resource: &log.ResourceRef{Type: 27002}, Value: &log.ValueData{Kind: "integer", Text: "1"}},
		{Timestamp: ts.Add(4 * time.Millisecond), RegistryID: "abcdef1234", Category: log.CategoryError, Object: relay,
			Error: &log.ErrorEventData{Message: "link target missing", Context: "push"}},
	}
}

func TestViewFormatsEvents(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	var buf bytes.Buffer
	if err := RunView(path, log.Filter{}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"2026-01-28T10:15:32.000000Z [reg:abcdef12] INTERVAL 43002/0 Ticker",
		"  Now: 100  Elapsed: 100  Interval: 100",
		"  From: 43001/0 Counter",
		"  To: 43000/0 Relay",
		"  Resource: 27002/0 (InputValue)",
		"  Value: 1 (integer)",
		"  Message: link target missing",
		"  Context: push",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestViewFilter(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	filter, err := BuildFilter(FilterOptions{Object: "Relay/0"})
	if err != nil {
		t.Fatalf("BuildFilter failed: %v", err)
	}

	var buf bytes.Buffer
	if err := RunView(path, filter, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	if got := strings.Count(buf.String(), "[reg:"); got != 2 {
		t.Errorf("got %d events, want 2", got)
	}
}

func TestBuildFilterErrors(t *testing.T) {
	tests := []FilterOptions{
		{Category: "frame"},
		{Object: "43000/0/27002"},
		{Object: "nope"},
		{TimeStart: "yesterday"},
		{TimeEnd: "2026-13-01"},
	}
	for _, opts := range tests {
		if _, err := BuildFilter(opts); err == nil {
			t.Errorf("BuildFilter(%+v) should fail", opts)
		}
	}
}

func TestFilterWritesMatching(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	outPath := filepath.Join(t.TempDir(), "filtered.flog")

	count, err := RunFilter(path, FilterOptions{Output: outPath, Category: "push"})
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}

	reader, err := log.NewReader(outPath)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer reader.Close()

	event, err := reader.Next()
	if err != nil {
		t.Fatalf("failed to read event: %v", err)
	}
	if event.Category != log.CategoryPush {
		t.Errorf("category = %v, want PUSH", event.Category)
	}
	if _, err := reader.Next(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestExportJSONL(t *testing.T) {
	reader, err := log.NewReader(createTestLogFile(t, sampleEvents()))
	if err != nil {
		t.Fatal(err)
	}
	defer reader.Close()

	var buf bytes.Buffer
	if err := export(reader, "jsonl", &buf); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if first["registry_id"] != "abcdef1234" {
		t.Errorf("registry_id = %v", first["registry_id"])
	}
	if first["category"] != "INTERVAL" || first["object"] != "43002/0" {
		t.Errorf("category/object = %v %v", first["category"], first["object"])
	}

	// Events without an encoded value fall back to the text.
	var pull map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &pull); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if pull["value"] != "1" || pull["kind"] != "integer" {
		t.Errorf("value/kind = %v %v", pull["value"], pull["kind"])
	}
}

func encodedValue(t *testing.T, v model.Value) *log.ValueData {
	t.Helper()
	raw, err := v.MarshalCBOR()
	if err != nil {
		t.Fatalf("MarshalCBOR failed: %v", err)
	}
	return &log.ValueData{Kind: v.Kind().String(), Text: v.String(), Raw: raw}
}

func TestExportJSONLTypedValues(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 0, time.UTC)
	events := []log.Event{
		{Timestamp: ts, Category: log.CategoryValue, Value: encodedValue(t, model.Integer(111))},
		{Timestamp: ts, Category: log.CategoryValue, Value: encodedValue(t, model.Float(2.5))},
		{Timestamp: ts, Category: log.CategoryValue, Value: encodedValue(t, model.Bool(false))},
		{Timestamp: ts, Category: log.CategoryValue, Value: encodedValue(t, model.TimeValue(45))},
		{Timestamp: ts, Category: log.CategoryValue, Value: encodedValue(t, model.LinkValue(43000, 0))},
	}
	reader, err := log.NewReader(createTestLogFile(t, events))
	if err != nil {
		t.Fatal(err)
	}
	defer reader.Close()

	var buf bytes.Buffer
	if err := export(reader, "jsonl", &buf); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	want := []any{float64(111), 2.5, false, float64(45), "43000/0"}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i, line := range lines {
		var got map[string]any
		if err := json.Unmarshal([]byte(line), &got); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if got["value"] != want[i] {
			t.Errorf("line %d: value = %#v, want %#v", i, got["value"], want[i])
		}
	}
}

func TestExportCSV(t *testing.T) {
	reader, err := log.NewReader(createTestLogFile(t, sampleEvents()))
	if err != nil {
		t.Fatal(err)
	}
	defer reader.Close()

	var buf bytes.Buffer
	if err := export(reader, "csv", &buf); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	if len(rows) != 6 {
		t.Fatalf("got %d rows, want 6", len(rows))
	}
	if rows[0][2] != "category" || rows[3][2] != "PUSH" || rows[3][5] != "43000/0" {
		t.Errorf("unexpected rows: %v", rows)
	}
	if rows[5][8] != "link target missing" {
		t.Errorf("error column = %q", rows[5][8])
	}
}

func TestExportUnknownFormat(t *testing.T) {
	reader, err := log.NewReader(createTestLogFile(t, nil))
	if err != nil {
		t.Fatal(err)
	}
	defer reader.Close()

	if err := export(reader, "xml", io.Discard); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestStats(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	stats, err := CollectStats(path)
	if err != nil {
		t.Fatalf("CollectStats failed: %v", err)
	}
	if stats.TotalEvents != 5 || stats.Errors != 1 {
		t.Errorf("TotalEvents = %d, Errors = %d", stats.TotalEvents, stats.Errors)
	}
	ticker := stats.Objects[log.ObjectRef{Type: 43002}]
	if ticker == nil || ticker.Pulls != 1 || ticker.Pushes != 1 || ticker.Intervals != 1 {
		t.Errorf("ticker stats = %+v", ticker)
	}

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Total Events: 5", "Registries:   1", "PUSH:", "INTERVAL:", "[43002/0 Ticker] 3 events", "Errors: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q:\n%s", want, out)
		}
	}
}
