package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/objectflow/objectflow-go/pkg/log"
	"github.com/objectflow/objectflow-go/pkg/model"
)

// RunExport exports the log file to the specified format.
func RunExport(path, format, output string) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	// Determine output writer
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	return export(reader, format, w)
}

func export(reader *log.Reader, format string, w io.Writer) error {
	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

// jsonEvent is one exported JSONL line. Value holds the typed payload
// when the trace carries the value's encoding, and its text otherwise.
type jsonEvent struct {
	Timestamp  time.Time           `json:"timestamp"`
	RegistryID string              `json:"registry_id"`
	Category   string              `json:"category"`
	Object     string              `json:"object"`
	Resource   string              `json:"resource,omitempty"`
	Peer       string              `json:"peer,omitempty"`
	Kind       string              `json:"kind,omitempty"`
	Value      any                 `json:"value,omitempty"`
	Interval   *log.IntervalData   `json:"interval,omitempty"`
	Error      *log.ErrorEventData `json:"error,omitempty"`
}

func toJSONEvent(event log.Event) jsonEvent {
	je := jsonEvent{
		Timestamp:  event.Timestamp.UTC(),
		RegistryID: event.RegistryID,
		Category:   event.Category.String(),
		Object:     event.Object.String(),
		Interval:   event.Interval,
		Error:      event.Error,
	}
	if event.Resource != nil {
		je.Resource = event.Resource.String()
	}
	if event.Peer != nil {
		je.Peer = event.Peer.String()
	}
	if event.Value != nil {
		je.Kind = event.Value.Kind
		je.Value = event.Value.Text
		var v model.Value
		if err := event.Value.Decode(&v); err == nil {
			je.Value = typedValue(v)
		}
	}
	return je
}

func typedValue(v model.Value) any {
	if l, err := v.AsLink(); err == nil {
		return l.String()
	}
	return v.Interface()
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(toJSONEvent(event)); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "registry_id", "category", "object", "resource", "peer", "kind", "value", "error"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		var resource, peer, kind, value, errMsg string
		if event.Resource != nil {
			resource = event.Resource.String()
		}
		if event.Peer != nil {
			peer = event.Peer.String()
		}
		if event.Value != nil {
			kind = event.Value.Kind
			value = event.Value.Text
		}
		if event.Error != nil {
			errMsg = event.Error.Message
		}

		row := []string{
			event.Timestamp.UTC().Format(timeLayout),
			event.RegistryID,
			event.Category.String(),
			event.Object.String(),
			resource,
			peer,
			kind,
			value,
			errMsg,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}
