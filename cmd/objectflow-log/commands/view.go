// Package commands implements the objectflow-log CLI commands.
package commands

import (
	"fmt"
	"io"

	"github.com/objectflow/objectflow-go/pkg/inspect"
	"github.com/objectflow/objectflow-go/pkg/log"
)

const timeLayout = "2006-01-02T15:04:05.000000Z"

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [reg:id] CATEGORY object
	ts := event.Timestamp.UTC().Format(timeLayout)
	fmt.Fprintf(w, "%s [reg:%s] %-8s %s\n", ts, shortenID(event.RegistryID), event.Category, objectLabel(event.Object))

	if event.Resource != nil {
		name := inspect.ResourceTypeName(event.Resource.Type)
		if name != "" {
			fmt.Fprintf(w, "  Resource: %s (%s)\n", event.Resource, name)
		} else {
			fmt.Fprintf(w, "  Resource: %s\n", event.Resource)
		}
	}
	if event.Peer != nil {
		switch event.Category {
		case log.CategoryPull:
			fmt.Fprintf(w, "  From: %s\n", objectLabel(*event.Peer))
		default:
			fmt.Fprintf(w, "  To: %s\n", objectLabel(*event.Peer))
		}
	}
	if event.Value != nil {
		fmt.Fprintf(w, "  Value: %s (%s)\n", event.Value.Text, event.Value.Kind)
	}
	if event.Interval != nil {
		fmt.Fprintf(w, "  Now: %d  Elapsed: %d  Interval: %d\n",
			event.Interval.Now, event.Interval.Elapsed, event.Interval.Interval)
	}
	if event.Error != nil {
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenID returns the first 8 characters of a registry ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func objectLabel(ref log.ObjectRef) string {
	if name := inspect.ObjectTypeName(ref.Type); name != "" {
		return fmt.Sprintf("%s %s", ref, name)
	}
	return ref.String()
}

// formatErrorDetails writes error details.
func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	return log.ParseCategory(s)
}

// ParseObjectFlag parses an object reference ("43000/0" or "Relay/0").
func ParseObjectFlag(s string) (log.ObjectRef, error) {
	p, err := inspect.ParsePath(s)
	if err != nil {
		return log.ObjectRef{}, err
	}
	if !p.IsPartial {
		return log.ObjectRef{}, fmt.Errorf("invalid object: %s (must be type/instance)", s)
	}
	return log.ObjectRef{Type: p.ObjectType, Instance: p.ObjectInstance}, nil
}

// RunView executes the view command.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		formatEvent(output, event)
	}

	return nil
}
