package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/objectflow/objectflow-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents      int
	EventsByCategory map[log.Category]int
	Objects          map[log.ObjectRef]*ObjectStats
	Registries       map[string]int
	Errors           int
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// ObjectStats holds statistics for a single object.
type ObjectStats struct {
	Events    int
	Pulls     int
	Pushes    int
	Intervals int
	Errors    int
}

// CollectStats reads the whole log file and aggregates it.
func CollectStats(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByCategory: make(map[log.Category]int),
		Objects:          make(map[log.ObjectRef]*ObjectStats),
		Registries:       make(map[string]int),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByCategory[event.Category]++
		stats.Registries[event.RegistryID]++

		// Track time range
		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		obj, ok := stats.Objects[event.Object]
		if !ok {
			obj = &ObjectStats{}
			stats.Objects[event.Object] = obj
		}
		obj.Events++
		switch event.Category {
		case log.CategoryPull:
			obj.Pulls++
		case log.CategoryPush:
			obj.Pushes++
		case log.CategoryInterval:
			obj.Intervals++
		}

		if event.Error != nil {
			stats.Errors++
			obj.Errors++
		}
	}

	return stats, nil
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := CollectStats(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== ObjectFlow Trace Statistics ===")
	fmt.Fprintln(w)

	// Time range
	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintf(w, "Registries:   %d\n", len(stats.Registries))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryValue, log.CategoryDefault, log.CategoryPull, log.CategoryPush, log.CategoryInterval, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Objects: %d\n", len(stats.Objects))
	if len(stats.Objects) > 0 {
		refs := make([]log.ObjectRef, 0, len(stats.Objects))
		for ref := range stats.Objects {
			refs = append(refs, ref)
		}
		sort.Slice(refs, func(i, j int) bool {
			if refs[i].Type != refs[j].Type {
				return refs[i].Type < refs[j].Type
			}
			return refs[i].Instance < refs[j].Instance
		})

		for _, ref := range refs {
			o := stats.Objects[ref]
			fmt.Fprintf(w, "  [%s] %d events, %d pulls, %d pushes, %d intervals\n",
				objectLabel(ref), o.Events, o.Pulls, o.Pushes, o.Intervals)
			if o.Errors > 0 {
				fmt.Fprintf(w, "           Errors: %d\n", o.Errors)
			}
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
