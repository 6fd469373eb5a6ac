// Command objectflow-log is a tool for viewing and analyzing ObjectFlow
// trace files.
//
// Trace files are written by objectflow when started with the -flow-log flag.
//
// Usage:
//
//	objectflow-log <command> [flags] <file.flog>
//
// Commands:
//
//	view     View trace file in human-readable format
//	export   Export trace file to JSON or CSV format
//	filter   Filter trace file and write to new file
//	stats    Show statistics about the trace file
//
// Examples:
//
//	# View all events
//	objectflow-log view flow.flog
//
//	# View only pushes
//	objectflow-log view --category push flow.flog
//
//	# View one object
//	objectflow-log view --object Relay/0 flow.flog
//
//	# Export to JSONL
//	objectflow-log export --format jsonl flow.flog
//
//	# Keep only errors
//	objectflow-log filter --category error -o errors.flog flow.flog
//
//	# Show statistics
//	objectflow-log stats flow.flog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/objectflow/objectflow-go/cmd/objectflow-log/commands"
)

const usage = `objectflow-log - ObjectFlow Trace Analyzer

Usage:
  objectflow-log <command> [flags] <file.flog>

Commands:
  view     View trace file in human-readable format
  export   Export trace file to JSON or CSV format
  filter   Filter trace file and write to new file
  stats    Show statistics about the trace file

Use "objectflow-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func requirePath(fs *flag.FlagSet) string {
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `objectflow-log view - View trace file in human-readable format

Usage:
  objectflow-log view [flags] <file.flog>

Flags:
`)
		fs.PrintDefaults()
	}

	category := fs.String("category", "", "Filter by category (value, default, pull, push, interval, error)")
	object := fs.String("object", "", "Filter by object (type/instance)")
	registry := fs.String("registry", "", "Filter by registry ID")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	filter, err := commands.BuildFilter(commands.FilterOptions{
		RegistryID: *registry,
		Object:     *object,
		Category:   *category,
	})
	if err != nil {
		fail(err)
	}

	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `objectflow-log export - Export trace file to JSON or CSV format

Usage:
  objectflow-log export [flags] <file.flog>

Flags:
`)
		fs.PrintDefaults()
	}

	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	if err := commands.RunExport(path, *format, *output); err != nil {
		fail(err)
	}
}

func runFilter(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `objectflow-log filter - Filter trace file and write to new file

Usage:
  objectflow-log filter [flags] <file.flog>

Flags:
`)
		fs.PrintDefaults()
	}

	output := fs.String("o", "", "Output file (required)")
	registry := fs.String("registry", "", "Filter by registry ID")
	object := fs.String("object", "", "Filter by object (type/instance)")
	timeStart := fs.String("time-start", "", "Filter by start time (RFC3339)")
	timeEnd := fs.String("time-end", "", "Filter by end time (RFC3339)")
	category := fs.String("category", "", "Filter by category (value, default, pull, push, interval, error)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	count, err := commands.RunFilter(path, commands.FilterOptions{
		Output:     *output,
		RegistryID: *registry,
		Object:     *object,
		TimeStart:  *timeStart,
		TimeEnd:    *timeEnd,
		Category:   *category,
	})
	if err != nil {
		fail(err)
	}
	fmt.Printf("Filtered %d events to %s\n", count, *output)
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `objectflow-log stats - Show statistics about the trace file

Usage:
  objectflow-log stats <file.flog>

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := requirePath(fs)

	if err := commands.RunStats(path, os.Stdout); err != nil {
		fail(err)
	}
}
