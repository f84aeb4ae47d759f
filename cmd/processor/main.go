// Command processor reads a JSON array of shipments from a file, flattens
// it into one event batch, runs the processing engine, and writes the
// result as JSON. Rejections are annotated with the source file path and
// exit non-zero.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/Pratikshinde2410/container-event-processing-engine/internal/anomaly"
	"github.com/Pratikshinde2410/container-event-processing-engine/internal/api"
	"github.com/Pratikshinde2410/container-event-processing-engine/internal/engine"
	"github.com/Pratikshinde2410/container-event-processing-engine/internal/schema"
)

func main() {
	file := flag.String("file", "", "path to a JSON array of shipments (required)")
	output := flag.String("output", "", "write the result to this file instead of stdout")
	pretty := flag.Bool("pretty", false, "indent the JSON output")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if *file == "" {
		slog.Error("missing required -file flag")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(*file, *output, *pretty); err != nil {
		slog.Error("processing failed", "file", *file, "err", err)
		os.Exit(1)
	}
}

func run(file, output string, pretty bool) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return errors.New("input must be a JSON array of shipments")
	}

	var shipments []schema.Shipment
	if err := json.Unmarshal(data, &shipments); err != nil {
		return fmt.Errorf("parse input: %w", err)
	}
	if len(shipments) == 0 {
		return errors.New("input array is empty")
	}

	events := schema.Flatten(shipments)
	if len(events) == 0 {
		return errors.New("input carries no events")
	}

	eng := engine.New(anomaly.DefaultThresholds())
	summaries, err := eng.Process(events)
	if err != nil {
		var verr *schema.ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		// Forward the rejection body, annotated with the source path.
		if werr := write(output, pretty, api.RejectionResponse{
			Error:            "Validation failed",
			ValidationErrors: verr.Errors,
			File:             file,
		}); werr != nil {
			return werr
		}
		return fmt.Errorf("batch rejected with %d validation error(s)", len(verr.Errors))
	}

	slog.Info("batch processed",
		"file", file,
		"events", len(events),
		"containers", len(summaries),
	)

	return write(output, pretty, api.ProcessResponse{
		Success:             true,
		BatchID:             uuid.NewString(),
		ContainersProcessed: len(summaries),
		Summaries:           summaries,
	})
}

func write(output string, pretty bool, v any) error {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	data = append(data, '\n')

	if output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
