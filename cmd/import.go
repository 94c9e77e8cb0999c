package main

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync/atomic"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vanshikakhator/civic-pulse-72cbea05/internal/model"
	"github.com/vanshikakhator/civic-pulse-72cbea05/internal/store"
)

var (
	importLimit   int
	importWorkers int
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Bulk-load complaints from a CSV export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		f, err := os.Open(args[0])
		if err != nil {
			return eris.Wrapf(err, "open %s", args[0])
		}
		defer f.Close() //nolint:errcheck

		complaints, err := parseComplaintCSV(f)
		if err != nil {
			return err
		}
		if importLimit > 0 && len(complaints) > importLimit {
			complaints = complaints[:importLimit]
		}

		imported, err := importComplaints(ctx, st, complaints, importWorkers)
		zap.L().Info("import complete",
			zap.Int("imported", imported),
			zap.Int("parsed", len(complaints)),
		)
		return err
	},
}

func init() {
	importCmd.Flags().IntVar(&importLimit, "limit", 0, "max number of rows to import (0 = all)")
	importCmd.Flags().IntVar(&importWorkers, "workers", 4, "concurrent insert workers")
	rootCmd.AddCommand(importCmd)
}

// importComplaints inserts records with bounded concurrency and returns the
// number stored.
func importComplaints(ctx context.Context, st store.Store, complaints []model.Complaint, workers int) (int, error) {
	if workers <= 0 {
		workers = 1
	}

	var imported atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, c := range complaints {
		c := c
		g.Go(func() error {
			if _, err := st.CreateComplaint(ctx, c); err != nil {
				return eris.Wrapf(err, "import %q", c.Title)
			}
			imported.Add(1)
			return nil
		})
	}

	err := g.Wait()
	return int(imported.Load()), err
}

// parseComplaintCSV reads a header-first CSV of complaints. Column order in
// the file is free; title, location, category, and priority are required
// columns. Rows with an
// unknown priority or status are rejected so bad upstream data surfaces at
// the boundary instead of inside the analytics engine.
func parseComplaintCSV(r io.Reader) ([]model.Complaint, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "read csv header")
	}

	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, required := range []string{"title", "location", "category", "priority"} {
		if _, ok := idx[required]; !ok {
			return nil, eris.Errorf("csv header missing %q column", required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var out []model.Complaint
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrapf(err, "read csv line %d", line+1)
		}
		line++

		c := model.Complaint{
			Title:       field(record, "title"),
			Description: field(record, "description"),
			Location:    field(record, "location"),
			Category:    field(record, "category"),
		}

		c.Priority, err = model.ParsePriority(field(record, "priority"))
		if err != nil {
			return nil, eris.Wrapf(err, "csv line %d", line)
		}
		if raw := field(record, "status"); raw != "" {
			c.Status, err = model.ParseStatus(raw)
			if err != nil {
				return nil, eris.Wrapf(err, "csv line %d", line)
			}
		} else {
			c.Status = model.StatusPending
		}

		if lat := field(record, "latitude"); lat != "" {
			v, err := strconv.ParseFloat(lat, 64)
			if err != nil {
				return nil, eris.Wrapf(err, "csv line %d: latitude", line)
			}
			c.Latitude = &v
		}
		if lng := field(record, "longitude"); lng != "" {
			v, err := strconv.ParseFloat(lng, 64)
			if err != nil {
				return nil, eris.Wrapf(err, "csv line %d: longitude", line)
			}
			c.Longitude = &v
		}

		out = append(out, c)
	}

	return out, nil
}
