// Package reports builds the operational reports and the CSV/JSON exports
// the administrative tool produces.
package reports

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/fcja/agendamentos/internal/domain"
)

// Service runs count queries and serializes listings to files.
type Service struct {
	counter Counter
	lister  Lister
	dir     string
	logger  Logger
}

// NewService wires the report queries. dir is where report files land; it is
// created on first write.
func NewService(counter Counter, lister Lister, dir string, logger Logger) *Service {
	return &Service{
		counter: counter,
		lister:  lister,
		dir:     dir,
		logger:  logger,
	}
}

// Interval counts bookings per category between start and end, inclusive.
func (s *Service) Interval(ctx context.Context, start, end time.Time) (*IntervalReport, error) {
	rep := &IntervalReport{Start: start, End: end}
	for _, cat := range domain.Categories {
		n, err := s.counter.CountByDateRange(ctx, cat, start, end)
		if err != nil {
			s.logger.Error("Interval: count failed for %s: %v", cat, err)
			return nil, fmt.Errorf("%w: Interval - count %s: %v", ErrStorage, cat, err)
		}
		rep.Counts = append(rep.Counts, CategoryCount{Category: cat, Count: n})
		rep.Total += n
	}
	return rep, nil
}

// Shift splits one day's bookings by half-day shift per category.
func (s *Service) Shift(ctx context.Context, date time.Time) (*ShiftReport, error) {
	rep := &ShiftReport{Date: date}
	for _, cat := range domain.Categories {
		morning, afternoon, err := s.counter.CountByShift(ctx, cat, date)
		if err != nil {
			s.logger.Error("Shift: count failed for %s: %v", cat, err)
			return nil, fmt.Errorf("%w: Shift - count %s: %v", ErrStorage, cat, err)
		}
		rep.Counts = append(rep.Counts, ShiftCount{Category: cat, Morning: morning, Afternoon: afternoon})
		rep.TotalMorning += morning
		rep.TotalAfternoon += afternoon
	}
	return rep, nil
}

// WriteIntervalCSV runs the interval report and writes it as CSV into the
// reports directory, returning the file path.
func (s *Service) WriteIntervalCSV(ctx context.Context, start, end time.Time) (string, error) {
	rep, err := s.Interval(ctx, start, end)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("relatorio_intervalo_%s_a_%s.csv",
		start.Format(domain.DateFormat), end.Format(domain.DateFormat))

	records := [][]string{{"categoria", "quantidade"}}
	for _, c := range rep.Counts {
		records = append(records, []string{string(c.Category), strconv.FormatInt(c.Count, 10)})
	}
	records = append(records, []string{"total", strconv.FormatInt(rep.Total, 10)})

	return s.writeCSVFile(name, records)
}

// WriteShiftCSV runs the shift report and writes it as CSV into the reports
// directory, returning the file path.
func (s *Service) WriteShiftCSV(ctx context.Context, date time.Time) (string, error) {
	rep, err := s.Shift(ctx, date)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("relatorio_turno_%s.csv", date.Format(domain.DateFormat))

	records := [][]string{{"categoria", "manhã", "tarde"}}
	for _, c := range rep.Counts {
		records = append(records, []string{
			string(c.Category),
			strconv.FormatInt(c.Morning, 10),
			strconv.FormatInt(c.Afternoon, 10),
		})
	}
	records = append(records, []string{
		"total",
		strconv.FormatInt(rep.TotalMorning, 10),
		strconv.FormatInt(rep.TotalAfternoon, 10),
	})

	return s.writeCSVFile(name, records)
}

// ExportCSV streams one category as CSV: the column header in query order,
// then one row per record, newest first.
func (s *Service) ExportCSV(ctx context.Context, cat domain.Category, f domain.ListFilter, w io.Writer) error {
	rows, err := s.lister.Rows(ctx, cat, f)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(domain.Columns[cat]); err != nil {
		return fmt.Errorf("%w: ExportCSV - header: %v", ErrWrite, err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("%w: ExportCSV - row: %v", ErrWrite, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: ExportCSV - flush: %v", ErrWrite, err)
	}
	return nil
}

// ExportJSON streams one category as a JSON array of records, newest first.
func (s *Service) ExportJSON(ctx context.Context, cat domain.Category, f domain.ListFilter, w io.Writer) error {
	records, err := s.lister.Records(ctx, cat, f)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("%w: ExportJSON - encode: %v", ErrWrite, err)
	}
	return nil
}

// ExportAll writes one <table>_completo.<ext> file per category into dir.
// Returns the paths written.
func (s *Service) ExportAll(ctx context.Context, dir, format string, f domain.ListFilter) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: ExportAll - mkdir %s: %v", ErrWrite, dir, err)
	}

	var paths []string
	for _, cat := range domain.Categories {
		path := filepath.Join(dir, fmt.Sprintf("%s_completo.%s", cat.Table(), format))
		file, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("%w: ExportAll - create %s: %v", ErrWrite, path, err)
		}

		switch format {
		case "json":
			err = s.ExportJSON(ctx, cat, f, file)
		default:
			err = s.ExportCSV(ctx, cat, f, file)
		}
		if cerr := file.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return nil, err
		}

		s.logger.Info("ExportAll: wrote %s", path)
		paths = append(paths, path)
	}
	return paths, nil
}

func (s *Service) writeCSVFile(name string, records [][]string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: mkdir %s: %v", ErrWrite, s.dir, err)
	}

	path := filepath.Join(s.dir, name)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: create %s: %v", ErrWrite, path, err)
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	if err := cw.WriteAll(records); err != nil {
		return "", fmt.Errorf("%w: write %s: %v", ErrWrite, path, err)
	}

	s.logger.Info("report written to %s", path)
	return path, nil
}
