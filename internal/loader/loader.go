// Package loader reads process sets from CSV, JSON or YAML files.
package loader

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cpu-scheduler/internal/requests"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

// LoadFile reads a schedule request, choosing the parser by file extension.
func LoadFile(path string) (*requests.ScheduleRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var req *requests.ScheduleRequest
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		req, err = ParseCSV(f)
	case ".json":
		req, err = ParseJSON(f)
	case ".yaml", ".yml":
		req, err = ParseYAML(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return req, nil
}

// ParseCSV reads rows of id,arrival,burst[,priority]. A header row whose first
// cell is "id" is skipped. An empty priority cell leaves the priority unset.
func ParseCSV(r io.Reader) (*requests.ScheduleRequest, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}

	req := &requests.ScheduleRequest{Processes: make([]requests.Process, 0, len(rows))}
	for i, row := range rows {
		if i == 0 && len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "id") {
			continue
		}
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("line %d: expected 3 or 4 columns, got %d", i+1, len(row))
		}

		p := requests.Process{ProcessId: strings.TrimSpace(row[0])}
		if p.ArrivalTime, err = parseInt(row[1]); err != nil {
			return nil, fmt.Errorf("line %d: arrival time: %w", i+1, err)
		}
		if p.BurstTime, err = parseInt(row[2]); err != nil {
			return nil, fmt.Errorf("line %d: burst time: %w", i+1, err)
		}
		if len(row) == 4 && strings.TrimSpace(row[3]) != "" {
			priority, err := parseInt(row[3])
			if err != nil {
				return nil, fmt.Errorf("line %d: priority: %w", i+1, err)
			}
			p.Priority = &priority
		}
		req.Processes = append(req.Processes, p)
	}
	return req, nil
}

func ParseJSON(r io.Reader) (*requests.ScheduleRequest, error) {
	var req requests.ScheduleRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, fmt.Errorf("parsing json: %w", err)
	}
	return &req, nil
}

func ParseYAML(r io.Reader) (*requests.ScheduleRequest, error) {
	var req requests.ScheduleRequest
	if err := yaml.NewDecoder(r).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	return &req, nil
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
