package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"cpu-scheduler/internal/core"
)

var ErrMalformedRow = errors.New("malformed process row")

// OpenProcessingFile opens a process file. The returned func closes it.
func OpenProcessingFile(path string) (*os.File, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open processing file: %w", err)
	}
	closeFn := func() {
		if err := f.Close(); err != nil {
			log.Printf("%v: error closing processing file", err)
		}
	}
	return f, closeFn, nil
}

// LoadProcesses reads "pid,arrival,burst" rows. Blank lines and lines
// starting with # are skipped. Only the shape is checked here; use
// core.ValidateProcesses for the value rules.
func LoadProcesses(r io.Reader) ([]core.Process, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	processes := make([]core.Process, 0)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV: %w", err)
		}
		line, _ := reader.FieldPos(0)

		if len(row) != 3 {
			return nil, fmt.Errorf("%w: line %d: want 3 fields, got %d", ErrMalformedRow, line, len(row))
		}
		values := make([]int, 3)
		for i, field := range row {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q is not an integer", ErrMalformedRow, line, field)
			}
			values[i] = v
		}
		processes = append(processes, core.Process{
			ID:          values[0],
			ArrivalTime: values[1],
			BurstTime:   values[2],
		})
	}

	return processes, nil
}

// LoadFile opens path and loads its processes.
func LoadFile(path string) ([]core.Process, error) {
	f, closeFile, err := OpenProcessingFile(path)
	if err != nil {
		return nil, err
	}
	defer closeFile()

	return LoadProcesses(f)
}
