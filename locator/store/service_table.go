// locator/store/service_table.go
package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"
)

// Required CSV header columns. Column order is irrelevant; extras are ignored.
const (
	columnServiceName = "service_name"
	columnHost        = "host"
	columnPort        = "port"
)

// ServiceRecord is a single service registration: a name resolving to the
// host and port the service listens on.
type ServiceRecord struct {
	Name string
	Host string
	Port int
}

// ServiceTable is the full name-to-record directory. It is built once at
// startup and never mutated afterwards, so it is safe to share across
// concurrent lookups without locking.
type ServiceTable struct {
	records map[string]ServiceRecord
}

// NewServiceTable builds a table from the given records. Later records
// overwrite earlier ones with the same name.
func NewServiceTable(records []ServiceRecord) *ServiceTable {
	table := &ServiceTable{records: make(map[string]ServiceRecord, len(records))}
	for _, rec := range records {
		table.records[rec.Name] = rec
	}
	return table
}

// Lookup resolves a service name to its record. The name is matched verbatim,
// with no case-folding or trimming.
func (st *ServiceTable) Lookup(name string) (ServiceRecord, bool) {
	rec, ok := st.records[name]
	return rec, ok
}

// Len returns the number of registered services.
func (st *ServiceTable) Len() int {
	return len(st.records)
}

// LoadServiceTable reads the CSV file at path and builds the service table.
//
// A missing file is not an error: the locator should still start and answer
// every lookup with a 404 rather than crash, so it logs a warning and returns
// an empty table. A file that exists but cannot be parsed, or whose header
// lacks a required column, is a startup error. Individual malformed rows
// (empty name or host, non-integer or out-of-range port) are skipped with a
// warning so one bad row cannot take the whole directory down.
func LoadServiceTable(path string, logger *zap.Logger) (*ServiceTable, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("Services CSV file not found, starting with an empty table", zap.String("path", path))
			return NewServiceTable(nil), nil
		}
		return nil, fmt.Errorf("failed to open services CSV '%s': %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // rows are validated against the header below

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("services CSV '%s' is empty, expected a header row", path)
		}
		return nil, fmt.Errorf("failed to read header of services CSV '%s': %w", path, err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, required := range []string{columnServiceName, columnHost, columnPort} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("services CSV '%s' is missing required column '%s'", path, required)
		}
	}

	var records []ServiceRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d of services CSV '%s': %w", line, path, err)
		}

		rec, err := parseRecord(row, columns)
		if err != nil {
			logger.Warn("Skipping malformed row in services CSV",
				zap.String("path", path),
				zap.Int("line", line),
				zap.Error(err),
			)
			continue
		}
		// Later rows win on duplicate names
		records = append(records, rec)
	}

	table := NewServiceTable(records)
	logger.Info("Loaded service table", zap.String("path", path), zap.Int("services", table.Len()))
	return table, nil
}

func parseRecord(row []string, columns map[string]int) (ServiceRecord, error) {
	field := func(name string) string {
		idx := columns[name]
		if idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	rec := ServiceRecord{
		Name: field(columnServiceName),
		Host: field(columnHost),
	}
	if rec.Name == "" {
		return ServiceRecord{}, fmt.Errorf("empty %s", columnServiceName)
	}
	if rec.Host == "" {
		return ServiceRecord{}, fmt.Errorf("empty %s", columnHost)
	}

	port, err := strconv.Atoi(field(columnPort))
	if err != nil {
		return ServiceRecord{}, fmt.Errorf("invalid port '%s': %w", field(columnPort), err)
	}
	if port < 0 || port > 65535 {
		return ServiceRecord{}, fmt.Errorf("port %d out of range [0, 65535]", port)
	}
	rec.Port = port

	return rec, nil
}
