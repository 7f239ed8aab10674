// internals/features/exports/service/csv_exporter.go
package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// ErrEmptyBatch: tidak ada record yang bisa diekspor (caller error, bukan server error)
var ErrEmptyBatch = errors.New("tidak ada data registrasi untuk diekspor")

// FieldMismatchError: record punya key set berbeda dari record pertama.
// Sumber lama membiarkan ini lolos jadi baris CSV yang rusak secara diam-diam;
// di sini mismatch ditolak eksplisit.
type FieldMismatchError struct {
	Index int
}

func (e *FieldMismatchError) Error() string {
	return fmt.Sprintf("record ke-%d punya field yang berbeda dari record pertama", e.Index)
}

// WriteFailureError: gagal menulis artefak ke storage (server error)
type WriteFailureError struct {
	Err error
}

func (e *WriteFailureError) Error() string { return "gagal menulis file CSV: " + e.Err.Error() }
func (e *WriteFailureError) Unwrap() error { return e.Err }

/* =========================================================
   CSV EXPORTER
   Artefak satu path tetap, ditimpa utuh setiap panggilan.
   mu menserialkan penulisan: panggilan paralel tidak bisa
   menghasilkan file sobek (last writer wins).
   ========================================================= */

type CSVExporter struct {
	path string
	mu   sync.Mutex
}

func NewCSVExporter(path string) *CSVExporter {
	return &CSVExporter{path: path}
}

func (e *CSVExporter) Path() string { return e.path }

// ExportJSON menerima body JSON (array of objects) dan menimpa artefak CSV.
// Mengembalikan jumlah baris data yang ditulis.
func (e *CSVExporter) ExportJSON(body []byte) (int, error) {
	headers, rows, err := ParseRecords(body)
	if err != nil {
		return 0, err
	}

	csvString := BuildCSV(headers, rows)

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := os.WriteFile(e.path, []byte(csvString), 0o644); err != nil {
		return 0, &WriteFailureError{Err: err}
	}
	return len(rows), nil
}

/* =========================================================
   PARSING
   Header = key record pertama SESUAI URUTAN DOKUMEN, maka
   dipakai token decoder (map Go tidak menjaga urutan key).
   ========================================================= */

// ParseRecords membongkar body menjadi header (urutan dokumen) + baris map.
func ParseRecords(body []byte) ([]string, []map[string]any, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(body, &raws); err != nil {
		return nil, nil, fmt.Errorf("payload harus array JSON: %w", err)
	}
	if len(raws) == 0 {
		return nil, nil, ErrEmptyBatch
	}

	headers, err := objectKeys(raws[0])
	if err != nil {
		return nil, nil, fmt.Errorf("record pertama tidak valid: %w", err)
	}

	rows := make([]map[string]any, 0, len(raws))
	for i, raw := range raws {
		var row map[string]any
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, nil, fmt.Errorf("record ke-%d tidak valid: %w", i, err)
		}
		if len(row) != len(headers) {
			return nil, nil, &FieldMismatchError{Index: i}
		}
		for _, h := range headers {
			if _, ok := row[h]; !ok {
				return nil, nil, &FieldMismatchError{Index: i}
			}
		}
		rows = append(rows, row)
	}
	return headers, rows, nil
}

// objectKeys membaca key sebuah objek JSON sesuai urutan kemunculannya.
func objectKeys(raw json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("bukan objek JSON")
	}

	var keys []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, errors.New("key objek bukan string")
		}
		keys = append(keys, key)

		if err := skipValue(dec); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

// skipValue melewati satu value JSON (termasuk objek/array bersarang)
func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok || (d != '{' && d != '[') {
		return nil
	}
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}

/* =========================================================
   SERIALISASI
   Dialek: semua value di-stringify, tanda kutip digandakan,
   lalu seluruh field dibungkus kutip (aman untuk koma,
   kutip, dan newline di dalam value — RFC 4180 quoting).
   ========================================================= */

// BuildCSV menyusun string CSV: baris header + satu baris per record.
func BuildCSV(headers []string, rows []map[string]any) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(headers, ","))

	for _, row := range rows {
		fields := make([]string, 0, len(headers))
		for _, h := range headers {
			fields = append(fields, quoteField(stringifyValue(row[h])))
		}
		lines = append(lines, strings.Join(fields, ","))
	}
	return strings.Join(lines, "\n")
}

func quoteField(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// stringifyValue meniru konversi string longgar milik klien lama
func stringifyValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
