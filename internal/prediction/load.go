package prediction

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mwiater/mlmon/internal/util"
)

// UnmarshalJSON decodes a record exported by the monitoring backend. The
// prediction date may be RFC 3339, a naive ISO timestamp or unix seconds.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID             json.RawMessage  `json:"id"`
		Prediction     Value            `json:"prediction"`
		Actual         Value            `json:"actual"`
		PredictionDate json.RawMessage  `json:"prediction_date"`
		InputData      map[string]Value `json:"input_data"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.ID = rawString(raw.ID)
	r.Prediction = raw.Prediction
	r.Actual = raw.Actual
	r.InputData = raw.InputData
	r.PredictionDate = time.Time{}

	if stamp := rawString(raw.PredictionDate); stamp != "" {
		t, ok := util.ParseTime(stamp)
		if !ok {
			return fmt.Errorf("invalid prediction_date %q", stamp)
		}
		r.PredictionDate = t
	}
	return nil
}

// rawString unquotes a JSON string or returns the literal text of any other scalar.
func rawString(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	return string(trimmed)
}

// Decode reads records from either a JSON array or JSON Lines.
func Decode(r io.Reader) ([]Record, error) {
	br := bufio.NewReader(r)
	first, err := peekNonSpace(br)
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	if first == '[' {
		var records []Record
		if err := json.NewDecoder(br).Decode(&records); err != nil {
			return nil, fmt.Errorf("unable to parse records array: %w", err)
		}
		return records, nil
	}

	var records []Record
	scanner := bufio.NewScanner(br)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var rec Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("unable to parse records JSONL line %d: %w", lineNo, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading records: %w", err)
	}
	return records, nil
}

// LoadFile reads a records file written as a JSON array or JSON Lines.
func LoadFile(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open records file %s: %w", path, err)
	}
	defer file.Close()

	records, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		if err := br.UnreadByte(); err != nil {
			return 0, err
		}
		return b, nil
	}
}
