package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"prospector-api/internal/schema"
)

var expectedHeader = []string{"service", "zip", "city", "state", "radius_miles"}

// SearchRow is one CSV line: either zip or city+state is filled in. Err is set when the line
// could not be parsed; such rows are reported by run and never submitted.
type SearchRow struct {
	Line        int
	Err         error
	Service     string
	Zip         string
	City        string
	State       string
	RadiusMiles int
}

type searchResult struct {
	ProspectSetID string `json:"prospectSetId"`
	Count         int    `json:"count"`
}

func main() {
	file := flag.String("file", "", "Path to the CSV file of searches")
	api := flag.String("api", "http://localhost:8080/api", "Base URL of the prospector API")
	timeout := flag.Duration("timeout", 10*time.Second, "Per-request timeout")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	f, err := os.Open(*file)
	if err != nil {
		fmt.Printf("Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, err := parseCSV(f)
	if err != nil {
		fmt.Printf("Error parsing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d rows\n", len(rows))

	client := &http.Client{Timeout: *timeout}
	ok, failed := run(context.Background(), client, *api, rows, os.Stdout)

	fmt.Printf("Done: %d succeeded, %d failed\n", ok, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func parseCSV(r io.Reader) ([]SearchRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(expectedHeader)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i, name := range expectedHeader {
		if strings.ToLower(strings.TrimSpace(header[i])) != name {
			return nil, fmt.Errorf("unexpected header %q, want %s", strings.Join(header, ","), strings.Join(expectedHeader, ","))
		}
	}

	var rows []SearchRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return nil, fmt.Errorf("failed to read record: %w", err)
			}
			rows = append(rows, SearchRow{Line: parseErr.StartLine, Err: parseErr.Err})
			continue
		}

		line, _ := reader.FieldPos(0)
		radius, err := strconv.Atoi(strings.TrimSpace(record[4]))
		if err != nil {
			rows = append(rows, SearchRow{Line: line, Err: fmt.Errorf("invalid radius_miles: %s", record[4])})
			continue
		}

		rows = append(rows, SearchRow{
			Line:        line,
			Service:     strings.TrimSpace(record[0]),
			Zip:         strings.TrimSpace(record[1]),
			City:        strings.TrimSpace(record[2]),
			State:       strings.TrimSpace(record[3]),
			RadiusMiles: radius,
		})
	}

	return rows, nil
}

// body renders the row as a search request and checks it against the same schema the API uses.
func (r SearchRow) body() ([]byte, error) {
	geo := map[string]any{"radiusMiles": r.RadiusMiles}
	if r.Zip != "" {
		geo["zip"] = r.Zip
	} else {
		geo["city"] = r.City
		geo["state"] = r.State
	}

	raw, err := json.Marshal(map[string]any{"service": r.Service, "geo": geo})
	if err != nil {
		return nil, err
	}
	if _, err := schema.ValidateSearchRequest(raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// run submits every parsed row and writes "prospectSetId,count" per success. Unparsable rows and
// failed submissions are reported on stderr and counted.
func run(ctx context.Context, client *http.Client, api string, rows []SearchRow, out io.Writer) (ok, failed int) {
	endpoint := strings.TrimRight(api, "/") + "/prospect/search"

	for _, row := range rows {
		if row.Err != nil {
			fmt.Fprintf(os.Stderr, "line %d: %v\n", row.Line, row.Err)
			failed++
			continue
		}

		result, err := submit(ctx, client, endpoint, row)
		if err != nil {
			fmt.Fprintf(os.Stderr, "line %d: %v\n", row.Line, err)
			failed++
			continue
		}
		fmt.Fprintf(out, "%s,%d\n", result.ProspectSetID, result.Count)
		ok++
	}
	return ok, failed
}

func submit(ctx context.Context, client *http.Client, endpoint string, row SearchRow) (*searchResult, error) {
	payload, err := row.body()
	if err != nil {
		return nil, fmt.Errorf("invalid row: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var result searchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}
