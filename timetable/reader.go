package timetable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/tripgraph/trip"
)

// Separator is the field delimiter of the trip file.
const Separator = ';'

// fieldCount is the number of columns of a trip row.
const fieldCount = 6

// row mirrors one line of the trip file; columns are matched by position.
type row struct {
	Number    string `csv:"number"`
	From      string `csv:"from"`
	To        string `csv:"to"`
	Cost      string `csv:"cost"`
	Departure string `csv:"departure"`
	Arrival   string `csv:"arrival"`
}

// ReadFile opens path and reads every trip from it.
func ReadFile(path string) ([]trip.Trip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("timetable: open %s: %w", path, err)
	}
	defer f.Close()

	log.Debug().Str("file", path).Msg("Loading trip file")

	trips, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("timetable: %s: %w", path, err)
	}

	log.Info().Str("file", path).Int("trips", len(trips)).Msg("Loaded trip file")

	return trips, nil
}

// Read decodes every row of r into a Trip. Empty lines are skipped.
func Read(r io.Reader) ([]trip.Trip, error) {
	reader := csv.NewReader(r)
	reader.Comma = Separator
	reader.TrimLeadingSpace = true
	// Short rows are reported as ErrMalformedRow below rather than by encoding/csv.
	reader.FieldsPerRecord = -1

	var rows []row
	err := gocsv.UnmarshalCSVWithoutHeaders(fieldLimit{reader}, &rows)
	if errors.Is(err, gocsv.ErrEmptyCSVFile) {
		return []trip.Trip{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}

	trips := make([]trip.Trip, 0, len(rows))
	for i := range rows {
		t, err := rows[i].toTrip()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		trips = append(trips, t)
	}

	return trips, nil
}

// fieldLimit rejects records with more fields than row has, which the
// header-less decoder cannot map.
type fieldLimit struct {
	*csv.Reader
}

func (f fieldLimit) Read() ([]string, error) {
	rec, err := f.Reader.Read()
	if err == nil && len(rec) > fieldCount {
		line, _ := f.Reader.FieldPos(0)
		return nil, fmt.Errorf("%w: line %d has %d fields, want %d", ErrMalformedRow, line, len(rec), fieldCount)
	}

	return rec, err
}

func (f fieldLimit) ReadAll() ([][]string, error) {
	var records [][]string
	for {
		rec, err := f.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}

// toTrip validates and converts a decoded row.
func (r row) toTrip() (trip.Trip, error) {
	number := strings.TrimSpace(strings.TrimPrefix(r.Number, "\ufeff"))
	if number == "" || r.Departure == "" || r.Arrival == "" {
		return trip.Trip{}, fmt.Errorf("%w: missing fields", ErrMalformedRow)
	}

	from, err := parseStation("from", r.From)
	if err != nil {
		return trip.Trip{}, err
	}
	to, err := parseStation("to", r.To)
	if err != nil {
		return trip.Trip{}, err
	}
	cost, err := ParseCost(r.Cost)
	if err != nil {
		return trip.Trip{}, err
	}
	dep, err := ParseClock(r.Departure)
	if err != nil {
		return trip.Trip{}, err
	}
	arr, err := ParseClock(r.Arrival)
	if err != nil {
		return trip.Trip{}, err
	}

	return trip.New(number, from, to, cost, dep, arr), nil
}
