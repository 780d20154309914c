package municipality

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"locator/config"
	"locator/internal/domain/entity"
	"locator/internal/domain/service"
	"locator/internal/errors"
	"locator/internal/infra/storage"

	"go.uber.org/fx"
)

// Column names of the reference table. State is given either as a UF code
// ("uf") or as the IBGE numeric state code ("codigo_uf").
const (
	columnName      = "nome"
	columnLatitude  = "latitude"
	columnLongitude = "longitude"
	columnUF        = "uf"
	columnIBGECode  = "codigo_uf"
)

// LoadResult holds parsed municipalities and the number of rows skipped as invalid.
type LoadResult struct {
	Records []entity.Municipality
	Skipped int
}

// ParseCSV reads the municipality reference table.
// Rows with an unknown state or unparsable coordinates are skipped and counted.
func ParseCSV(r io.Reader) (*LoadResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read municipality header")
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}

	for _, required := range []string{columnName, columnLatitude, columnLongitude} {
		if _, ok := cols[required]; !ok {
			return nil, errors.Errorf("municipality table is missing column %q", required)
		}
	}
	_, hasUF := cols[columnUF]
	_, hasIBGE := cols[columnIBGECode]
	if !hasUF && !hasIBGE {
		return nil, errors.Errorf("municipality table needs a %q or %q column", columnUF, columnIBGECode)
	}

	result := &LoadResult{}
	lineNum := 1

	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, errors.Wrapf(readErr, "failed to read municipality line %d", lineNum+1)
		}
		lineNum++

		rec, ok := parseRecord(record, cols, hasUF)
		if !ok {
			result.Skipped++

			continue
		}
		result.Records = append(result.Records, rec)
	}

	return result, nil
}

func parseRecord(record []string, cols map[string]int, hasUF bool) (entity.Municipality, bool) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}

		return strings.TrimSpace(record[i])
	}

	var state entity.State
	var ok bool
	if hasUF {
		state, ok = entity.ParseState(field(columnUF))
	} else {
		code, err := strconv.Atoi(field(columnIBGECode))
		if err != nil {
			return entity.Municipality{}, false
		}
		state, ok = entity.StateFromIBGE(code)
	}
	if !ok {
		return entity.Municipality{}, false
	}

	lat, latErr := parseCoordinate(field(columnLatitude))
	lng, lngErr := parseCoordinate(field(columnLongitude))
	if latErr != nil || lngErr != nil {
		return entity.Municipality{}, false
	}

	coord := entity.NewCoordinate(lat, lng)
	name := field(columnName)
	if name == "" || !coord.IsValid() {
		return entity.Municipality{}, false
	}

	return entity.Municipality{Name: name, State: state, Coordinate: coord}, true
}

func parseCoordinate(val string) (float64, error) {
	val = strings.ReplaceAll(val, ",", ".")
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.Errorf("non-finite coordinate %q", val)
	}

	return f, nil
}

// IndexParams defines the dependencies for loading the index at startup
type IndexParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewIndexFromConfig loads the reference table from the configured bucket and builds the index once.
func NewIndexFromConfig(params IndexParams) (service.MunicipalityIndex, error) {
	cfg := params.Config.Municipalities

	bucket, err := storage.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open municipality bucket")
	}
	defer bucket.Close()

	reader, err := bucket.NewReader(params.Ctx, cfg.Key, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open municipality table %s", cfg.Key)
	}
	defer reader.Close()

	result, err := ParseCSV(reader)
	if err != nil {
		return nil, err
	}

	index := NewIndex(result.Records)
	params.Logger.Info("Municipality index loaded",
		slog.Int("municipalities", index.Len()),
		slog.Int("skippedRows", result.Skipped),
	)

	return index, nil
}
