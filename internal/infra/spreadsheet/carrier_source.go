// Package spreadsheet reads the carrier spreadsheet the store is synchronized from.
package spreadsheet

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"locator/config"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/service"
	"locator/internal/errors"
	"locator/internal/infra/storage"
	"locator/internal/util"

	"github.com/xuri/excelize/v2"
)

// Canonical header names, compared after normalization.
const (
	colOriginCity      = "cidadeorigem"
	colOriginState     = "uforigem"
	colGroupName       = "nomegrupo"
	colCarrierName     = "transportadora"
	colCompany         = "empresa"
	colContact         = "contato"
	colHasLoaded       = "jacarregamos"
	colHasRegistration = "temoscadastro"
	colProduct         = "produto"
	colPrice           = "preco"
)

var requiredColumns = []string{
	colOriginCity, colOriginState, colGroupName, colCarrierName, colCompany,
	colContact, colHasLoaded, colHasRegistration, colProduct, colPrice,
}

var truthy = map[string]struct{}{
	"sim": {}, "s": {}, "yes": {}, "y": {}, "true": {}, "1": {}, "x": {}, "verdadeiro": {},
}

var headerReplacer = strings.NewReplacer("_", "", " ", "", "-", "")

// carrierSource reads the carrier workbook from a blob bucket on every call,
// so a replaced spreadsheet is picked up by the next synchronization.
type carrierSource struct {
	bucketURL string
	key       string
	sheet     string
	logger    *slog.Logger
}

// NewCarrierSource creates the spreadsheet-backed CarrierSource.
func NewCarrierSource(cfg *config.Config, logger *slog.Logger) service.CarrierSource {
	return &carrierSource{
		bucketURL: cfg.Sync.BucketURL,
		key:       cfg.Sync.Key,
		sheet:     cfg.Sync.Sheet,
		logger:    logger,
	}
}

// ReadRows opens the workbook and returns its data rows.
func (s *carrierSource) ReadRows(ctx context.Context) ([]entity.CarrierSourceRow, error) {
	bucket, err := storage.OpenBucket(ctx, s.bucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open carrier spreadsheet bucket")
	}
	defer bucket.Close()

	data, err := storage.ReadAll(ctx, bucket, s.key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read carrier spreadsheet %s", s.key)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, domainerrors.ErrSchemaMismatch.WithDetails("invalid workbook: " + err.Error())
	}
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("Failed to close carrier spreadsheet", slog.Any("error", err))
		}
	}()

	sheet := s.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	// Raw values keep numeric cells as "1234.56" whatever number format the
	// sheet applies; formatted text would come back as "1,234.56".
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, domainerrors.ErrSchemaMismatch.WithDetails("cannot read sheet " + sheet + ": " + err.Error())
	}

	result, err := ParseRows(rows, s.logger)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Carrier spreadsheet read",
		slog.String("key", s.key),
		slog.String("sheet", sheet),
		slog.String("size", util.ByteSize(int64(len(data)))),
		slog.String("sha256", util.Checksum(data)),
		slog.Int("rows", len(result)),
	)

	return result, nil
}

// ParseRows converts raw sheet rows (header first) into source rows.
// Blank rows are skipped. A header missing any required column yields ErrSchemaMismatch.
func ParseRows(rows [][]string, logger *slog.Logger) ([]entity.CarrierSourceRow, error) {
	if len(rows) == 0 {
		return nil, domainerrors.ErrSchemaMismatch.WithDetails("spreadsheet is empty")
	}

	cols := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		name := canonicalHeader(h)
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}

	var missing []string
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, domainerrors.ErrSchemaMismatch.WithDetails("missing spreadsheet columns: " + strings.Join(missing, ", "))
	}

	result := make([]entity.CarrierSourceRow, 0, len(rows)-1)
	for i, record := range rows[1:] {
		if isBlank(record) {
			continue
		}

		get := func(col string) string {
			idx := cols[col]
			if idx >= len(record) {
				return ""
			}

			return strings.TrimSpace(record[idx])
		}

		rowNum := i + 2
		price, err := ParsePrice(get(colPrice))
		if err != nil {
			logger.Warn("Unreadable carrier price, using zero",
				slog.Int("row", rowNum),
				slog.String("value", get(colPrice)),
			)
		}

		result = append(result, entity.CarrierSourceRow{
			Row:             rowNum,
			OriginCity:      get(colOriginCity),
			OriginState:     get(colOriginState),
			GroupName:       get(colGroupName),
			CarrierName:     get(colCarrierName),
			Company:         get(colCompany),
			Contact:         get(colContact),
			HasLoaded:       ParseBool(get(colHasLoaded)),
			HasRegistration: ParseBool(get(colHasRegistration)),
			Product:         get(colProduct),
			Price:           price,
		})
	}

	return result, nil
}

// ParseBool accepts the yes-like spellings used in the spreadsheet. Anything else is false.
func ParseBool(raw string) bool {
	_, ok := truthy[entity.NormalizeName(raw)]

	return ok
}

// ParsePrice parses price text typed into the sheet: "1.234,56", "1234.56",
// "R$ 1.234,56" and "1,234.56". When both separators appear the last one is
// the decimal mark; a lone comma is always decimal. An empty cell is zero.
func ParsePrice(raw string) (float64, error) {
	val := strings.TrimSpace(raw)
	val = strings.TrimPrefix(val, "R$")
	val = strings.ReplaceAll(val, " ", "")
	val = strings.ReplaceAll(val, "\u00a0", "")
	if val == "" {
		return 0, nil
	}

	lastComma, lastDot := strings.LastIndex(val, ","), strings.LastIndex(val, ".")
	switch {
	case lastComma >= 0 && lastDot > lastComma:
		val = strings.ReplaceAll(val, ",", "")
	case lastComma >= 0:
		val = strings.ReplaceAll(val, ".", "")
		val = strings.ReplaceAll(val, ",", ".")
	}

	price, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid price %q", raw)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, errors.Errorf("invalid price %q", raw)
	}

	return entity.RoundPrice(price), nil
}

func canonicalHeader(h string) string {
	return headerReplacer.Replace(entity.NormalizeName(h))
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}

	return true
}
