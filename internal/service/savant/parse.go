package savant

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"DeceptionIndex/internal/domain/models"
	drepo "DeceptionIndex/internal/domain/repository"
	xutil "DeceptionIndex/pkg/util"
)

// Statcast CSV columns read by ParseCSV.
const (
	colPitchType    = "pitch_type"
	colGameDate     = "game_date"
	colReleaseSpeed = "release_speed"
	colReleasePosX  = "release_pos_x"
	colReleasePosZ  = "release_pos_z"
	colSpinAxis     = "spin_axis"
)

var requiredColumns = []string{colPitchType, colGameDate, colReleaseSpeed, colReleasePosX, colReleasePosZ, colSpinAxis}

// ParseCSV decodes a Statcast search CSV into pitch events. An empty payload
// yields no events and no error. A payload with rows but without the release
// columns yields repository.ErrMissingColumns.
func ParseCSV(r io.Reader) ([]models.PitchEvent, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		idx[strings.TrimSpace(strings.Trim(h, `"`))] = i
	}
	missing := make([]string, 0)
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}

	var events []models.PitchEvent
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("columns %s: %w", strings.Join(missing, ", "), drepo.ErrMissingColumns)
		}

		cell := func(col string) string {
			i := idx[col]
			if i >= len(rec) {
				return ""
			}
			return rec[i]
		}

		events = append(events, models.PitchEvent{
			PitchType:    strings.TrimSpace(cell(colPitchType)),
			GameDate:     xutil.ParseDayDefault(cell(colGameDate), time.Time{}),
			ReleaseSpeed: xutil.ParseFloatNaN(cell(colReleaseSpeed)),
			ReleasePosX:  xutil.ParseFloatNaN(cell(colReleasePosX)),
			ReleasePosZ:  xutil.ParseFloatNaN(cell(colReleasePosZ)),
			SpinAxis:     xutil.ParseFloatNaN(cell(colSpinAxis)),
		})
	}
	return events, nil
}
