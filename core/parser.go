package core

import (
	"encoding/json"
	"errors"

	"github.com/kanade13/deltaforce/schema"
	"github.com/shopspring/decimal"
)

// priceRecord mirrors one entry of the dataset's JSON array. Price is a
// pointer so an absent price can be told apart from a zero price.
type priceRecord struct {
	Name  string           `json:"name"`
	Price *decimal.Decimal `json:"price"`
	Num   int              `json:"num"` // rounds per unit, when the dataset encodes it
}

// ParseSnapshot parses one snapshot's raw content into a mapping from item
// name to PriceObservation. Malformed entries are skipped individually and
// counted as warnings; the returned error is non-nil only when the content as
// a whole is unparseable, in which case it is a *SnapshotParseError and the
// caller must drop the snapshot from the walk.
func ParseSnapshot(hash string, content []byte) (map[string]schema.PriceObservation, int, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(content, &entries); err != nil {
		return nil, 0, &SnapshotParseError{Hash: hash, Err: err}
	}
	if entries == nil {
		return nil, 0, &SnapshotParseError{Hash: hash, Err: errors.New("dataset is not a JSON array")}
	}

	observations := make(map[string]schema.PriceObservation, len(entries))
	warnings := 0
	for _, raw := range entries {
		var rec priceRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			warnings++
			continue
		}
		if rec.Name == "" || rec.Price == nil || rec.Price.IsNegative() || rec.Num < 0 {
			warnings++
			continue
		}
		// Duplicate names within one snapshot: last entry wins.
		observations[rec.Name] = schema.PriceObservation{
			Name:          rec.Name,
			Price:         *rec.Price,
			RoundsPerUnit: rec.Num,
		}
	}
	return observations, warnings, nil
}
