package catalogstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/idilsaglam/partbill/internal/model"
)

// JSON-backed parts catalog. A single read-only file holding an array of
// {"id", "name", "price"} records, loaded once at startup.

// ErrMalformed is returned when the catalog file is not a JSON array of records.
var ErrMalformed = errors.New("malformed catalog")

// record mirrors one catalog entry with pointers so that missing fields can be
// told apart from zero values.
type record struct {
	ID    *int64   `json:"id" validate:"required,gt=0"`
	Name  string   `json:"name" validate:"required"`
	Price *float64 `json:"price" validate:"required,gte=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Skipped describes a catalog entry that was dropped during Load.
type Skipped struct {
	Index  int
	Reason string
}

// Load reads the catalog at path. Entries failing validation, and entries
// repeating an earlier id, are left out and reported in skipped. Valid parts
// keep their file order.
func Load(path string) (parts []model.Part, skipped []Skipped, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	parts = make([]model.Part, 0, len(raw))
	seen := make(map[int64]bool, len(raw))
	for i, msg := range raw {
		var r record
		if err := json.Unmarshal(msg, &r); err != nil {
			skipped = append(skipped, Skipped{Index: i, Reason: err.Error()})
			continue
		}
		if err := validate.Struct(r); err != nil {
			skipped = append(skipped, Skipped{Index: i, Reason: err.Error()})
			continue
		}
		if seen[*r.ID] {
			skipped = append(skipped, Skipped{Index: i, Reason: fmt.Sprintf("duplicate id %d", *r.ID)})
			continue
		}
		seen[*r.ID] = true
		parts = append(parts, model.Part{ID: *r.ID, Name: r.Name, Price: *r.Price})
	}
	return parts, skipped, nil
}

// LoadOrEmpty is Load for callers that must keep running without a catalog:
// failures are logged and yield an empty catalog.
func LoadOrEmpty(path string, log zerolog.Logger) []model.Part {
	parts, skipped, err := Load(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("catalog_unavailable")
		return []model.Part{}
	}
	for _, s := range skipped {
		log.Warn().Str("path", path).Int("index", s.Index).Str("reason", s.Reason).Msg("catalog_entry_skipped")
	}
	log.Debug().Str("path", path).Int("parts", len(parts)).Msg("catalog_loaded")
	return parts
}
