package billing

import (
	"strings"

	"github.com/idilsaglam/partbill/internal/model"
)

// MaxSuggestions caps how many catalog matches are offered for one query.
const MaxSuggestions = 5

// Suggest returns the first MaxSuggestions parts, in catalog order, whose name
// contains query ignoring case. A blank query matches nothing.
func Suggest(catalog []model.Part, query string) []model.Part {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	needle := strings.ToLower(query)
	var out []model.Part
	for _, p := range catalog {
		if !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		out = append(out, p)
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out
}
