package output

import (
	"encoding/json"

	"github.com/nestegg/balance-projector/internal/domain"
)

// JSONFormatter serializes the projection result (parameter echo plus
// records) as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
