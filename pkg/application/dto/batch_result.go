package dto

import (
	"time"

	"github.com/Marawan-Y/logistics-cost-estimation/pkg/application/costing"
	"github.com/Marawan-Y/logistics-cost-estimation/pkg/domain/entities"
)

// BatchResult contains the complete output of a calculation run: one result
// per calculation-ready pair plus the diagnostics accumulated along the way.
type BatchResult struct {
	RunID       string                       `json:"run_id"`
	ComputedAt  time.Time                    `json:"computed_at"`
	Results     []entities.CalculationResult `json:"results"`
	Diagnostics []costing.Diagnostic         `json:"diagnostics,omitempty"`
}

// DiagnosticStrings renders the diagnostics for callers that consume plain
// strings.
func (r *BatchResult) DiagnosticStrings() []string {
	if len(r.Diagnostics) == 0 {
		return nil
	}
	out := make([]string, len(r.Diagnostics))
	for i, d := range r.Diagnostics {
		out[i] = d.String()
	}
	return out
}
