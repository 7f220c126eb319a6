// file: internals/seeds/runner.go
package seeds

import (
	calls "hibahku_backend/internals/seeds/calls"
	evaluators "hibahku_backend/internals/seeds/evaluators"

	"gorm.io/gorm"
)

// RunAllSeeds mengisi data awal lingkungan dev/staging.
// Semua seed idempotent: record yang sudah ada dilewati.
func RunAllSeeds(db *gorm.DB) {
	calls.SeedCallsFromJSON(db, "internals/seeds/calls/data_calls.json")
	evaluators.SeedEvaluatorsFromJSON(db, "internals/seeds/evaluators/data_evaluators.json")
}
