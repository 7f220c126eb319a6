// file: internals/seeds/calls/seed_calls.go
package calls

import (
	"encoding/json"
	"log"
	"os"

	"github.com/lib/pq"
	"gorm.io/gorm"

	callModel "hibahku_backend/internals/features/calls/calls/model"
	criterionModel "hibahku_backend/internals/features/calls/criteria/model"
)

type CriterionSeed struct {
	CriterionName     string  `json:"criterion_name"`
	CriterionWeight   float64 `json:"criterion_weight"`
	CriterionMaxScore float64 `json:"criterion_max_score"`
	CriterionCategory *string `json:"criterion_category"`
}

type CallSeed struct {
	CallTitle              string          `json:"call_title"`
	CallDescription        *string         `json:"call_description"`
	CallStatus             string          `json:"call_status"`
	CallRequiredEvaluators int             `json:"call_required_evaluators"`
	CallAssignmentMethod   string          `json:"call_assignment_method"`
	CallConflictPolicies   []string        `json:"call_conflict_policies"`
	Criteria               []CriterionSeed `json:"criteria"`
}

func SeedCallsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var seeds []CallSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, s := range seeds {
		var existing callModel.CallModel
		if err := db.Where("call_title = ?", s.CallTitle).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Call %q sudah ada, lewati...", s.CallTitle)
			continue
		}

		newCall := callModel.CallModel{
			CallTitle:              s.CallTitle,
			CallDescription:        s.CallDescription,
			CallStatus:             s.CallStatus,
			CallRequiredEvaluators: s.CallRequiredEvaluators,
			CallAssignmentMethod:   s.CallAssignmentMethod,
			CallConflictPolicies:   pq.StringArray(s.CallConflictPolicies),
		}

		if err := db.Create(&newCall).Error; err != nil {
			log.Printf("❌ Gagal insert call %q: %v", s.CallTitle, err)
			continue
		}

		for _, c := range s.Criteria {
			crit := criterionModel.CriterionModel{
				CriterionCallID:   newCall.CallID,
				CriterionName:     c.CriterionName,
				CriterionWeight:   c.CriterionWeight,
				CriterionMaxScore: c.CriterionMaxScore,
				CriterionCategory: c.CriterionCategory,
			}
			if err := db.Create(&crit).Error; err != nil {
				log.Printf("❌ Gagal insert criterion %q: %v", c.CriterionName, err)
			}
		}

		log.Printf("✅ Berhasil insert call %q (%d criteria)", newCall.CallTitle, len(s.Criteria))
	}
}
