// file: internals/seeds/evaluators/seed_evaluators.go
package evaluators

import (
	"encoding/json"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	model "hibahku_backend/internals/features/evaluators/directory/model"
)

type EvaluatorSeed struct {
	EvaluatorUserID      string   `json:"evaluator_user_id"`
	EvaluatorName        string   `json:"evaluator_name"`
	EvaluatorRole        string   `json:"evaluator_role"`
	EvaluatorDepartment  *string  `json:"evaluator_department"`
	EvaluatorCampus      *string  `json:"evaluator_campus"`
	EvaluatorExpertise   []string `json:"evaluator_expertise"`
	EvaluatorMaxCapacity *int     `json:"evaluator_max_capacity"`
}

func SeedEvaluatorsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var seeds []EvaluatorSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, s := range seeds {
		userID, err := uuid.Parse(s.EvaluatorUserID)
		if err != nil {
			log.Printf("❌ evaluator_user_id %q tidak valid, lewati...", s.EvaluatorUserID)
			continue
		}

		var existing model.EvaluatorModel
		if err := db.Where("evaluator_user_id = ?", userID).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Evaluator %s sudah ada, lewati...", s.EvaluatorName)
			continue
		}

		newEvaluator := model.EvaluatorModel{
			EvaluatorUserID:      userID,
			EvaluatorName:        s.EvaluatorName,
			EvaluatorRole:        s.EvaluatorRole,
			EvaluatorDepartment:  s.EvaluatorDepartment,
			EvaluatorCampus:      s.EvaluatorCampus,
			EvaluatorExpertise:   pq.StringArray(s.EvaluatorExpertise),
			EvaluatorMaxCapacity: s.EvaluatorMaxCapacity,
		}

		if err := db.Create(&newEvaluator).Error; err != nil {
			log.Printf("❌ Gagal insert evaluator %s: %v", s.EvaluatorName, err)
		} else {
			log.Printf("✅ Berhasil insert evaluator %s", newEvaluator.EvaluatorName)
		}
	}
}
