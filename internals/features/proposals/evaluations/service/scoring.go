// file: internals/features/proposals/evaluations/service/scoring.go
package service

import (
	"strings"

	"github.com/google/uuid"

	model "hibahku_backend/internals/features/proposals/evaluations/model"
	apperr "hibahku_backend/internals/helpers/apperr"
)

// CriterionSpec: potongan rubrik yang dibutuhkan mesin skor.
type CriterionSpec struct {
	ID       uuid.UUID
	Name     string
	Weight   float64
	MaxScore float64
}

// EnsureDraftWritable: evaluasi beku begitu tersubmit — submit selalu menang
// atas flush autosave yang datang terlambat.
func EnsureDraftWritable(existing *model.EvaluationModel) error {
	if existing != nil && existing.IsSubmitted() {
		return apperr.Conflict("evaluasi sudah tersubmit dan tidak bisa diubah")
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ComputeWeightedScore menghitung skor agregat 0–100.
//
// Jalur utama: tiap entri dinormalkan score/maxScore (setelah clamp ke
// [0, maxScore]) dikali bobot criterion; jumlah kontribusi dibagi jumlah
// bobot yang benar-benar hadir, lalu diskala ke 0–100.
// Jalur fallback (total bobot 0, mis. rubrik belum dikonfigurasi):
// sum(score)/sum(maxScore)*100 — supaya tidak ada pembagian nol dan skor
// tetap bermakna.
func ComputeWeightedScore(entries []model.RubricEntry, criteria []CriterionSpec) float64 {
	byID := make(map[uuid.UUID]CriterionSpec, len(criteria))
	for _, c := range criteria {
		byID[c.ID] = c
	}

	var (
		weighted    float64
		weightTotal float64
		rawScore    float64
		rawMax      float64
	)

	for _, e := range entries {
		spec, ok := byID[e.CriterionID]
		if !ok || e.Score == nil || spec.MaxScore <= 0 {
			continue
		}
		score := clamp(*e.Score, 0, spec.MaxScore)

		weighted += (score / spec.MaxScore) * spec.Weight
		weightTotal += spec.Weight

		rawScore += score
		rawMax += spec.MaxScore
	}

	if weightTotal > 0 {
		return clamp(weighted/weightTotal*100, 0, 100)
	}
	if rawMax > 0 {
		return clamp(rawScore/rawMax*100, 0, 100)
	}
	return 0
}

// ValidateForSubmit memastikan evaluasi lengkap sebelum dibekukan:
// setiap criterion call punya skor in-range dan rekomendasi terisi.
func ValidateForSubmit(entries []model.RubricEntry, criteria []CriterionSpec, recommendation string) error {
	rec := strings.TrimSpace(recommendation)
	if rec == "" {
		return apperr.Validation("rekomendasi wajib dipilih sebelum submit")
	}
	if !model.IsRecommendation(rec) {
		return apperr.Validation("rekomendasi %q tidak dikenal", rec)
	}

	byID := make(map[uuid.UUID]*model.RubricEntry, len(entries))
	for i := range entries {
		byID[entries[i].CriterionID] = &entries[i]
	}

	for _, c := range criteria {
		e, ok := byID[c.ID]
		if !ok || e.Score == nil {
			return apperr.Validation("criterion %q belum diberi skor", c.Name)
		}
		if *e.Score < 0 || *e.Score > c.MaxScore {
			return apperr.Validation("skor criterion %q di luar rentang 0–%.0f", c.Name, c.MaxScore)
		}
	}

	return nil
}
