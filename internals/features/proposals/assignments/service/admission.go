// file: internals/features/proposals/assignments/service/admission.go
package service

import (
	"github.com/google/uuid"

	model "hibahku_backend/internals/features/proposals/assignments/model"
	matching "hibahku_backend/internals/features/proposals/matching/service"
	apperr "hibahku_backend/internals/helpers/apperr"
)

// AdmissionInput adalah fakta yang dibaca ulang DI DALAM transaksi
// sebelum assignment dibuat (optimistic re-check, lihat CheckAdmission).
type AdmissionInput struct {
	ActiveExists     bool
	CurrentLoad      int
	MaxCapacity      int
	ConflictSeverity string
}

// CheckAdmission memutuskan boleh-tidaknya quickAssign.
// Urutan cek: duplikat aktif → kapasitas → blocking COI.
func CheckAdmission(in AdmissionInput) error {
	if in.ActiveExists {
		return apperr.Conflict("evaluator sudah punya assignment aktif pada proposal ini")
	}
	if in.CurrentLoad >= in.MaxCapacity {
		return apperr.Conflict("evaluator sudah mencapai kapasitas (%d/%d)", in.CurrentLoad, in.MaxCapacity)
	}
	if in.ConflictSeverity == matching.SeverityBlocking {
		return apperr.Conflict("konflik kepentingan blocking: evaluator tidak boleh ditugaskan ke proposal ini")
	}
	return nil
}

// ResolveResponse memutuskan transisi respon evaluator: hanya pending yang
// boleh direspon. Hasil declined keluar dari ActiveStatuses — bebannya lepas
// dan pasangan proposal-evaluator boleh ditugaskan ulang.
func ResolveResponse(current string, accept bool) (string, error) {
	if current != model.StatusPending {
		return "", apperr.Conflict("assignment sudah direspon (status: %s)", current)
	}
	if accept {
		return model.StatusAccepted, nil
	}
	return model.StatusDeclined, nil
}

// DiffEvaluators membandingkan set evaluator aktif saat ini dengan set yang
// diminta reconcile: kembalikan yang harus dibuat dan yang harus dilepas.
// Evaluator yang sudah ada di kedua set dibiarkan apa adanya.
func DiffEvaluators(current, requested []uuid.UUID) (toAdd, toRemove []uuid.UUID) {
	curSet := make(map[uuid.UUID]struct{}, len(current))
	for _, id := range current {
		curSet[id] = struct{}{}
	}
	reqSet := make(map[uuid.UUID]struct{}, len(requested))
	for _, id := range requested {
		reqSet[id] = struct{}{}
	}

	for _, id := range requested {
		if _, ok := curSet[id]; !ok {
			toAdd = append(toAdd, id)
		}
	}
	for _, id := range current {
		if _, ok := reqSet[id]; !ok {
			toRemove = append(toRemove, id)
		}
	}
	return toAdd, toRemove
}
