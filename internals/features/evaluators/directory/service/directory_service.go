// file: internals/features/evaluators/directory/service/directory_service.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "hibahku_backend/internals/features/evaluators/directory/model"
	apperr "hibahku_backend/internals/helpers/apperr"
)

// EvaluatorView adalah potret read-only direktori evaluator + beban aktifnya.
// Dipakai matching engine dan tampilan workload.
type EvaluatorView struct {
	ID          uuid.UUID `json:"evaluator_id"`
	UserID      uuid.UUID `json:"evaluator_user_id"`
	Name        string    `json:"evaluator_name"`
	Role        string    `json:"evaluator_role"`
	Department  string    `json:"evaluator_department"`
	Campus      string    `json:"evaluator_campus"`
	Expertise   []string  `json:"evaluator_expertise"`
	MaxCapacity int       `json:"evaluator_max_capacity"`
	DeclaredCOI []string  `json:"evaluator_declared_coi"`
	CurrentLoad int       `json:"evaluator_current_load"`
	SnapshotAt  time.Time `json:"snapshot_at"`
}

func (v EvaluatorView) Available() bool {
	return v.CurrentLoad < v.MaxCapacity
}

// Utilization = beban aktif relatif terhadap kapasitas (0..1+).
func (v EvaluatorView) Utilization() float64 {
	if v.MaxCapacity <= 0 {
		return 0
	}
	return float64(v.CurrentLoad) / float64(v.MaxCapacity)
}

func toView(m *model.EvaluatorModel, load int, at time.Time) EvaluatorView {
	dept, campus := "", ""
	if m.EvaluatorDepartment != nil {
		dept = *m.EvaluatorDepartment
	}
	if m.EvaluatorCampus != nil {
		campus = *m.EvaluatorCampus
	}
	return EvaluatorView{
		ID:          m.EvaluatorID,
		UserID:      m.EvaluatorUserID,
		Name:        m.EvaluatorName,
		Role:        m.EvaluatorRole,
		Department:  dept,
		Campus:      campus,
		Expertise:   []string(m.EvaluatorExpertise),
		MaxCapacity: m.MaxCapacityOrDefault(),
		DeclaredCOI: []string(m.EvaluatorDeclaredCOI),
		CurrentLoad: load,
		SnapshotAt:  at,
	}
}

type loadRow struct {
	EvaluatorID uuid.UUID
	N           int
}

// activeLoads menghitung beban aktif (pending+accepted) per evaluator sekali jalan.
func activeLoads(db *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]int, error) {
	out := make(map[uuid.UUID]int, len(ids))
	q := db.Table("assignments").
		Select("assignment_evaluator_id AS evaluator_id, COUNT(*) AS n").
		Where("assignment_status IN ('pending','accepted') AND assignment_deleted_at IS NULL").
		Group("assignment_evaluator_id")
	if len(ids) > 0 {
		q = q.Where("assignment_evaluator_id IN ?", ids)
	}
	var rows []loadRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.EvaluatorID] = r.N
	}
	return out, nil
}

// Snapshot mengambil seluruh direktori evaluator berikut beban aktifnya.
func Snapshot(db *gorm.DB) ([]EvaluatorView, error) {
	var rows []model.EvaluatorModel
	if err := db.Order("evaluator_name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	loads, err := activeLoads(db, nil)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	out := make([]EvaluatorView, 0, len(rows))
	for i := range rows {
		out = append(out, toView(&rows[i], loads[rows[i].EvaluatorID], now))
	}
	return out, nil
}

// GetView mengambil satu evaluator + beban aktifnya.
func GetView(db *gorm.DB, id uuid.UUID) (EvaluatorView, error) {
	var row model.EvaluatorModel
	if err := db.Where("evaluator_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EvaluatorView{}, apperr.NotFound("evaluator tidak ditemukan")
		}
		return EvaluatorView{}, err
	}

	loads, err := activeLoads(db, []uuid.UUID{id})
	if err != nil {
		return EvaluatorView{}, err
	}
	return toView(&row, loads[id], time.Now()), nil
}

// GetViewByUserID resolve evaluator dari user_id token (untuk endpoint self-service).
func GetViewByUserID(db *gorm.DB, userID uuid.UUID) (EvaluatorView, error) {
	var row model.EvaluatorModel
	if err := db.Where("evaluator_user_id = ?", userID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EvaluatorView{}, apperr.NotFound("evaluator tidak terdaftar untuk user ini")
		}
		return EvaluatorView{}, err
	}

	loads, err := activeLoads(db, []uuid.UUID{row.EvaluatorID})
	if err != nil {
		return EvaluatorView{}, err
	}
	return toView(&row, loads[row.EvaluatorID], time.Now()), nil
}
