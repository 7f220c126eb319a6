// file: internals/features/proposals/matching/service/matching_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	directory "hibahku_backend/internals/features/evaluators/directory/service"
)

func newProposal() ProposalInfo {
	return ProposalInfo{
		ID:          uuid.New(),
		Title:       "Sistem Irigasi Cerdas",
		ProjectType: "research",
		Keywords:    []string{"machine-learning", "agriculture", "iot"},
		Department:  "Informatika",
		Campus:      "Kampus A",
	}
}

func newEvaluator() directory.EvaluatorView {
	return directory.EvaluatorView{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Name:        "Dr. Evaluator",
		Department:  "Teknik Elektro",
		Campus:      "Kampus B",
		Expertise:   []string{"Machine-Learning", "IoT"},
		MaxCapacity: 4,
		CurrentLoad: 1,
		SnapshotAt:  time.Now(),
	}
}

func TestExpertiseScore(t *testing.T) {
	p := newProposal()
	ev := newEvaluator()

	// 2 dari 4 tag (research, machine-learning, agriculture, iot) cocok,
	// case-insensitive
	score, matched, total := ExpertiseScore(p, ev)
	assert.Equal(t, 2, matched)
	assert.Equal(t, 4, total)
	assert.InDelta(t, 50.0, score, 0.001)
}

func TestExpertiseScoreBaseline(t *testing.T) {
	p := newProposal()
	ev := newEvaluator()
	ev.Expertise = []string{"quantum-computing"}
	ev.Department = "Fisika"

	score, matched, _ := ExpertiseScore(p, ev)
	assert.Equal(t, 0, matched)
	assert.Equal(t, ExpertiseBaseline, score, "tanpa overlap tetap dapat baseline")
}

func TestExpertiseScoreNoTags(t *testing.T) {
	p := newProposal()
	p.ProjectType = ""
	p.Keywords = nil

	score, matched, total := ExpertiseScore(p, newEvaluator())
	assert.Equal(t, 0, matched)
	assert.Equal(t, 0, total)
	assert.Equal(t, ExpertiseBaseline, score)
}

func TestExpertiseScoreDepartmentCountsAsTag(t *testing.T) {
	p := newProposal()
	p.Keywords = []string{"informatika"}
	p.ProjectType = ""
	ev := newEvaluator()
	ev.Expertise = nil
	ev.Department = "Informatika"

	score, matched, total := ExpertiseScore(p, ev)
	assert.Equal(t, 1, matched)
	assert.Equal(t, 1, total)
	assert.InDelta(t, 100.0, score, 0.001)
}

func TestDetectConflictsDeclaredCOIBlocking(t *testing.T) {
	p := newProposal()
	ev := newEvaluator()
	ev.DeclaredCOI = []string{p.ID.String()}

	flags, severity := DetectConflicts(p, ev, nil)
	require.Len(t, flags, 1)
	assert.Equal(t, SeverityBlocking, severity)
}

func TestDetectConflictsAuthorBlocking(t *testing.T) {
	p := newProposal()
	ev := newEvaluator()
	p.AuthorIDs = []string{ev.UserID.String()}

	_, severity := DetectConflicts(p, ev, nil)
	assert.Equal(t, SeverityBlocking, severity)
}

func TestDetectConflictsSameDepartmentAdvisoryByDefault(t *testing.T) {
	p := newProposal()
	ev := newEvaluator()
	ev.Department = p.Department

	flags, severity := DetectConflicts(p, ev, nil)
	require.Len(t, flags, 1)
	assert.Equal(t, SeverityAdvisory, severity)
}

func TestDetectConflictsHardPolicyBlocking(t *testing.T) {
	p := newProposal()
	ev := newEvaluator()
	ev.Department = p.Department

	_, severity := DetectConflicts(p, ev, []string{"hard:same-department"})
	assert.Equal(t, SeverityBlocking, severity)

	// policy lunak → tetap advisory
	_, severity = DetectConflicts(p, ev, []string{"same-department"})
	assert.Equal(t, SeverityAdvisory, severity)
}

func TestDetectConflictsClean(t *testing.T) {
	flags, severity := DetectConflicts(newProposal(), newEvaluator(), []string{"hard:same-department"})
	assert.Empty(t, flags)
	assert.Equal(t, SeverityNone, severity)
}

func TestBuildCellUnavailablePenalty(t *testing.T) {
	p := newProposal()
	ev := newEvaluator()

	base := BuildCell(p, ev, nil)
	assert.True(t, base.Available)
	assert.Equal(t, base.ExpertiseScore, base.MatchScore)

	ev.CurrentLoad = ev.MaxCapacity
	full := BuildCell(p, ev, nil)
	assert.False(t, full.Available)
	assert.InDelta(t, base.MatchScore*0.5, full.MatchScore, 0.001)
	assert.True(t, full.Assignable, "penuh bukan berarti blocked")
}

func TestBuildCellBlockingNotAssignable(t *testing.T) {
	p := newProposal()
	ev := newEvaluator()
	ev.DeclaredCOI = []string{p.ID.String()}

	cell := BuildCell(p, ev, nil)
	assert.Equal(t, SeverityBlocking, cell.ConflictSeverity)
	assert.False(t, cell.Assignable)
	assert.Greater(t, cell.MatchScore, 0.0, "skor tetap dihitung untuk transparansi")
}

func TestBuildCellStaleFlag(t *testing.T) {
	p := newProposal()
	ev := newEvaluator()

	touched := ev.SnapshotAt.Add(2 * time.Second)
	p.AssignmentsTouchedAt = &touched
	assert.True(t, BuildCell(p, ev, nil).Stale)

	touched = ev.SnapshotAt.Add(-2 * time.Second)
	p.AssignmentsTouchedAt = &touched
	assert.False(t, BuildCell(p, ev, nil).Stale)

	p.AssignmentsTouchedAt = nil
	assert.False(t, BuildCell(p, ev, nil).Stale)
}

func TestBuildRowSortedAndFiltered(t *testing.T) {
	p := newProposal()

	strong := newEvaluator() // 2/4 tag
	weak := newEvaluator()
	weak.Name = "Weak"
	weak.Expertise = nil
	weak.Department = "Kimia"

	full := newEvaluator()
	full.Name = "Full"
	full.CurrentLoad = full.MaxCapacity

	row := BuildRow(p, []directory.EvaluatorView{weak, full, strong}, nil, false)
	require.Len(t, row, 3)
	assert.Equal(t, strong.ID, row[0].EvaluatorID, "skor tertinggi dulu")

	onlyAvailable := BuildRow(p, []directory.EvaluatorView{weak, full, strong}, nil, true)
	require.Len(t, onlyAvailable, 2)
	for _, cell := range onlyAvailable {
		assert.True(t, cell.Available)
	}
}

func TestBuildMatrixRowKeepsEvaluatorOrder(t *testing.T) {
	p := newProposal()

	strong := newEvaluator()
	weak := newEvaluator()
	weak.Name = "Weak"
	weak.Expertise = nil
	weak.Department = "Kimia"

	full := newEvaluator()
	full.Name = "Full"
	full.CurrentLoad = full.MaxCapacity

	// baris matrix tidak diurutkan dan tidak difilter: kolom ke-j harus
	// tetap evaluator ke-j
	evs := []directory.EvaluatorView{weak, full, strong}
	row := BuildMatrixRow(p, evs, nil)
	require.Len(t, row, len(evs))
	for j, ev := range evs {
		assert.Equal(t, ev.ID, row[j].EvaluatorID)
	}
	assert.False(t, row[1].Available, "evaluator penuh tetap punya sel")
}
