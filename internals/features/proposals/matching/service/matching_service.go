// file: internals/features/proposals/matching/service/matching_service.go
package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	callModel "hibahku_backend/internals/features/calls/calls/model"
	directory "hibahku_backend/internals/features/evaluators/directory/service"
)

// Severity konflik kepentingan
const (
	SeverityNone     = "none"
	SeverityAdvisory = "advisory"
	SeverityBlocking = "blocking"
)

// Skor keahlian minimum — tanpa overlap pun evaluator tidak di-nol-kan,
// supaya tidak ada eksklusi palsu dari matrix.
const ExpertiseBaseline = 15.0

// Penalti blend saat evaluator sedang penuh
const unavailablePenalty = 0.5

// Aturan policy COI yang dikenali (entri call_conflict_policies)
const (
	PolicyRuleSameDepartment = "same-department"
	PolicyRuleSameCampus     = "same-campus"
)

// ProposalInfo adalah potongan proposal yang relevan untuk matching.
type ProposalInfo struct {
	ID                   uuid.UUID
	Title                string
	ProjectType          string
	Keywords             []string
	Department           string
	Campus               string
	AuthorIDs            []string
	AssignmentsTouchedAt *time.Time
}

// MatchCell adalah satu sel matrix (proposal × evaluator).
// Ephemeral: dihitung ulang setiap read, tidak pernah dipersist.
type MatchCell struct {
	EvaluatorID      uuid.UUID `json:"evaluator_id"`
	EvaluatorName    string    `json:"evaluator_name"`
	MatchScore       float64   `json:"match_score"`
	ExpertiseScore   float64   `json:"expertise_score"`
	ConflictFlags    []string  `json:"conflict_flags"`
	ConflictSeverity string    `json:"conflict_severity"`
	Available        bool      `json:"available"`
	Assignable       bool      `json:"assignable"`
	Reasoning        string    `json:"reasoning"`
	Stale            bool      `json:"stale"`
}

func normTag(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func proposalTags(p ProposalInfo) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(p.Keywords)+1)
	if t := normTag(p.ProjectType); t != "" {
		seen[t] = struct{}{}
		out = append(out, t)
	}
	for _, k := range p.Keywords {
		t := normTag(k)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// ExpertiseScore: persentase tag proposal (project type + keywords) yang
// tercakup keahlian/departemen evaluator, dengan baseline non-nol.
func ExpertiseScore(p ProposalInfo, ev directory.EvaluatorView) (float64, int, int) {
	tags := proposalTags(p)
	if len(tags) == 0 {
		return ExpertiseBaseline, 0, 0
	}

	evTags := map[string]struct{}{}
	for _, e := range ev.Expertise {
		if t := normTag(e); t != "" {
			evTags[t] = struct{}{}
		}
	}
	if t := normTag(ev.Department); t != "" {
		evTags[t] = struct{}{}
	}

	matched := 0
	for _, t := range tags {
		if _, ok := evTags[t]; ok {
			matched++
		}
	}

	score := float64(matched) / float64(len(tags)) * 100
	if score < ExpertiseBaseline {
		score = ExpertiseBaseline
	}
	return score, matched, len(tags)
}

// DetectConflicts membandingkan authorship/departemen/kampus proposal dengan
// data evaluator + policy COI call. Declared-COI dan policy "hard:" = blocking.
func DetectConflicts(p ProposalInfo, ev directory.EvaluatorView, policies []string) ([]string, string) {
	flags := make([]string, 0, 2)
	severity := SeverityNone

	raise := func(flag string, blocking bool) {
		flags = append(flags, flag)
		if blocking {
			severity = SeverityBlocking
		} else if severity != SeverityBlocking {
			severity = SeverityAdvisory
		}
	}

	// COI yang dideklarasikan evaluator sendiri → selalu blocking
	for _, pid := range ev.DeclaredCOI {
		if strings.EqualFold(strings.TrimSpace(pid), p.ID.String()) {
			raise("evaluator mendeklarasikan konflik kepentingan pada proposal ini", true)
			break
		}
	}

	// Evaluator adalah pengusul proposal → blocking
	for _, aid := range p.AuthorIDs {
		if strings.EqualFold(strings.TrimSpace(aid), ev.UserID.String()) {
			raise("evaluator adalah pengusul proposal", true)
			break
		}
	}

	sameDept := p.Department != "" && strings.EqualFold(p.Department, ev.Department)
	sameCampus := p.Campus != "" && strings.EqualFold(p.Campus, ev.Campus)

	deptHandled, campusHandled := false, false
	for _, pol := range policies {
		hard := callModel.IsHardPolicy(pol)
		switch callModel.PolicyRule(pol) {
		case PolicyRuleSameDepartment:
			if sameDept {
				raise("satu departemen dengan pengusul (policy call)", hard)
				deptHandled = true
			}
		case PolicyRuleSameCampus:
			if sameCampus {
				raise("satu kampus dengan pengusul (policy call)", hard)
				campusHandled = true
			}
		}
	}

	// Overlap heuristik tanpa policy eksplisit → advisory saja
	if sameDept && !deptHandled {
		raise("satu departemen dengan pengusul", false)
	}
	if sameCampus && !campusHandled {
		raise("satu kampus dengan pengusul", false)
	}

	return flags, severity
}

// BuildCell menghitung satu sel matrix. Side-effect free.
func BuildCell(p ProposalInfo, ev directory.EvaluatorView, policies []string) MatchCell {
	expertise, matched, total := ExpertiseScore(p, ev)
	flags, severity := DetectConflicts(p, ev, policies)
	available := ev.Available()

	match := expertise
	if !available {
		match = match * unavailablePenalty
	}

	// Stale: snapshot direktori lebih tua dari mutasi assignment terakhir
	stale := p.AssignmentsTouchedAt != nil && p.AssignmentsTouchedAt.After(ev.SnapshotAt)

	parts := make([]string, 0, 4)
	parts = append(parts, fmt.Sprintf("keahlian cocok %d/%d tag (%.0f%%)", matched, total, expertise))
	parts = append(parts, fmt.Sprintf("beban %d/%d", ev.CurrentLoad, ev.MaxCapacity))
	if !available {
		parts = append(parts, "kapasitas penuh (skor dipenalti)")
	}
	if len(flags) > 0 {
		parts = append(parts, "konflik: "+strings.Join(flags, "; "))
	}

	return MatchCell{
		EvaluatorID:      ev.ID,
		EvaluatorName:    ev.Name,
		MatchScore:       match,
		ExpertiseScore:   expertise,
		ConflictFlags:    flags,
		ConflictSeverity: severity,
		Available:        available,
		Assignable:       severity != SeverityBlocking,
		Reasoning:        strings.Join(parts, "; "),
		Stale:            stale,
	}
}

// BuildMatrixRow menghitung sel untuk satu proposal dengan urutan evaluator
// dipertahankan apa adanya — dipakai matrix view supaya cells[i][j] selalu
// menunjuk evaluators[j].
func BuildMatrixRow(p ProposalInfo, evs []directory.EvaluatorView, policies []string) []MatchCell {
	cells := make([]MatchCell, 0, len(evs))
	for _, ev := range evs {
		cells = append(cells, BuildCell(p, ev, policies))
	}
	return cells
}

// BuildRow menghitung seluruh kandidat untuk satu proposal, urut skor desc.
func BuildRow(p ProposalInfo, evs []directory.EvaluatorView, policies []string, availableOnly bool) []MatchCell {
	cells := make([]MatchCell, 0, len(evs))
	for _, ev := range evs {
		cell := BuildCell(p, ev, policies)
		if availableOnly && !cell.Available {
			continue
		}
		cells = append(cells, cell)
	}
	sort.SliceStable(cells, func(i, j int) bool {
		return cells[i].MatchScore > cells[j].MatchScore
	})
	return cells
}
