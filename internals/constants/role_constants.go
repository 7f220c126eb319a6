package constants

import "fmt"

const (
	RoleOwner     = "owner"
	RoleAdmin     = "admin"
	RoleEvaluator = "evaluator"
	RoleUser      = "user"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess     = "❌ Hanya admin atau owner yang boleh mengakses fitur %s."
	ErrOnlyEvaluatorsCanAccess = "❌ Hanya evaluator yang boleh mengakses fitur %s."
	ErrOnlyOwnersCanAccess     = "❌ Hanya owner yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorEvaluator(feature string) string {
	return fmt.Sprintf(ErrOnlyEvaluatorsCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleEvaluator,
		RoleAdmin,
		RoleOwner,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}

	EvaluatorAndAbove = []string{
		RoleEvaluator,
		RoleAdmin,
		RoleOwner,
	}
)
