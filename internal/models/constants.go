package models

// ============================================================================
// PROJECT STATUS CONSTANTS
// ============================================================================

// Project status values reported by the backend. The set is open: any other
// value is rendered with the default treatment.
const (
	StatusAnalysisPending = "analysis_pending"
	StatusAnalysisFailed  = "analysis_failed"
	StatusReadyToDeploy   = "ready_to_deploy"
)

// StatusCategory is the visual category a project status maps to
type StatusCategory int

const (
	// CategoryDefault is used for any status the client does not recognize
	CategoryDefault StatusCategory = iota
	CategorySuccess
	CategoryPending
	CategoryFailure
)

// String returns the category name
func (c StatusCategory) String() string {
	switch c {
	case CategorySuccess:
		return "success"
	case CategoryPending:
		return "pending"
	case CategoryFailure:
		return "failure"
	default:
		return "default"
	}
}

// statusCategories is the fixed status lookup table
var statusCategories = map[string]StatusCategory{
	StatusReadyToDeploy:   CategorySuccess,
	StatusAnalysisPending: CategoryPending,
	StatusAnalysisFailed:  CategoryFailure,
}

// CategoryForStatus maps a backend status string to its visual category
func CategoryForStatus(status string) StatusCategory {
	if category, ok := statusCategories[status]; ok {
		return category
	}
	return CategoryDefault
}

// ============================================================================
// LOCAL STORAGE KEYS
// ============================================================================

// SessionStorageKey is the fixed local storage key the session is persisted under
const SessionStorageKey = "session"
