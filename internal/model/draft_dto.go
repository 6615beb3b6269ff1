package model

// DraftDTO is the transient form state of a report being authored or edited.
// It lives in Redis under a TTL and is never shared with the report store
// except at submit time.
type DraftDTO struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Address     string  `json:"address"`
	PhotoURL    *string `json:"photoUrl,omitempty"`

	// Nil in create mode. In edit mode it pins the target report and the
	// creation timestamp captured when editing started.
	EditingTarget *EditingTargetDTO `json:"editingTarget,omitempty"`
}

type EditingTargetDTO struct {
	ReportID  string `json:"reportId"`
	Timestamp string `json:"timestamp"`
}

type StartDraftRequest struct {
	// When set, the draft starts in edit mode pre-populated from this report.
	ReportID *string `json:"reportId"`
}

// UpdateDraftFieldsRequest replaces only the fields it names; absent fields
// are left untouched. Changing one field never affects another.
type UpdateDraftFieldsRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category" validate:"omitempty,report_category"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Address     *string  `json:"address"`
}

type AttachPhotoRequest struct {
	// A self-contained data URI, e.g. "data:image/jpeg;base64,...".
	Photo string `json:"photo" validate:"required"`
}

type AttachLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
