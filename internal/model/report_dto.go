package model

type ReportDTO struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Address     string  `json:"address"`
	PhotoURL    *string `json:"photoUrl,omitempty"`
	Timestamp   string  `json:"timestamp"`
}

type CreateReportRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"omitempty,report_category"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Address     string  `json:"address"`
	PhotoURL    *string `json:"photoUrl"`
}

type UpdateReportRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"omitempty,report_category"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Address     string  `json:"address"`
	PhotoURL    *string `json:"photoUrl"`
}

// ReportFields is the full field set written to the store on create and
// update. The repository overwrites every field it names; the creation
// timestamp is managed separately and never appears here.
type ReportFields struct {
	Title       string
	Description string
	Category    string
	Latitude    float64
	Longitude   float64
	Address     string
	PhotoURL    *string
}

type ReportStatsDTO struct {
	Total      int            `json:"total"`
	Categories map[string]int `json:"categories"`
}
