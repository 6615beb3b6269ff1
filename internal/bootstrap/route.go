package bootstrap

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ricotama/LAPORin/internal/config"
	"github.com/ricotama/LAPORin/internal/controller"
	"github.com/ricotama/LAPORin/internal/middleware"
)

type Route struct {
	cfg                 *config.AppConfig
	chi                 *chi.Mux
	rateLimit           *middleware.RateLimitMiddleware
	reportController    *controller.ReportController
	draftController     *controller.DraftController
	websocketController *controller.WebSocketController
}

func NewRoute(cfg *config.AppConfig, chi *chi.Mux, rateLimit *middleware.RateLimitMiddleware, reportController *controller.ReportController, draftController *controller.DraftController, websocketController *controller.WebSocketController) *Route {
	return &Route{
		cfg:                 cfg,
		chi:                 chi,
		rateLimit:           rateLimit,
		reportController:    reportController,
		draftController:     draftController,
		websocketController: websocketController,
	}
}

func (route *Route) Register() {
	route.chi.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Welcome to LAPORin API"))
	})

	writeWindow := time.Duration(route.cfg.ReportWriteWindowSeconds) * time.Second
	writeLimit := route.rateLimit.Limit("report_write", route.cfg.ReportWriteLimit, writeWindow)

	route.chi.Route("/api", func(r chi.Router) {
		r.Get("/reports", route.reportController.ListReports)
		r.Get("/reports/stats", route.reportController.GetStats)
		r.Get("/reports/{reportId}", route.reportController.GetReport)

		r.With(writeLimit).Post("/reports", route.reportController.CreateReport)
		r.With(writeLimit).Put("/reports/{reportId}", route.reportController.UpdateReport)
		r.With(writeLimit).Delete("/reports/{reportId}", route.reportController.DeleteReport)

		r.Post("/drafts", route.draftController.StartDraft)
		r.Get("/drafts/{draftId}", route.draftController.GetDraft)
		r.Patch("/drafts/{draftId}", route.draftController.UpdateDraftFields)
		r.Put("/drafts/{draftId}/photo", route.draftController.AttachPhoto)
		r.Put("/drafts/{draftId}/location", route.draftController.AttachLocation)
		r.With(writeLimit).Post("/drafts/{draftId}/submit", route.draftController.SubmitDraft)
		r.Post("/drafts/{draftId}/cancel", route.draftController.CancelDraft)
	})

	route.chi.Get("/ws", route.websocketController.ServeWS)
}
