package controller

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ricotama/LAPORin/internal/helper"
	"github.com/ricotama/LAPORin/internal/model"
	"github.com/ricotama/LAPORin/internal/service"
)

type ReportController struct {
	reportService     *service.ReportService
	collectionService *service.CollectionService
}

func NewReportController(reportService *service.ReportService, collectionService *service.CollectionService) *ReportController {
	return &ReportController{
		reportService:     reportService,
		collectionService: collectionService,
	}
}

// ListReports godoc
// @Summary      List Reports
// @Description  Returns every report, newest first. Served from the in-memory collection.
// @Tags         report
// @Produce      json
// @Success      200  {object}  helper.ResponseSuccess{data=[]model.ReportDTO}
// @Router       /api/reports [get]
func (c *ReportController) ListReports(w http.ResponseWriter, r *http.Request) {
	helper.WriteSuccess(w, c.collectionService.Snapshot())
}

// GetStats godoc
// @Summary      Report Statistics
// @Description  Returns the total report count and a count per category.
// @Tags         report
// @Produce      json
// @Success      200  {object}  helper.ResponseSuccess{data=model.ReportStatsDTO}
// @Router       /api/reports/stats [get]
func (c *ReportController) GetStats(w http.ResponseWriter, r *http.Request) {
	helper.WriteSuccess(w, c.collectionService.Stats())
}

// GetReport godoc
// @Summary      Get Report
// @Description  Returns a single report by id.
// @Tags         report
// @Produce      json
// @Param        reportId path string true "Report ID"
// @Success      200  {object}  helper.ResponseSuccess{data=model.ReportDTO}
// @Failure      400  {object}  helper.ResponseError
// @Failure      404  {object}  helper.ResponseError
// @Router       /api/reports/{reportId} [get]
func (c *ReportController) GetReport(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "reportId"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid report id"))
		return
	}

	resp, err := c.reportService.Get(r.Context(), id)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

// CreateReport godoc
// @Summary      Create Report
// @Description  Stores a new damage report and stamps its creation time.
// @Tags         report
// @Accept       json
// @Produce      json
// @Param        request body model.CreateReportRequest true "Create Report Request"
// @Success      200  {object}  helper.ResponseSuccess{data=model.ReportDTO}
// @Failure      400  {object}  helper.ResponseError
// @Failure      429  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Router       /api/reports [post]
func (c *ReportController) CreateReport(w http.ResponseWriter, r *http.Request) {
	var req model.CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid request body"))
		return
	}

	resp, err := c.reportService.Create(r.Context(), req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

// UpdateReport godoc
// @Summary      Update Report
// @Description  Overwrites every editable field of a report. The creation timestamp is preserved.
// @Tags         report
// @Accept       json
// @Produce      json
// @Param        reportId path string true "Report ID"
// @Param        request body model.UpdateReportRequest true "Update Report Request"
// @Success      200  {object}  helper.ResponseSuccess{data=model.ReportDTO}
// @Failure      400  {object}  helper.ResponseError
// @Failure      404  {object}  helper.ResponseError
// @Failure      429  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Router       /api/reports/{reportId} [put]
func (c *ReportController) UpdateReport(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "reportId"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid report id"))
		return
	}

	var req model.UpdateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid request body"))
		return
	}

	resp, err := c.reportService.Update(r.Context(), id, req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

// DeleteReport godoc
// @Summary      Delete Report
// @Description  Removes a report. Deleting an id that is already gone still succeeds.
// @Tags         report
// @Produce      json
// @Param        reportId path string true "Report ID"
// @Success      200  {object}  helper.ResponseSuccess
// @Failure      400  {object}  helper.ResponseError
// @Failure      429  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Router       /api/reports/{reportId} [delete]
func (c *ReportController) DeleteReport(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "reportId"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid report id"))
		return
	}

	if err := c.reportService.Delete(r.Context(), id); err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, nil)
}
