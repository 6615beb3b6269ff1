package controller

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ricotama/LAPORin/internal/helper"
	"github.com/ricotama/LAPORin/internal/model"
	"github.com/ricotama/LAPORin/internal/service"
)

type DraftController struct {
	draftService *service.DraftService
}

func NewDraftController(draftService *service.DraftService) *DraftController {
	return &DraftController{
		draftService: draftService,
	}
}

// StartDraft godoc
// @Summary      Start Draft
// @Description  Opens a new draft. Pass a report id to start editing that report instead of creating a new one.
// @Tags         draft
// @Accept       json
// @Produce      json
// @Param        request body model.StartDraftRequest true "Start Draft Request"
// @Success      200  {object}  helper.ResponseSuccess{data=model.DraftDTO}
// @Failure      400  {object}  helper.ResponseError
// @Failure      404  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Router       /api/drafts [post]
func (c *DraftController) StartDraft(w http.ResponseWriter, r *http.Request) {
	var req model.StartDraftRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			helper.WriteError(w, helper.NewBadRequestError("Invalid request body"))
			return
		}
	}

	resp, err := c.draftService.Start(r.Context(), req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

// GetDraft godoc
// @Summary      Get Draft
// @Description  Returns the current state of a draft.
// @Tags         draft
// @Produce      json
// @Param        draftId path string true "Draft ID"
// @Success      200  {object}  helper.ResponseSuccess{data=model.DraftDTO}
// @Failure      404  {object}  helper.ResponseError
// @Router       /api/drafts/{draftId} [get]
func (c *DraftController) GetDraft(w http.ResponseWriter, r *http.Request) {
	resp, err := c.draftService.Get(r.Context(), chi.URLParam(r, "draftId"))
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

// UpdateDraftFields godoc
// @Summary      Update Draft Fields
// @Description  Overwrites only the fields present in the request body.
// @Tags         draft
// @Accept       json
// @Produce      json
// @Param        draftId path string true "Draft ID"
// @Param        request body model.UpdateDraftFieldsRequest true "Update Draft Fields Request"
// @Success      200  {object}  helper.ResponseSuccess{data=model.DraftDTO}
// @Failure      400  {object}  helper.ResponseError
// @Failure      404  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Router       /api/drafts/{draftId} [patch]
func (c *DraftController) UpdateDraftFields(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateDraftFieldsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid request body"))
		return
	}

	resp, err := c.draftService.UpdateFields(r.Context(), chi.URLParam(r, "draftId"), req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

// AttachPhoto godoc
// @Summary      Attach Photo
// @Description  Attaches an inline photo payload to the draft.
// @Tags         draft
// @Accept       json
// @Produce      json
// @Param        draftId path string true "Draft ID"
// @Param        request body model.AttachPhotoRequest true "Attach Photo Request"
// @Success      200  {object}  helper.ResponseSuccess{data=model.DraftDTO}
// @Failure      400  {object}  helper.ResponseError
// @Failure      404  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Router       /api/drafts/{draftId}/photo [put]
func (c *DraftController) AttachPhoto(w http.ResponseWriter, r *http.Request) {
	var req model.AttachPhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid request body"))
		return
	}

	resp, err := c.draftService.AttachPhoto(r.Context(), chi.URLParam(r, "draftId"), req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

// AttachLocation godoc
// @Summary      Attach Location
// @Description  Sets the draft coordinates.
// @Tags         draft
// @Accept       json
// @Produce      json
// @Param        draftId path string true "Draft ID"
// @Param        request body model.AttachLocationRequest true "Attach Location Request"
// @Success      200  {object}  helper.ResponseSuccess{data=model.DraftDTO}
// @Failure      400  {object}  helper.ResponseError
// @Failure      404  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Router       /api/drafts/{draftId}/location [put]
func (c *DraftController) AttachLocation(w http.ResponseWriter, r *http.Request) {
	var req model.AttachLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid request body"))
		return
	}

	resp, err := c.draftService.AttachLocation(r.Context(), chi.URLParam(r, "draftId"), req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

// SubmitDraft godoc
// @Summary      Submit Draft
// @Description  Validates the draft and writes it to the report store. A successful submit resets the draft.
// @Tags         draft
// @Produce      json
// @Param        draftId path string true "Draft ID"
// @Success      200  {object}  helper.ResponseSuccess{data=model.ReportDTO}
// @Failure      400  {object}  helper.ResponseError
// @Failure      404  {object}  helper.ResponseError
// @Failure      409  {object}  helper.ResponseError
// @Failure      429  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Router       /api/drafts/{draftId}/submit [post]
func (c *DraftController) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	resp, err := c.draftService.Submit(r.Context(), chi.URLParam(r, "draftId"))
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

// CancelDraft godoc
// @Summary      Cancel Draft
// @Description  Resets the draft to the pristine form and drops any editing target.
// @Tags         draft
// @Produce      json
// @Param        draftId path string true "Draft ID"
// @Success      200  {object}  helper.ResponseSuccess{data=model.DraftDTO}
// @Failure      404  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Router       /api/drafts/{draftId}/cancel [post]
func (c *DraftController) CancelDraft(w http.ResponseWriter, r *http.Request) {
	resp, err := c.draftService.Cancel(r.Context(), chi.URLParam(r, "draftId"))
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}
