package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"weekly-checklist/pkg/response"
)

// View godoc
// @Summary     Show a weekly checklist
// @Description Renders the checklist for a week as HTML. Without a week the current ISO week is shown.
// @Description Weeks that were never imported render an empty checklist.
// @Tags        Checklist
// @Produce     html
// @Param       week query string false "Week id, e.g. 2025-W1"
// @Success     200 {string} string "HTML document"
// @Failure     500 {string} string "Error: <message>"
// @Router      /checklist [GET]
func (h *handler) View(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processViewReq(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	output, err := h.uc.View(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "checklist/delivery/http.View uc.View: %v", err)
		h.fail(c, err)
		return
	}

	page, err := h.renderer.Checklist(output.Checklist, output.WeekID)
	if err != nil {
		h.l.Errorf(ctx, "checklist/delivery/http.View renderer.Checklist: %v", err)
		response.InternalError(c, err)
		return
	}

	response.HTML(c, http.StatusOK, page)
}

// Import godoc
// @Summary     Import a weekly checklist
// @Description Replaces the checklist for a week with the JSON body. The checklist is written to disk
// @Description before it becomes visible to readers. The week parameter decides where it is stored.
// @Tags        Checklist
// @Accept      json
// @Produce     plain
// @Param       week query string              true "Week id, e.g. 2025-W1"
// @Param       body body  model.WeeklyChecklist true "Checklist"
// @Success     200 {string} string "Imported and saved checklist for week: <week>"
// @Failure     400 {string} string "Error: <message>"
// @Failure     413 {string} string "Error: Request body too large"
// @Failure     429 {string} string "Error: Too many requests"
// @Failure     500 {string} string "Error: Failed to save checklist"
// @Router      /import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processImportReq(c)
	if err != nil {
		h.l.Warnf(ctx, "checklist/delivery/http.Import processImportReq: %v", err)
		h.fail(c, err)
		return
	}

	output, err := h.uc.Import(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "checklist/delivery/http.Import uc.Import: %v", err)
		h.fail(c, err)
		return
	}

	response.Text(c, http.StatusOK, h.newImportResp(output))
}

// Export godoc
// @Summary     Export a weekly checklist
// @Description Returns the stored checklist for a week as pretty-printed JSON.
// @Tags        Checklist
// @Produce     json
// @Param       week query string true "Week id, e.g. 2025-W1"
// @Success     200 {object} model.WeeklyChecklist
// @Failure     400 {string} string "Error: <message>"
// @Failure     404 {string} string "Error: Checklist not found"
// @Router      /export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	output, err := h.uc.Export(ctx, req.toInput())
	if err != nil {
		h.l.Debugf(ctx, "checklist/delivery/http.Export uc.Export: %v", err)
		h.fail(c, err)
		return
	}

	response.PrettyJSON(c, http.StatusOK, output.Checklist)
}
