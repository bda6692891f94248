package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"daily-planner/internal/schedule"
	"daily-planner/pkg/chart"
	pkgErrors "daily-planner/pkg/errors"
	"daily-planner/pkg/response"
)

// Submit godoc
// @Summary     Submit a day plan
// @Description Transcribes an optional audio upload (or takes the text field), asks the LLM for a
// @Description 30-minute schedule and stores it. One edit is allowed after the first submission.
// @Tags        Schedule
// @Accept      multipart/form-data,json
// @Produce     json
// @Param       audio formData file   false "Spoken plan"
// @Param       text  formData string false "Typed plan"
// @Success     200 {object} submitResp
// @Failure     400 {object} response.Resp "No input provided"
// @Failure     413 {object} response.Resp "Audio file too large"
// @Failure     423 {object} response.Resp "Schedule locked"
// @Failure     502 {object} response.Resp "Transcription or completion failed"
// @Router      /api/v1/schedules [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req, cleanup, err := h.processSubmitReq(c)
	defer cleanup()
	if err != nil {
		h.writeRequestError(c, "processSubmitReq", err)
		return
	}

	output, err := h.uc.Submit(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Submit: %v", err)
		response.Error(c, h.mapError(err), errorData(err))
		return
	}

	response.OKWithMessage(c, output.Message, h.newSubmitResp(output))
}

// Current godoc
// @Summary     Get the stored schedule
// @Description Returns the schedule, its lock phase, display range and parsed rows.
// @Tags        Schedule
// @Produce     json
// @Success     200 {object} currentResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedules/current [GET]
func (h *handler) Current(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Current(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Current: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCurrentResp(output))
}

// Chart godoc
// @Summary     Timeline chart of the stored schedule
// @Description Renders the parsed rows as an SVG timeline, or returns the timeline model as JSON.
// @Tags        Schedule
// @Produce     image/svg+xml,json
// @Param       format query string false "svg (default) or json"
// @Success     200 {object} chart.Timeline
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/schedules/current/chart [GET]
func (h *handler) Chart(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChartReq(c)
	if err != nil {
		h.writeRequestError(c, "processChartReq", err)
		return
	}

	timeline, err := h.uc.Chart(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Chart: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	if req.Format == formatJSON {
		response.OK(c, timeline)
		return
	}
	c.Data(http.StatusOK, "image/svg+xml", chart.RenderSVG(timeline, chart.DefaultSVGWidth))
}

// Reset godoc
// @Summary     Developer reset
// @Description Clears the stored schedule and lock when the password matches.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body resetReq true "Developer password"
// @Success     200 {object} response.Resp "Reset successful"
// @Failure     401 {object} response.Resp "Wrong password"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/schedules/reset [POST]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResetReq(c)
	if err != nil {
		h.writeRequestError(c, "processResetReq", err)
		return
	}

	if err := h.uc.Reset(ctx, req.Password); err != nil {
		h.l.Warnf(ctx, "uc.Reset: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OKWithMessage(c, schedule.MessageResetOK, nil)
}

// writeRequestError sends binding errors as-is and hides anything else behind a 500.
func (h *handler) writeRequestError(c *gin.Context, op string, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		response.Error(c, httpErr, nil)
		return
	}
	h.l.Errorf(c.Request.Context(), "%s: %v", op, err)
	response.InternalError(c, err)
}
