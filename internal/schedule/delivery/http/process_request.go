package http

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	formatSVG  = "svg"
	formatJSON = "json"

	audioField = "audio"
	textField  = "text"

	// multipartOverhead leaves room for the text field and part headers.
	multipartOverhead = 1 << 20
)

// processSubmitReq binds a multipart or JSON submission. Uploaded audio is
// spooled to a temp file; the returned cleanup removes it.
func (h *handler) processSubmitReq(c *gin.Context) (submitReq, func(), error) {
	noop := func() {}
	var req submitReq

	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			return req, noop, errInvalidBody
		}
		return req, noop, nil
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxAudioBytes+multipartOverhead)
	if err := c.Request.ParseMultipartForm(multipartOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, noop, errAudioTooLarge
		}
		return req, noop, errInvalidBody
	}
	req.Text = c.PostForm(textField)

	header, err := c.FormFile(audioField)
	if errors.Is(err, http.ErrMissingFile) {
		return req, noop, nil
	}
	if err != nil {
		return req, noop, errInvalidBody
	}
	if header.Size > h.maxAudioBytes {
		return req, noop, errAudioTooLarge
	}

	src, err := header.Open()
	if err != nil {
		return req, noop, err
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "planner-audio-*"+filepath.Ext(header.Filename))
	if err != nil {
		return req, noop, err
	}
	cleanup := func() { os.Remove(tmp.Name()) }

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		cleanup()
		return req, noop, err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return req, noop, err
	}

	req.AudioPath = tmp.Name()
	return req, cleanup, nil
}

// processResetReq binds the reset body. A missing password is checked by the use case.
func (h *handler) processResetReq(c *gin.Context) (resetReq, error) {
	var req resetReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, errInvalidBody
	}
	return req, nil
}

// processChartReq binds the chart query parameters.
func (h *handler) processChartReq(c *gin.Context) (chartReq, error) {
	var req chartReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidBody
	}
	req.Format = strings.ToLower(req.Format)
	return req, req.validate()
}
