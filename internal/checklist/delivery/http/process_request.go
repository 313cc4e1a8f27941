package http

import (
	"io"

	"github.com/gin-gonic/gin"
)

// processViewReq binds the optional week query parameter.
func (h *handler) processViewReq(c *gin.Context) (viewReq, error) {
	var req viewReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processImportReq binds the week query parameter and reads the raw JSON body.
// The body is decoded by the use case so malformed JSON maps onto its error.
func (h *handler) processImportReq(c *gin.Context) (importReq, error) {
	var req importReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return req, err
	}
	req.Body = body
	return req, nil
}

// processExportReq binds the week query parameter.
func (h *handler) processExportReq(c *gin.Context) (exportReq, error) {
	var req exportReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
