package response

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// HTML sends a rendered document.
func HTML(c *gin.Context, status int, body string) {
	c.Data(status, ContentTypeHTML, []byte(body))
}

// Text sends a plain-text body.
func Text(c *gin.Context, status int, body string) {
	c.Data(status, ContentTypeText, []byte(body))
}

// Error sends a plain-text "Error: <message>" body and aborts the chain.
func Error(c *gin.Context, status int, message string) {
	c.Abort()
	Text(c, status, ErrorPrefix+message)
}

// InternalError sends 500 without leaking err.
func InternalError(c *gin.Context, err error) {
	_ = c.Error(err)
	Error(c, http.StatusInternalServerError, DefaultErrorMessage)
}

// PrettyJSON sends v indented by two spaces, the same layout the checklist files use on disk.
func PrettyJSON(c *gin.Context, status int, v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		InternalError(c, err)
		return
	}
	c.Data(status, ContentTypeJSON, b)
}
