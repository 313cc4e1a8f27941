package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	InternalServerErrorCode = 500

	DateTimeFormat = "2006-01-02 15:04:05"

	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypeJSON = "application/json; charset=utf-8"

	// ErrorPrefix starts every plain-text error body.
	ErrorPrefix = "Error: "
)
