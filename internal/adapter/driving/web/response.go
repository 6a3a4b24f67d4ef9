package web

import (
	"encoding/json"
	"net/http"

	"github.com/caffxin/studiosite/internal/application"
)

// contactResponse is the JSON body returned to script-driven contact posts.
type contactResponse struct {
	Status     string               `json:"status"`
	Message    string               `json:"message,omitempty"`
	DurationMS int64                `json:"duration_ms,omitempty"`
	Fields     contactFields        `json:"fields"`
	Errors     []fieldErrorResponse `json:"errors,omitempty"`
}

// contactFields echoes the form values the page should keep showing. They
// are empty after a successful send.
type contactFields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func newContactResponse(o outcome, result application.SubmitResult) contactResponse {
	resp := contactResponse{
		Status: string(o),
		Fields: contactFields{
			Name:    result.Form.Name,
			Email:   result.Form.Email,
			Message: result.Form.Message,
		},
	}
	if result.Notice != nil {
		resp.Message = result.Notice.Message
		resp.DurationMS = result.Notice.Duration.Milliseconds()
	}
	for _, fe := range result.Errors {
		resp.Errors = append(resp.Errors, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
	}
	return resp
}

// writeJSON serializes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status":"error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
