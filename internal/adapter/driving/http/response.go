package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/caffxin/studiosite/internal/application"
	"github.com/caffxin/studiosite/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the JSON representation of the health report.
type HealthResponse struct {
	Status  string         `json:"status"`
	Source  string         `json:"source"`
	Relay   string         `json:"relay"`
	Content map[string]int `json:"content"`
	Time    string         `json:"time"`
}

// RouteResponse is the JSON representation of a navigable route.
type RouteResponse struct {
	Path       string `json:"path"`
	Page       string `json:"page"`
	ServiceKey string `json:"service_key,omitempty"`
}

// ServiceResponse is the JSON representation of a service offering.
type ServiceResponse struct {
	Key              string   `json:"key"`
	Name             string   `json:"name"`
	ShortDescription string   `json:"short_description"`
	Detail           string   `json:"detail,omitempty"`
	Features         []string `json:"features"`
	Path             string   `json:"path"`
}

// ProjectResponse is the JSON representation of a portfolio project.
type ProjectResponse struct {
	Key            string   `json:"key"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Industry       string   `json:"industry"`
	ProblemsSolved []string `json:"problems_solved"`
	TechStack      []string `json:"tech_stack"`
	Highlights     []string `json:"highlights"`
	Image          string   `json:"image,omitempty"`
	Note           string   `json:"note,omitempty"`
	CaseURL        string   `json:"case_url,omitempty"`
}

// ContentKeysResponse lists the entry keys of one content kind.
type ContentKeysResponse struct {
	Kind string   `json:"kind"`
	Keys []string `json:"keys"`
}

// FAQCategoryResponse is one FAQ category with its entries.
type FAQCategoryResponse struct {
	Category string             `json:"category"`
	Entries  []FAQEntryResponse `json:"entries"`
}

// FAQEntryResponse is the JSON representation of a question and its
// markdown answer.
type FAQEntryResponse struct {
	Key      string `json:"key"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func toHealthResponse(r application.HealthReport, now time.Time) HealthResponse {
	content := make(map[string]int, len(r.Content))
	for kind, n := range r.Content {
		content[string(kind)] = n
	}
	return HealthResponse{
		Status:  r.Status,
		Source:  r.Source,
		Relay:   string(r.Relay),
		Content: content,
		Time:    now.Format(time.RFC3339),
	}
}

func toRouteResponse(r model.Route) RouteResponse {
	return RouteResponse{Path: r.Path, Page: string(r.Page), ServiceKey: r.ServiceKey}
}

func toServiceResponse(s model.ServiceOffering) ServiceResponse {
	return ServiceResponse{
		Key:              s.Key,
		Name:             s.Name,
		ShortDescription: s.ShortDescription,
		Detail:           s.Detail,
		Features:         nonNil(s.Features),
		Path:             model.ServiceDetailPath(s.Key),
	}
}

func toProjectResponse(p model.PortfolioProject) ProjectResponse {
	resp := ProjectResponse{
		Key:            p.Key,
		Name:           p.Name,
		Category:       p.Category,
		Industry:       p.Industry,
		ProblemsSolved: nonNil(p.ProblemsSolved),
		TechStack:      nonNil(p.TechStack),
		Highlights:     nonNil(p.Highlights),
		Image:          p.ImageRef,
	}
	if p.HasCaseLink() {
		resp.CaseURL = p.Note
	} else {
		resp.Note = p.Note
	}
	return resp
}

func toFAQCategoryResponse(c model.FAQCategory) FAQCategoryResponse {
	resp := FAQCategoryResponse{Category: c.Name, Entries: make([]FAQEntryResponse, 0, len(c.Entries))}
	for _, e := range c.Entries {
		resp.Entries = append(resp.Entries, FAQEntryResponse{Key: e.Key, Question: e.Question, Answer: e.Answer})
	}
	return resp
}

// nonNil keeps empty lists as [] rather than null in JSON output.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
