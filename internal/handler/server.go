// Package handler implements the HTTP surface of the resort catalog: the
// server-rendered list, create, edit, view, and delete pages, plus a health
// endpoint. All handlers are methods on Server. Mutating routes follow the
// redirect-after-POST pattern and carry their outcome notice in a one-shot
// flash cookie.
package handler

import (
	"context"
	"fmt"
	"html/template"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ptessari/resort-catalog/internal/domain"
	"github.com/ptessari/resort-catalog/web"
)

// ResortServicer defines the catalog operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type ResortServicer interface {
	List(ctx context.Context, filter domain.ResortFilter) ([]domain.ScoredResort, error)
	Create(ctx context.Context, input domain.ResortInput) (domain.Resort, error)
	GetByID(ctx context.Context, id int64) (domain.Resort, error)
	Update(ctx context.Context, id int64, input domain.ResortInput) (domain.Resort, error)
	Delete(ctx context.Context, id int64) error
}

// Server holds the handler dependencies: the catalog service and the parsed
// page templates. Handlers are spread across resort.go and health.go but all
// operate on this struct.
type Server struct {
	resorts ResortServicer
	tmpl    *template.Template
}

// NewServer constructs the Server and parses the embedded page templates.
func NewServer(resorts ResortServicer) (*Server, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("handler.NewServer: parse templates: %w", err)
	}
	return &Server{resorts: resorts, tmpl: tmpl}, nil
}

// templateFuncs makes the nullable resort columns render cleanly:
// NULL text prints as an empty string, prices print with two decimals.
var templateFuncs = template.FuncMap{
	"text": func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	},
	"price": func(p *float64) string {
		if p == nil {
			return ""
		}
		return strconv.FormatFloat(*p, 'f', 2, 64)
	},
}

// Routes returns the chi router for the whole HTTP surface.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.Health)

	r.Get("/", s.Index)
	r.Get("/new", s.NewForm)
	r.Post("/new", s.Create)
	r.Get("/edit/{id}", s.EditForm)
	r.Post("/edit/{id}", s.Update)
	r.Get("/view/{id}", s.View)
	r.Post("/delete/{id}", s.Delete)

	return r
}
