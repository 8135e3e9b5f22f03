// Package handler implements the HTTP API of the photo tagger.
// All handlers are methods on Server. Methods are split into domain-specific
// files (collection.go, photo.go, criteria.go, ...) but all share the same
// Server struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/photo-tagger/internal/domain"
	"github.com/pkordes/photo-tagger/internal/service"
)

// CollectionServicer defines the collection operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types".
// *service.Collection satisfies it.
type CollectionServicer interface {
	Import(ctx context.Context, dir string) (int, error)

	AddCriterion(raw string) bool
	RemoveCriterion(tag string) int
	HasCriterion(tag string) bool
	Criteria() []string

	ApplyTag(index int, tag string) bool
	RemoveTag(index int, tag string) bool
	UniqueTags() []string

	Count() int
	Photo(index int) (domain.Photo, bool)
	Photos() []domain.Photo
	Current() (domain.Photo, bool)
	CurrentIndex() int
	Position() string
	Navigate(d domain.Direction) (bool, error)
}

// ExportServicer defines the export operation. *service.Exporter satisfies it.
type ExportServicer interface {
	ExportByTag(ctx context.Context, set service.PhotoSet, tag, destRoot string) (domain.ExportReport, error)
}

// Server holds the dependencies shared by every handler.
//
// The collection is a single-actor model with no locking of its own, while
// net/http serves requests concurrently. mu serializes every call into it;
// an export holds mu until the last file is copied.
type Server struct {
	mu         sync.Mutex
	collection CollectionServicer
	exporter   ExportServicer
	exportRoot string
	log        *slog.Logger
}

// Option customises a Server.
type Option func(*Server)

// WithExportRoot sets the destination root used when an export request omits one.
func WithExportRoot(dir string) Option {
	return func(s *Server) { s.exportRoot = dir }
}

// WithLogger sets the logger used for unexpected errors.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) { s.log = log }
}

// NewServer constructs the Server with all its dependencies.
func NewServer(collection CollectionServicer, exporter ExportServicer, opts ...Option) *Server {
	s := &Server{collection: collection, exporter: exporter, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil)
}

// Routes returns a chi router with every API endpoint registered.
// Cross-cutting middleware (request ID, logging, CORS, body limits) is
// applied by the caller around the returned handler.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/collection", func(r chi.Router) {
		r.Get("/", s.GetCollection)
		r.Post("/import", s.ImportCollection)
		r.Get("/current", s.GetCurrentPhoto)
	})

	r.Route("/photos", func(r chi.Router) {
		r.Get("/", s.ListPhotos)
		r.Get("/{index}", s.GetPhoto)
		r.Post("/{index}/tags", s.AddTagToPhoto)
		r.Delete("/{index}/tags/{tag}", s.RemoveTagFromPhoto)
	})

	r.Route("/criteria", func(r chi.Router) {
		r.Get("/", s.ListCriteria)
		r.Post("/", s.CreateCriterion)
		r.Delete("/{tag}", s.DeleteCriterion)
	})

	r.Post("/navigation/{direction}", s.Navigate)
	r.Post("/exports", s.CreateExport)

	return r
}

// compile-time checks
var (
	_ CollectionServicer = (*service.Collection)(nil)
	_ ExportServicer     = (*service.Exporter)(nil)
)
