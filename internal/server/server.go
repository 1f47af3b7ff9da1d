// Package server implements the mailpanel HTTP API: mailbox browsing
// over mbox files and the editor-widget error endpoint.
package server

import (
	"mime"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/emurenMRz/mailpanel/internal/config"
)

// Server serves the viewer API over a directory of mbox files.
type Server struct {
	cfg config.Config
	log zerolog.Logger
}

// New returns a server for the given configuration.
func New(cfg config.Config, log zerolog.Logger) *Server {
	return &Server{cfg: cfg, log: log}
}

// Handler builds the route tree. The API lives under /api/, static
// viewer assets under /static/, and the index page at the root.
func (s *Server) Handler() http.Handler {
	// Ensure common MIME types are set (some platforms lack .css/.js
	// by default).
	mime.AddExtensionType(".css", "text/css")
	mime.AddExtensionType(".js", "application/javascript")

	r := chi.NewRouter()
	r.Use(s.logRequests)

	r.Route("/api", func(r chi.Router) {
		r.Get("/mailboxes", s.handleMailboxes)
		r.Route("/mailboxes/{box}", func(r chi.Router) {
			r.Get("/emails", s.handleListEmails)
			r.Get("/emails/{id}", s.handleEmailContent)
			r.Post("/emails/{id}/read", s.requireEditMode(s.handleMarkRead))
			r.Post("/emails/{id}/delete", s.requireEditMode(s.handleDeleteEmail))
		})
		r.Post("/editor/errors", s.handleEditorErrors)
	})

	fs := http.FileServer(http.Dir("static"))
	r.Handle("/static/*", http.StripPrefix("/static/", fs))
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join("static", "index.html"))
	})

	return r
}

// Run starts the HTTP server and blocks.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
	s.log.Info().Str("addr", srv.Addr).Bool("edit_mode", s.cfg.Server.EditMode).Msg("listening")
	return srv.ListenAndServe()
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("request")
		next.ServeHTTP(w, r)
	})
}

// requireEditMode hides mutating endpoints unless edit mode is on.
func (s *Server) requireEditMode(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.cfg.Server.EditMode {
			http.NotFound(w, r)
			return
		}
		next(w, r)
	}
}
