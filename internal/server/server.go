// Package server exposes the conversion pipeline over a minimal HTTP API.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"fjacquet/pdf2firefly/internal/converter"
	"fjacquet/pdf2firefly/internal/fileutils"
	"fjacquet/pdf2firefly/internal/logging"
)

// Server handles statement conversion requests. Upload and output
// directories are injected rather than read from process-wide globals, and
// every request stages files under its own unique name, so a single Server
// safely serves concurrent requests.
type Server struct {
	conv           *converter.Converter
	uploadDir      string
	outputDir      string
	maxUploadBytes int64
	log            logging.Logger
}

// New creates a Server and ensures the staging directories exist.
func New(conv *converter.Converter, uploadDir, outputDir string, maxUploadMB int64, log logging.Logger) (*Server, error) {
	if log == nil {
		log = logging.GetLogger()
	}
	if maxUploadMB <= 0 {
		maxUploadMB = 32
	}

	if err := fileutils.EnsureDirectoryExists(uploadDir); err != nil {
		return nil, err
	}
	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return nil, err
	}

	return &Server{
		conv:           conv,
		uploadDir:      uploadDir,
		outputDir:      outputDir,
		maxUploadBytes: maxUploadMB << 20,
		log:            log,
	}, nil
}

// Router builds the HTTP handler with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggerMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)
	r.Post("/convert", s.handleConvert)
	r.Post("/convert-json", s.handleConvertJSON)

	return r
}

// ListenAndServe starts the HTTP server on the given address and blocks.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       2 * time.Minute,
		WriteTimeout:      2 * time.Minute,
	}

	s.log.Info("HTTP server listening",
		logging.Field{Key: logging.FieldAddr, Value: addr})

	return srv.ListenAndServe()
}

// loggerMiddleware logs each HTTP request with status and duration.
func (s *Server) loggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info("http request",
			logging.Field{Key: "method", Value: r.Method},
			logging.Field{Key: "path", Value: r.URL.Path},
			logging.Field{Key: "status", Value: ww.Status()},
			logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()},
			logging.Field{Key: logging.FieldRequestID, Value: middleware.GetReqID(r.Context())})
	})
}
