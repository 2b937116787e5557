package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	appvideo "github.com/bryanwahyu/chaos-engine/internal/application/video"
	appvisual "github.com/bryanwahyu/chaos-engine/internal/application/visual"
	domain "github.com/bryanwahyu/chaos-engine/internal/domain/analysis"
	"github.com/bryanwahyu/chaos-engine/internal/domain/domains"
	"github.com/bryanwahyu/chaos-engine/internal/middleware"
)

const (
	banner             = "Chaos Engine V3 Backend Online 🚀"
	defaultVideoDomain = "support"
	multipartMemory    = 32 << 20
	defaultUploadLimit = 512 << 20
)

// Analyzer runs code analysis.
type Analyzer interface {
	Analyze(ctx context.Context, req domain.Request) domain.Result
}

// VideoAnalyzer correlates a recording with code.
type VideoAnalyzer interface {
	Analyze(ctx context.Context, job appvideo.Job) domain.Result
}

// Visualizer renders a bug into an image.
type Visualizer interface {
	Generate(ctx context.Context, req appvisual.Request) appvisual.Result
}

// Options tunes the router. Zero values are usable.
type Options struct {
	AllowedOrigins []string
	MaxUploadBytes int64
	Checkers       map[string]middleware.HealthChecker
	Log            *zap.Logger
}

type Router struct {
	analysis  Analyzer
	video     VideoAnalyzer
	visual    Visualizer
	maxUpload int64
	log       *zap.Logger
}

func NewRouter(analysisSvc Analyzer, videoSvc VideoAnalyzer, visualSvc Visualizer, opts Options) http.Handler {
	r := &Router{
		analysis:  analysisSvc,
		video:     videoSvc,
		visual:    visualSvc,
		maxUpload: opts.MaxUploadBytes,
		log:       opts.Log,
	}
	if r.maxUpload <= 0 {
		r.maxUpload = defaultUploadLimit
	}
	if r.log == nil {
		r.log = zap.NewNop()
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	mux := chi.NewRouter()
	mux.Use(chimw.RequestID)
	mux.Use(middleware.Logging(r.log))
	mux.Use(chimw.Recoverer)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	mux.Get("/", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, map[string]string{"message": banner})
	})
	mux.Get("/health", middleware.HealthHandler(opts.Checkers, time.Now))
	mux.Get("/domains", r.wrap(r.handleDomains))
	mux.Post("/analyze", r.wrap(r.handleAnalyze))
	mux.Post("/generate-bug-visual", r.wrap(r.handleBugVisual))
	mux.Post("/analyze-video", r.wrap(r.handleAnalyzeVideo))

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// wrap turns handler errors into a 200 error payload. Callers detect failure
// through the status field only.
func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			r.log.Warn("request rejected",
				zap.String("path", req.URL.Path),
				zap.String("request_id", chimw.GetReqID(req.Context())),
				zap.Error(err),
			)
			writeJSON(w, domain.Failure("", err))
		}
	}
}

// detach keeps provider calls running when the caller goes away.
func detach(req *http.Request) context.Context {
	return context.WithoutCancel(req.Context())
}

// GET /domains
func (r *Router) handleDomains(w http.ResponseWriter, req *http.Request) error {
	all := domains.All()
	resp := struct {
		Domains map[domains.Key]domains.Descriptor `json:"domains"`
		Order   []domains.Key                      `json:"order"`
	}{
		Domains: make(map[domains.Key]domains.Descriptor, len(all)),
		Order:   domains.Keys(),
	}
	for _, d := range all {
		resp.Domains[d.Key] = d
	}
	writeJSON(w, resp)
	return nil
}

// POST /analyze
// Body: {"code": "...", "api_key": "...", "domain": "game"}
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Code   string `json:"code" validate:"required"`
		APIKey string `json:"api_key"`
		Domain string `json:"domain" validate:"max=64"`
	}
	if err := decodeJSON(req.Body, &body); err != nil {
		return err
	}
	if err := middleware.ValidateStruct(body); err != nil {
		return err
	}

	res := r.analysis.Analyze(detach(req), domain.Request{
		Code:   body.Code,
		APIKey: body.APIKey,
		Domain: middleware.SanitizeString(body.Domain),
	})
	writeJSON(w, res)
	return nil
}

// POST /generate-bug-visual
// Body: {"bug_description": "...", "bug_type": "crash", "api_key": "..."}
func (r *Router) handleBugVisual(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		BugDescription string `json:"bug_description" validate:"required"`
		BugType        string `json:"bug_type"`
		APIKey         string `json:"api_key"`
	}
	if err := decodeJSON(req.Body, &body); err != nil {
		return err
	}
	if err := middleware.ValidateStruct(body); err != nil {
		return err
	}

	res := r.visual.Generate(detach(req), appvisual.Request{
		BugDescription: middleware.SanitizeString(body.BugDescription),
		BugType:        middleware.SanitizeString(body.BugType),
		APIKey:         body.APIKey,
	})
	writeJSON(w, res)
	return nil
}

// POST /analyze-video
// Multipart: video (file), code, domain, api_key
func (r *Router) handleAnalyzeVideo(w http.ResponseWriter, req *http.Request) error {
	req.Body = http.MaxBytesReader(w, req.Body, r.maxUpload)
	if err := req.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("video exceeds %d bytes", tooLarge.Limit)
		}
		return fmt.Errorf("invalid multipart form: %w", err)
	}
	defer req.MultipartForm.RemoveAll()

	file, header, err := req.FormFile("video")
	if err != nil {
		return fmt.Errorf("video is required: %w", err)
	}
	defer file.Close()

	var form struct {
		Code   string `validate:"required"`
		Domain string `validate:"max=64"`
	}
	form.Code = req.FormValue("code")
	form.Domain = middleware.SanitizeString(req.FormValue("domain"))
	if err := middleware.ValidateStruct(form); err != nil {
		return err
	}
	if form.Domain == "" {
		form.Domain = defaultVideoDomain
	}

	res := r.video.Analyze(detach(req), appvideo.Job{
		Video:       file,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Code:        form.Code,
		Domain:      form.Domain,
		APIKey:      req.FormValue("api_key"),
	})
	writeJSON(w, res)
	return nil
}

func decodeJSON(body io.Reader, v any) error {
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
