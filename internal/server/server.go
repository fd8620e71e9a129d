package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/DailyPoll_Go/docs"

	"github.com/osse101/DailyPoll_Go/internal/comment"
	"github.com/osse101/DailyPoll_Go/internal/handler"
	"github.com/osse101/DailyPoll_Go/internal/leaderboard"
	"github.com/osse101/DailyPoll_Go/internal/logger"
	"github.com/osse101/DailyPoll_Go/internal/metrics"
	"github.com/osse101/DailyPoll_Go/internal/profile"
	"github.com/osse101/DailyPoll_Go/internal/question"
	"github.com/osse101/DailyPoll_Go/internal/results"
	"github.com/osse101/DailyPoll_Go/internal/scoring"
	"github.com/osse101/DailyPoll_Go/internal/voting"
)

// Config holds the HTTP settings of the server
type Config struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Location       *time.Location
	ServiceName    string
	Version        string
}

// Services are the domain services exposed over HTTP
type Services struct {
	Questions   question.Service
	Voting      voting.Service
	Scoring     scoring.Service
	Leaderboard leaderboard.Service
	Results     results.Service
	Profiles    profile.Service
	Comments    comment.Service
}

type Server struct {
	httpServer *http.Server
	readiness  *handler.Readiness
}

// NewServer creates a new Server instance. cacheStats may be nil when the
// question cache is disabled.
func NewServer(cfg Config, store handler.Pinger, svc Services, cacheStats handler.CacheStatsProvider) *Server {
	readiness := handler.NewReadiness(store)
	return &Server{
		readiness: readiness,
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           NewRouter(cfg, readiness, svc, cacheStats),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the route tree. The admin subtree requires the API key;
// voter routes trust the X-Voter-ID header set by the identity proxy.
func NewRouter(cfg Config, readiness *handler.Readiness, svc Services, cacheStats handler.CacheStatsProvider) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	proxies := NewProxyResolver(cfg.TrustedProxies)
	monitor := NewAbuseMonitor()

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(proxies, monitor))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", readiness.Handler())
	r.Get("/version", handler.HandleVersion(cfg.ServiceName, cfg.Version))
	r.Handle(metrics.ScrapePath, promhttp.Handler())
	r.Get(SwaggerPrefix+"*", httpSwagger.WrapHandler)

	commentHandler := handler.NewCommentHandler(svc.Comments)
	scoringHandler := handler.NewAdminScoringHandler(svc.Scoring, cfg.Location)
	cacheHandler := handler.NewAdminCacheHandler(cacheStats)

	r.Route(APIPrefix, func(r chi.Router) {
		r.Get("/questions/today", handler.HandleGetTodayQuestion(svc.Questions))
		r.Get("/questions/{id}/comments", commentHandler.HandleList)
		r.Post("/questions/{id}/comments", commentHandler.HandlePost)

		r.Post("/votes", handler.HandleSubmitVote(svc.Voting))

		r.Get("/me", handler.HandleGetMe(svc.Leaderboard))
		r.Put("/me/profile", handler.HandleUpdateProfile(svc.Profiles))

		r.Get("/leaderboard", handler.HandleGetLeaderboard(svc.Leaderboard))
		r.Get("/results", handler.HandleGetResults(svc.Results))

		r.Route("/admin", func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.APIKey, proxies, monitor))

			r.Post("/questions", handler.HandleCreateQuestion(svc.Questions))
			r.Post("/questions/{id}/grade", scoringHandler.HandleGrade)
			r.Post("/score", scoringHandler.HandleScore)
			r.Get("/cache/stats", cacheHandler.HandleGetCacheStats)
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		for _, path := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, path) {
				next.ServeHTTP(w, r)
				return
			}
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		if voterID := r.Header.Get(handler.HeaderVoterID); voterID != "" {
			log = log.With(logger.AttrKeyVoterID, voterID)
			ctx = logger.WithLogger(ctx, log)
			r = r.WithContext(ctx)
		}

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop fails readiness, then shuts down gracefully
func (s *Server) Stop(ctx context.Context) error {
	s.readiness.Drain()
	return s.httpServer.Shutdown(ctx)
}

// sanitizeHeaders copies h with credentials replaced by RedactedValue
func sanitizeHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
			continue
		}
		out[k] = v
	}
	return out
}
