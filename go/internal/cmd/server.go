package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mcdev12/tourney/go/internal/api/team/v1/teamv1connect"
	"github.com/mcdev12/tourney/go/internal/api/tournament/v1/tournamentv1connect"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

func setupServer(services *Services, port string) *http.Server {
	// Setup CORS middleware
	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedOrigins: []string{"*"},
		AllowedHeaders: []string{"*"},
	})

	// Wrap with CORS
	handler := c.Handler(newRouter(services))

	// Setup HTTP/2 server
	return &http.Server{
		Addr:              ":" + port,
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func newRouter(services *Services) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	registerServices(r, services)
	services.TournamentsREST.Routes(r)
	setupHealthCheck(r)
	return r
}

func registerServices(r chi.Router, services *Services) {
	// Register team service
	teamServicePath, teamServiceHandler := teamv1connect.NewTeamServiceHandler(services.Teams)
	r.Handle(teamServicePath+"*", teamServiceHandler)

	// Register tournament service
	tournamentServicePath, tournamentServiceHandler := tournamentv1connect.NewTournamentServiceHandler(services.Tournaments)
	r.Handle(tournamentServicePath+"*", tournamentServiceHandler)
}

func setupHealthCheck(r chi.Router) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("failed to write health check response")
		}
	})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		log.Debug().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("handled request")
	})
}
