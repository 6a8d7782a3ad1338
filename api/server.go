package api

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/status-im/crypto-insight-hub/config"
	"github.com/status-im/crypto-insight-hub/dashboard"
	"github.com/status-im/crypto-insight-hub/jobs"
)

// HealthChecker is a service that reports whether it is operational
type HealthChecker interface {
	Healthy() bool
}

type Server struct {
	port             string
	defaultCoins     string
	dashboardService *dashboard.Service
	jobRunner        *jobs.Runner
	healthChecks     map[string]HealthChecker
	server           *http.Server
}

func New(cfg *config.Config, dashboardService *dashboard.Service, jobRunner *jobs.Runner, healthChecks map[string]HealthChecker) *Server {
	return &Server{
		port:             cfg.Server.Port,
		defaultCoins:     cfg.Dashboard.DefaultCoins,
		dashboardService: dashboardService,
		jobRunner:        jobRunner,
		healthChecks:     healthChecks,
	}
}

// Router builds the HTTP routes of the server
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)

	router.HandleFunc("/api/v1/dashboard", s.handleDashboard).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/dashboard/jobs", s.handleDashboardJob).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/dashboard/export.xlsx", s.handleExportXLSX).Methods(http.MethodGet)

	router.HandleFunc("/api/v1/coins/{id}/insights", s.handleInsight).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/coins/{id}/insights/jobs", s.handleInsightJob).Methods(http.MethodPost)

	router.HandleFunc("/api/v1/jobs/{id}", s.handleGetJob).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/jobs/{id}/ws", s.handleWatchJob).Methods(http.MethodGet)

	router.HandleFunc("/health", s.handleHealth)
	router.Handle("/metrics", promhttp.Handler())

	return router
}

func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:    ":" + s.port,
		Handler: s.Router(),
	}

	log.Printf("Server starting at http://localhost:%s", s.port)
	log.Println("Prometheus metrics available at /metrics endpoint")

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	return nil
}
