package api

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/status-im/crypto-insight-hub/jobs"
	"github.com/status-im/crypto-insight-hub/presentation"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// handleDashboard returns the comparison report for ?coins=
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	report, err := s.dashboardService.Compare(r.Context(), getParam(r, "coins"))
	if err != nil {
		s.sendError(w, err)
		return
	}
	s.sendJSONResponse(w, report)
}

// handleDashboardJob runs the comparison in the background and returns the pending job
func (s *Server) handleDashboardJob(w http.ResponseWriter, r *http.Request) {
	raw := getParam(r, "coins")
	job, err := s.jobRunner.Submit(jobs.KindDashboard, func(ctx context.Context) (interface{}, error) {
		report, err := s.dashboardService.Compare(ctx, raw)
		if err != nil {
			return nil, err
		}
		return report, nil
	})
	if err != nil {
		s.sendError(w, err)
		return
	}
	s.sendJSONResponseWithStatus(w, http.StatusAccepted, job)
}

// handleExportXLSX downloads the comparison table as a workbook
func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	report, err := s.dashboardService.Compare(r.Context(), getParam(r, "coins"))
	if err != nil {
		s.sendError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := presentation.ExportComparisonXLSX(&buf, report.Table); err != nil {
		log.Printf("Error exporting xlsx: %v", err)
		http.Error(w, "Error encoding workbook", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="crypto-comparison.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

// handleInsight returns the insight block of a coin. Failed fetches still carry the block.
func (s *Server) handleInsight(w http.ResponseWriter, r *http.Request) {
	block, err := s.dashboardService.Insight(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.sendJSONResponseWithStatus(w, statusForError(err), block)
		return
	}
	s.sendJSONResponse(w, block)
}

// handleInsightJob fetches the insight of a coin in the background
func (s *Server) handleInsightJob(w http.ResponseWriter, r *http.Request) {
	coinID := mux.Vars(r)["id"]
	job, err := s.jobRunner.Submit(jobs.KindInsight, func(ctx context.Context) (interface{}, error) {
		return s.dashboardService.Insight(ctx, coinID)
	})
	if err != nil {
		s.sendError(w, err)
		return
	}
	s.sendJSONResponseWithStatus(w, http.StatusAccepted, job)
}
