package api

import (
	"bytes"
	"embed"
	"html/template"
	"log"
	"net/http"
	"net/url"

	"github.com/status-im/crypto-insight-hub/dashboard"
	"github.com/status-im/crypto-insight-hub/presentation"
)

//go:embed templates/index.html
var templatesFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// indexPage is the view model of the dashboard page
type indexPage struct {
	Coins   string
	Report  *dashboard.Report
	Error   string
	Insight *presentation.InsightBlock
}

// InsightURL links the "Get Insights" button of a coin
func (p indexPage) InsightURL(coinID string) string {
	query := url.Values{}
	query.Set("coins", p.Coins)
	query.Set("insight", coinID)
	return "/?" + query.Encode()
}

// ExportURL links the xlsx download of the current comparison
func (p indexPage) ExportURL() string {
	query := url.Values{}
	query.Set("coins", p.Coins)
	return "/api/v1/dashboard/export.xlsx?" + query.Encode()
}

// handleIndex renders the HTML dashboard. The comparison is shown after the form is submitted.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := indexPage{Coins: s.defaultCoins}

	// Upstream data is only fetched once the form has been submitted
	if r.URL.Query().Has("coins") {
		page.Coins = getParam(r, "coins")

		report, err := s.dashboardService.Compare(r.Context(), page.Coins)
		if err != nil {
			page.Error = err.Error()
		} else {
			page.Report = report
		}
	}

	if coinID := getParam(r, "insight"); coinID != "" {
		block, _ := s.dashboardService.Insight(r.Context(), coinID)
		page.Insight = &block
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, page); err != nil {
		log.Printf("Error rendering dashboard: %v", err)
		http.Error(w, "Error rendering page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
