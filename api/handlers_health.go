package api

import (
	"net/http"
)

// handleHealth responds with 200 OK to indicate the service is running
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	services := make(map[string]string, len(s.healthChecks))
	for name, checker := range s.healthChecks {
		services[name] = "unknown"
		if checker != nil && checker.Healthy() {
			services[name] = "up"
		}
	}

	response := map[string]interface{}{
		"status":   "ok",
		"services": services,
	}
	if s.jobRunner != nil {
		response["jobs"] = map[string]int{
			"stored":   s.jobRunner.Size(),
			"watchers": s.jobRunner.Watchers(),
		}
	}

	s.sendJSONResponse(w, response)
}
