package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/opsdesk/case-monitor-api/api"
	"github.com/opsdesk/case-monitor-api/config"
	"github.com/opsdesk/case-monitor-api/databases"
	"github.com/opsdesk/case-monitor-api/models"
	"github.com/opsdesk/case-monitor-api/query"
)

// Search exported for testing purposes
type Search struct {
	DB     databases.CaseDatabase
	Engine *query.Engine
}

type caseSearchRequest struct {
	Filter   models.CaseFilter `json:"filter"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}

// CaseSearchHandler evaluates a case filter over the full case collection and
// returns one page of matches. The filter itself runs in memory over a
// snapshot, so criteria the database cannot express (derived statuses, day
// thresholds, legacy fallbacks) behave identically everywhere.
func (s Search) CaseSearchHandler(w http.ResponseWriter, r *http.Request) {
	var req caseSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	// page and limit may also arrive as query params
	if req.Page == 0 {
		req.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	}
	if req.PageSize == 0 {
		req.PageSize, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	// newest first, matching the register view
	findOpts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	snapshot, err := s.DB.Find(ctx, bson.D{}, findOpts)
	if err != nil {
		config.ErrorStatus("failed to get cases", http.StatusInternalServerError, w, err)
		return
	}

	results := s.Engine.Run(snapshot, req.Filter)
	page := query.Paginate(results, req.PageSize, req.Page)

	zap.S().Debugw("case search",
		"snapshot", len(snapshot),
		"matched", page.TotalCount,
		"page", page.Page,
	)

	b, err := json.Marshal(page)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
