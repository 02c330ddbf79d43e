package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/opsdesk/case-monitor-api/config"
	"github.com/opsdesk/case-monitor-api/databases"
	"github.com/opsdesk/case-monitor-api/models"
)

// Report exported for testing purposes
type Report struct {
	DB databases.CaseDatabase
}

type addReportRequest struct {
	// Side is "sp" or "dsp"
	Side  string             `json:"side"`
	Entry models.ReportEntry `json:"entry"`
}

// AddReportHandler appends a report entry to the SP or DSP report list of a case
func (rep Report) AddReportHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	cID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var req addReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	var field string
	switch req.Side {
	case "sp":
		field = "case.reports.spReports"
	case "dsp":
		field = "case.reports.dspReports"
	default:
		config.ErrorStatus("side must be sp or dsp", http.StatusBadRequest, w, fmt.Errorf("got %q", req.Side))
		return
	}

	err = rep.DB.UpdateOne(context.Background(), bson.M{"_id": cID}, bson.M{
		"$push": bson.M{field: req.Entry},
		"$set":  bson.M{"case.updatedAt": primitive.NewDateTimeFromTime(time.Now())},
	})
	if err != nil {
		config.ErrorStatus("failed to add report", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	w.Write([]byte(fmt.Sprintf(`{"added": "%s"}`, req.Side)))
}

// reportDateFields are the flat report dates a register clerk may set directly
var reportDateFields = map[string]string{
	"supervision":      "case.reports.supervision",
	"fpr":              "case.reports.fpr",
	"finalOrder":       "case.reports.finalOrder",
	"finalChargesheet": "case.reports.finalChargesheet",
}

// UpdateReportDatesHandler sets one or more of the flat report dates of a case
func (rep Report) UpdateReportDatesHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	cID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var dates map[string]string
	if err := json.NewDecoder(r.Body).Decode(&dates); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	set := bson.M{"case.updatedAt": primitive.NewDateTimeFromTime(time.Now())}
	for name, date := range dates {
		field, ok := reportDateFields[name]
		if !ok {
			config.ErrorStatus("unknown report field", http.StatusBadRequest, w, fmt.Errorf("got %q", name))
			return
		}
		set[field] = date
	}

	err = rep.DB.UpdateOne(context.Background(), bson.M{"_id": cID}, bson.M{"$set": set})
	if err != nil {
		config.ErrorStatus("failed to update report dates", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf(`{"updated": "%s"}`, caseID)))
}
