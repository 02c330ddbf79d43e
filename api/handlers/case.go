package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/opsdesk/case-monitor-api/config"
	"github.com/opsdesk/case-monitor-api/databases"
	"github.com/opsdesk/case-monitor-api/models"
	"github.com/opsdesk/case-monitor-api/query"
)

// Case exported for testing purposes
type Case struct {
	DB databases.CaseDatabase
}

// CaseHandler returns all cases, paginated
func (c Case) CaseHandler(w http.ResponseWriter, r *http.Request) {
	Limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		zap.S().Warnf(fmt.Sprintf("limit not set, using default of %v, err: %v", Limit|10, err))
	}
	limit64 := int64(Limit)
	page := getPage(0, r)
	skip64 := int64(page * Limit)
	// newest first, matching the register view
	sort := bson.D{{Key: "_id", Value: -1}}
	dbResp, err := c.DB.Find(context.TODO(), bson.D{}, &options.FindOptions{Limit: &limit64, Skip: &skip64, Sort: sort})
	if err != nil {
		config.ErrorStatus("failed to get cases", http.StatusNotFound, w, err)
		return
	}
	// Because the frontend requires that the data elements inside models.Case exist, if
	// len == 0 then we will just return an empty data object
	if len(dbResp) == 0 {
		dbResp = []models.Case{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CaseByIDHandler returns a case by ID
func (c Case) CaseByIDHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	zap.S().Debugf("case_id: %v", caseID)

	cID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	dbResp, err := c.DB.FindOne(context.Background(), bson.M{"_id": cID})
	if err != nil {
		config.ErrorStatus("failed to get case by ID", http.StatusNotFound, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateCaseHandler creates a case
func (c Case) CreateCaseHandler(w http.ResponseWriter, r *http.Request) {
	var newCase models.Case
	if err := json.NewDecoder(r.Body).Decode(&newCase.Details); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	newCase.ID = primitive.NewObjectID()
	newCase.Details.CreatedAt = primitive.NewDateTimeFromTime(time.Now())
	newCase.Details.UpdatedAt = primitive.NewDateTimeFromTime(time.Now())

	res, err := c.DB.InsertOne(context.Background(), newCase)
	if err != nil {
		config.ErrorStatus("failed to create case", http.StatusInternalServerError, w, err)
		return
	}

	broadcastCaseEvent("case_created", newCase)

	b, err := json.Marshal(map[string]interface{}{"_id": res.Decode()})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// UpdateCaseHandler replaces the details of a case by ID
func (c Case) UpdateCaseHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	cID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var details models.CaseDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	details.UpdatedAt = primitive.NewDateTimeFromTime(time.Now())

	err = c.DB.UpdateOne(context.Background(), bson.M{"_id": cID}, bson.M{"$set": bson.M{"case": details}})
	if err != nil {
		config.ErrorStatus("failed to update case", http.StatusInternalServerError, w, err)
		return
	}

	broadcastCaseEvent("case_updated", models.Case{ID: cID, Details: details})

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf(`{"updated": "%s"}`, caseID)))
}

// DeleteCaseHandler deletes a case by ID
func (c Case) DeleteCaseHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	cID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	err = c.DB.DeleteOne(context.Background(), bson.M{"_id": cID})
	if err != nil {
		config.ErrorStatus("failed to delete case", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf(`{"deleted": "%s"}`, caseID)))
}

// CaseStatusHandler returns the derived decision-pending status of one case
func (c Case) CaseStatusHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	cID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	dbResp, err := c.DB.FindOne(context.Background(), bson.M{"_id": cID})
	if err != nil {
		config.ErrorStatus("failed to get case by ID", http.StatusNotFound, w, err)
		return
	}

	normalized := query.Normalize(*dbResp)
	b, err := json.Marshal(map[string]interface{}{
		"_id":            caseID,
		"caseStatus":     normalized.Details.CaseStatus,
		"decisionStatus": query.DeriveStatus(normalized.Details.Accused, normalized.Details.DecisionPending),
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

type caseStatusUpdate struct {
	CaseStatus          string `json:"caseStatus"`
	InvestigationStatus string `json:"investigationStatus"`
}

// UpdateCaseStatusHandler updates the case status and investigation status of a case
func (c Case) UpdateCaseStatusHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	cID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var update caseStatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if update.CaseStatus == "" {
		config.ErrorStatus("caseStatus is required", http.StatusBadRequest, w, fmt.Errorf("empty caseStatus"))
		return
	}

	set := bson.M{
		"case.caseStatus": update.CaseStatus,
		"case.updatedAt":  primitive.NewDateTimeFromTime(time.Now()),
	}
	// a case leaving investigation has no investigation status anymore
	if update.CaseStatus == models.CaseStatusUnderInvestigation {
		set["case.investigationStatus"] = update.InvestigationStatus
	} else {
		set["case.investigationStatus"] = ""
	}

	err = c.DB.UpdateOne(context.Background(), bson.M{"_id": cID}, bson.M{"$set": set})
	if err != nil {
		config.ErrorStatus("failed to update case status", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf(`{"updated": "%s"}`, caseID)))
}

func getPage(Page int, r *http.Request) int {
	if r.URL.Query().Get("page") == "" {
		zap.S().Warnf("page not set, using default of %v", Page)
	} else {
		var err error
		Page, err = strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil {
			zap.S().Errorf(fmt.Sprintf("error parsing page number: %v", err))
		}
		if Page < 0 {
			zap.S().Warnf(fmt.Sprintf("cannot process page number less than 1. Got: %v", Page))
			return 0
		}
	}
	return Page
}
