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

// Accused exported for testing purposes
type Accused struct {
	DB databases.CaseDatabase
}

// AddAccusedHandler appends an accused sub-record to a case
func (a Accused) AddAccusedHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	cID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var accused models.Accused
	if err := json.NewDecoder(r.Body).Decode(&accused); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	accused.ID = primitive.NewObjectID()
	if accused.Status == "" {
		accused.Status = models.AccusedDecisionPending
	}

	err = a.DB.UpdateOne(context.Background(), bson.M{"_id": cID}, bson.M{
		"$push": bson.M{"case.accused": accused},
		"$set":  bson.M{"case.updatedAt": primitive.NewDateTimeFromTime(time.Now())},
	})
	if err != nil {
		config.ErrorStatus("failed to add accused", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(map[string]interface{}{"_id": accused.ID})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// UpdateAccusedHandler replaces an accused sub-record on a case
func (a Accused) UpdateAccusedHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]
	accusedID := mux.Vars(r)["accused_id"]

	cID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}
	aID, err := primitive.ObjectIDFromHex(accusedID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var accused models.Accused
	if err := json.NewDecoder(r.Body).Decode(&accused); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	accused.ID = aID

	err = a.DB.UpdateOne(context.Background(),
		bson.M{"_id": cID, "case.accused._id": aID},
		bson.M{"$set": bson.M{
			"case.accused.$": accused,
			"case.updatedAt": primitive.NewDateTimeFromTime(time.Now()),
		}})
	if err != nil {
		config.ErrorStatus("failed to update accused", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf(`{"updated": "%s"}`, accusedID)))
}

// DeleteAccusedHandler removes an accused sub-record from a case
func (a Accused) DeleteAccusedHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]
	accusedID := mux.Vars(r)["accused_id"]

	cID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}
	aID, err := primitive.ObjectIDFromHex(accusedID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	err = a.DB.UpdateOne(context.Background(), bson.M{"_id": cID}, bson.M{
		"$pull": bson.M{"case.accused": bson.M{"_id": aID}},
		"$set":  bson.M{"case.updatedAt": primitive.NewDateTimeFromTime(time.Now())},
	})
	if err != nil {
		config.ErrorStatus("failed to delete accused", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf(`{"deleted": "%s"}`, accusedID)))
}

type accusedStatusUpdate struct {
	Status       string `json:"status"`
	ArrestedDate string `json:"arrestedDate"`
}

// UpdateAccusedStatusHandler updates the arrest decision for one accused
func (a Accused) UpdateAccusedStatusHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]
	accusedID := mux.Vars(r)["accused_id"]

	cID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}
	aID, err := primitive.ObjectIDFromHex(accusedID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var update accusedStatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	switch update.Status {
	case models.AccusedArrested, models.AccusedNotArrested, models.AccusedDecisionPending:
	default:
		config.ErrorStatus("invalid accused status", http.StatusBadRequest, w, fmt.Errorf("got %q", update.Status))
		return
	}

	set := bson.M{
		"case.accused.$.status": update.Status,
		"case.updatedAt":        primitive.NewDateTimeFromTime(time.Now()),
	}
	if update.Status == models.AccusedArrested && update.ArrestedDate != "" {
		set["case.accused.$.arrestedDate"] = update.ArrestedDate
	}

	err = a.DB.UpdateOne(context.Background(),
		bson.M{"_id": cID, "case.accused._id": aID},
		bson.M{"$set": set})
	if err != nil {
		config.ErrorStatus("failed to update accused status", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf(`{"updated": "%s"}`, accusedID)))
}
