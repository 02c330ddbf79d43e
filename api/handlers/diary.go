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

// Diary exported for testing purposes
type Diary struct {
	DB databases.CaseDatabase
}

// AddDiaryEntryHandler appends a case diary entry to a case
func (d Diary) AddDiaryEntryHandler(w http.ResponseWriter, r *http.Request) {
	caseID := mux.Vars(r)["case_id"]

	cID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var entry models.DiaryEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if entry.DiaryNo == "" {
		config.ErrorStatus("diaryNo is required", http.StatusBadRequest, w, fmt.Errorf("empty diaryNo"))
		return
	}

	err = d.DB.UpdateOne(context.Background(), bson.M{"_id": cID}, bson.M{
		"$push": bson.M{"case.caseDiaries": entry},
		"$set":  bson.M{"case.updatedAt": primitive.NewDateTimeFromTime(time.Now())},
	})
	if err != nil {
		config.ErrorStatus("failed to add diary entry", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	w.Write([]byte(fmt.Sprintf(`{"added": "%s"}`, entry.DiaryNo)))
}
