package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/opsdesk/case-monitor-api/api/handlers"
	"github.com/opsdesk/case-monitor-api/databases/mocks"
)

func TestAccused_AddAccusedHandlerBadObjectID(t *testing.T) {
	req, err := http.NewRequest("POST", "/api/v1/case/1234/accused", strings.NewReader(`{"name": "Ravi"}`))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"case_id": "1234"})
	req.Header.Set("Authorization", "Bearer abc123")

	a := handlers.Accused{DB: mocks.NewCaseDatabase(t)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(a.AddAccusedHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "failed to get objectID from Hex")
}

func TestAccused_AddAccusedHandlerSuccess(t *testing.T) {
	req, err := http.NewRequest("POST", "/api/v1/case/608cafe595eb9dc05379b7f4/accused",
		strings.NewReader(`{"name": "Ravi Kumar", "address": "12 MG Road"}`))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"case_id": "608cafe595eb9dc05379b7f4"})
	req.Header.Set("Authorization", "Bearer abc123")

	caseDatabase := mocks.NewCaseDatabase(t)
	caseDatabase.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	a := handlers.Accused{DB: caseDatabase}

	rr := httptest.NewRecorder()
	http.HandlerFunc(a.AddAccusedHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), "_id")
}

func TestAccused_UpdateAccusedStatusHandlerRejectsUnknownStatus(t *testing.T) {
	req, err := http.NewRequest("PUT", "/api/v1/case/608cafe595eb9dc05379b7f4/accused/608cafe595eb9dc05379b7f5/status",
		strings.NewReader(`{"status": "Absconding"}`))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{
		"case_id":    "608cafe595eb9dc05379b7f4",
		"accused_id": "608cafe595eb9dc05379b7f5",
	})
	req.Header.Set("Authorization", "Bearer abc123")

	a := handlers.Accused{DB: mocks.NewCaseDatabase(t)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(a.UpdateAccusedStatusHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid accused status")
}

func TestAccused_UpdateAccusedStatusHandlerSuccess(t *testing.T) {
	req, err := http.NewRequest("PUT", "/api/v1/case/608cafe595eb9dc05379b7f4/accused/608cafe595eb9dc05379b7f5/status",
		strings.NewReader(`{"status": "Arrested", "arrestedDate": "2024-03-10"}`))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{
		"case_id":    "608cafe595eb9dc05379b7f4",
		"accused_id": "608cafe595eb9dc05379b7f5",
	})
	req.Header.Set("Authorization", "Bearer abc123")

	caseDatabase := mocks.NewCaseDatabase(t)
	caseDatabase.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	a := handlers.Accused{DB: caseDatabase}

	rr := httptest.NewRecorder()
	http.HandlerFunc(a.UpdateAccusedStatusHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "updated")
}

func TestAccused_DeleteAccusedHandlerSuccess(t *testing.T) {
	req, err := http.NewRequest("DELETE", "/api/v1/case/608cafe595eb9dc05379b7f4/accused/608cafe595eb9dc05379b7f5", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{
		"case_id":    "608cafe595eb9dc05379b7f4",
		"accused_id": "608cafe595eb9dc05379b7f5",
	})
	req.Header.Set("Authorization", "Bearer abc123")

	caseDatabase := mocks.NewCaseDatabase(t)
	caseDatabase.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	a := handlers.Accused{DB: caseDatabase}

	rr := httptest.NewRecorder()
	http.HandlerFunc(a.DeleteAccusedHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "deleted")
}
