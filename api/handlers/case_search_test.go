package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/opsdesk/case-monitor-api/api/handlers"
	"github.com/opsdesk/case-monitor-api/databases/mocks"
	"github.com/opsdesk/case-monitor-api/models"
	"github.com/opsdesk/case-monitor-api/query"
)

func searchRequest(t *testing.T, body string) *http.Request {
	req, err := http.NewRequest("POST", "/api/v1/cases/search", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")
	return req
}

func TestSearch_CaseSearchHandlerFiltersAndPaginates(t *testing.T) {
	caseDatabase := mocks.NewCaseDatabase(t)
	caseDatabase.On("Find", mock.Anything, mock.Anything, mock.Anything).Return([]models.Case{
		{Details: models.CaseDetails{CaseNo: "9/2024", PoliceStation: "Central"}},
		{Details: models.CaseDetails{CaseNo: "8/2024", PoliceStation: "North"}},
		{Details: models.CaseDetails{CaseNo: "7/2024", PoliceStation: "Central"}},
	}, nil)

	s := handlers.Search{DB: caseDatabase, Engine: query.New()}

	rr := httptest.NewRecorder()
	req := searchRequest(t, `{"filter": {"policeStation": "central"}, "page": 1, "pageSize": 10}`)
	http.HandlerFunc(s.CaseSearchHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var page query.Page
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &page))
	assert.Equal(t, 2, page.TotalCount)
	assert.Equal(t, 1, page.TotalPages)
	assert.Len(t, page.Results, 2)
	// snapshot order is preserved
	assert.Equal(t, "9/2024", page.Results[0].Case.Details.CaseNo)
	assert.Equal(t, "7/2024", page.Results[1].Case.Details.CaseNo)
}

func TestSearch_CaseSearchHandlerDerivedStatus(t *testing.T) {
	caseDatabase := mocks.NewCaseDatabase(t)
	caseDatabase.On("Find", mock.Anything, mock.Anything, mock.Anything).Return([]models.Case{
		{Details: models.CaseDetails{
			CaseNo:  "4/2023",
			Accused: []models.Accused{{Status: models.AccusedDecisionPending}},
		}},
		{Details: models.CaseDetails{
			CaseNo:  "5/2023",
			Accused: []models.Accused{{Status: models.AccusedArrested}},
		}},
	}, nil)

	s := handlers.Search{DB: caseDatabase, Engine: query.New()}

	rr := httptest.NewRecorder()
	req := searchRequest(t, `{"filter": {"decisionPendingStatus": "Decision pending"}}`)
	http.HandlerFunc(s.CaseSearchHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var page query.Page
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &page))
	assert.Equal(t, 1, page.TotalCount)
	assert.Equal(t, "4/2023", page.Results[0].Case.Details.CaseNo)
	assert.Equal(t, query.StatusDecisionPending, page.Results[0].DecisionStatus)
}

func TestSearch_CaseSearchHandlerBadBody(t *testing.T) {
	s := handlers.Search{DB: mocks.NewCaseDatabase(t), Engine: query.New()}

	rr := httptest.NewRecorder()
	req := searchRequest(t, `{not json`)
	http.HandlerFunc(s.CaseSearchHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "failed to decode request body")
}

func TestSearch_CaseSearchHandlerFindError(t *testing.T) {
	caseDatabase := mocks.NewCaseDatabase(t)
	caseDatabase.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("mocked-error"))

	s := handlers.Search{DB: caseDatabase, Engine: query.New()}

	rr := httptest.NewRecorder()
	req := searchRequest(t, `{"filter": {}}`)
	http.HandlerFunc(s.CaseSearchHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "failed to get cases")
}
