package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/opsdesk/case-monitor-api/api/handlers"
	"github.com/opsdesk/case-monitor-api/databases"
	"github.com/opsdesk/case-monitor-api/databases/mocks"
	"github.com/opsdesk/case-monitor-api/models"
)

type MockDatabaseHelper struct {
	mock.Mock
}

// Client provides a mock function.
func (_m *MockDatabaseHelper) Client() databases.ClientHelper {
	ret := _m.Called()

	var r0 databases.ClientHelper
	if rf, ok := ret.Get(0).(func() databases.ClientHelper); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(databases.ClientHelper)
		}
	}

	return r0
}

// Collection provides a mock function.
func (_m *MockDatabaseHelper) Collection(name string) databases.CollectionHelper {
	ret := _m.Called(name)

	var r0 databases.CollectionHelper
	if rf, ok := ret.Get(0).(func(string) databases.CollectionHelper); ok {
		r0 = rf(name)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(databases.CollectionHelper)
		}
	}

	return r0
}

func TestCase_CaseByIDHandlerBadObjectID(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/case/1234", nil)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"case_id": "1234"})
	req.Header.Set("Authorization", "Bearer abc123")

	db := &MockDatabaseHelper{}
	caseDatabase := databases.NewCaseDatabase(db)
	c := handlers.Case{DB: caseDatabase}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(c.CaseByIDHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "failed to get objectID from Hex")
}

func TestCase_CaseByIDHandlerSuccess(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/case/608cafe595eb9dc05379b7f4", nil)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"case_id": "608cafe595eb9dc05379b7f4"})
	req.Header.Set("Authorization", "Bearer abc123")

	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	singleResultHelper := &mocks.SingleResultHelper{}

	singleResultHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Case)
		(*arg).Details.CaseNo = "17/2024"
	})
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.On("Collection", "cases").Return(conn)

	caseDatabase := databases.NewCaseDatabase(db)
	c := handlers.Case{DB: caseDatabase}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(c.CaseByIDHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "17/2024")
}

func TestCase_CaseByIDHandlerFailedToFindOne(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/case/608cafe595eb9dc05379b7f4", nil)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"case_id": "608cafe595eb9dc05379b7f4"})
	req.Header.Set("Authorization", "Bearer abc123")

	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	singleResultHelper := &mocks.SingleResultHelper{}

	singleResultHelper.On("Decode", mock.Anything).Return(errors.New("mocked-error"))
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.On("Collection", "cases").Return(conn)

	caseDatabase := databases.NewCaseDatabase(db)
	c := handlers.Case{DB: caseDatabase}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(c.CaseByIDHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "failed to get case by ID")
}

func TestCase_CaseHandlerSuccess(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/cases?limit=10&page=0", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	cursorHelper := &mocks.CursorHelper{}

	cursorHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.Case)
		*arg = []models.Case{
			{Details: models.CaseDetails{CaseNo: "1/2024"}},
			{Details: models.CaseDetails{CaseNo: "2/2024"}},
		}
	})
	conn.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(cursorHelper, nil)
	db.On("Collection", "cases").Return(conn)

	caseDatabase := databases.NewCaseDatabase(db)
	c := handlers.Case{DB: caseDatabase}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(c.CaseHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "1/2024")
	assert.Contains(t, rr.Body.String(), "2/2024")
}

func TestCase_CaseHandlerPageDoesNotLeakBetweenRequests(t *testing.T) {
	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	cursorHelper := &mocks.CursorHelper{}

	var skips []int64
	cursorHelper.On("Decode", mock.Anything).Return(nil)
	conn.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(cursorHelper, nil).
		Run(func(args mock.Arguments) {
			opts := args.Get(2).(*options.FindOptions)
			skips = append(skips, *opts.Skip)
		})
	db.On("Collection", "cases").Return(conn)

	caseDatabase := databases.NewCaseDatabase(db)
	c := handlers.Case{DB: caseDatabase}
	handler := http.HandlerFunc(c.CaseHandler)

	first, err := http.NewRequest("GET", "/api/v1/cases?limit=10&page=2", nil)
	if err != nil {
		t.Fatal(err)
	}
	first.Header.Set("Authorization", "Bearer abc123")
	handler.ServeHTTP(httptest.NewRecorder(), first)

	// no page param: the default applies, not the previous request's page
	second, err := http.NewRequest("GET", "/api/v1/cases?limit=10", nil)
	if err != nil {
		t.Fatal(err)
	}
	second.Header.Set("Authorization", "Bearer abc123")
	handler.ServeHTTP(httptest.NewRecorder(), second)

	assert.Equal(t, []int64{20, 0}, skips)
}

func TestCase_CaseHandlerFindError(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/cases?limit=10&page=0", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}

	conn.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("mocked-error"))
	db.On("Collection", "cases").Return(conn)

	caseDatabase := databases.NewCaseDatabase(db)
	c := handlers.Case{DB: caseDatabase}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(c.CaseHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "failed to get cases")
}

func TestCase_DeleteCaseHandlerSuccess(t *testing.T) {
	req, err := http.NewRequest("DELETE", "/api/v1/case/608cafe595eb9dc05379b7f4", nil)
	if err != nil {
		t.Fatal(err)
	}

	req = mux.SetURLVars(req, map[string]string{"case_id": "608cafe595eb9dc05379b7f4"})
	req.Header.Set("Authorization", "Bearer abc123")

	caseDatabase := mocks.NewCaseDatabase(t)
	caseDatabase.On("DeleteOne", mock.Anything, mock.Anything).Return(nil)

	c := handlers.Case{DB: caseDatabase}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(c.DeleteCaseHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "deleted")
}

func TestCase_UpdateCaseStatusHandlerRequiresStatus(t *testing.T) {
	req, err := http.NewRequest("PUT", "/api/v1/case/608cafe595eb9dc05379b7f4/status", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Body = http.NoBody

	req = mux.SetURLVars(req, map[string]string{"case_id": "608cafe595eb9dc05379b7f4"})
	req.Header.Set("Authorization", "Bearer abc123")

	c := handlers.Case{DB: mocks.NewCaseDatabase(t)}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(c.UpdateCaseStatusHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
