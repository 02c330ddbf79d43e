package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/opsdesk/case-monitor-api/api"
	"github.com/opsdesk/case-monitor-api/api/scheduler"
	"github.com/opsdesk/case-monitor-api/config"
	"github.com/opsdesk/case-monitor-api/databases"
	"github.com/opsdesk/case-monitor-api/models"
	"github.com/opsdesk/case-monitor-api/query"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router   *mux.Router
	DB       databases.CollectionHelper
	Config   config.Config
	dbHelper databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for middleware
	m := api.MiddlewareDB{DB: databases.NewUserDatabase(a.dbHelper)}
	m.SetupGoGuardian()

	r := mux.NewRouter()
	r.Use(api.LoggingMiddleware)

	u := User{DB: databases.NewUserDatabase(a.dbHelper)}
	c := Case{DB: databases.NewCaseDatabase(a.dbHelper)}
	s := Search{DB: databases.NewCaseDatabase(a.dbHelper), Engine: query.New()}
	acc := Accused{DB: databases.NewCaseDatabase(a.dbHelper)}
	d := Diary{DB: databases.NewCaseDatabase(a.dbHelper)}
	rep := Report{DB: databases.NewCaseDatabase(a.dbHelper)}
	att := Attachment{}
	adm := Admin{DB: databases.NewCaseDatabase(a.dbHelper), UserDB: databases.NewUserDatabase(a.dbHelper)}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/auth/token", api.Middleware(http.HandlerFunc(m.CreateToken))).Methods("POST")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")
	apiCreate.Handle("/auth/admin-login", http.HandlerFunc(adm.AdminLoginHandler)).Methods("POST")

	apiCreate.Handle("/user/create-user", http.HandlerFunc(u.UserCreateHandler)).Methods("POST")

	apiCreate.Handle("/case", api.Middleware(http.HandlerFunc(c.CreateCaseHandler))).Methods("POST")
	apiCreate.Handle("/case/{case_id}", api.Middleware(http.HandlerFunc(c.CaseByIDHandler))).Methods("GET")
	apiCreate.Handle("/case/{case_id}", api.Middleware(http.HandlerFunc(c.UpdateCaseHandler))).Methods("PUT")
	apiCreate.Handle("/case/{case_id}", api.Middleware(http.HandlerFunc(c.DeleteCaseHandler))).Methods("DELETE")
	apiCreate.Handle("/case/{case_id}/status", api.Middleware(http.HandlerFunc(c.CaseStatusHandler))).Methods("GET")
	apiCreate.Handle("/case/{case_id}/status", api.Middleware(http.HandlerFunc(c.UpdateCaseStatusHandler))).Methods("PUT")
	apiCreate.Handle("/cases", api.Middleware(http.HandlerFunc(c.CaseHandler))).Methods("GET")
	apiCreate.Handle("/cases/search", api.TimeoutMiddleware(30*time.Second)(api.Middleware(http.HandlerFunc(s.CaseSearchHandler)))).Methods("POST")
	apiCreate.Handle("/cases/stats", http.HandlerFunc(adm.CaseStatsHandler)).Methods("GET")

	apiCreate.Handle("/case/{case_id}/accused", api.Middleware(http.HandlerFunc(acc.AddAccusedHandler))).Methods("POST")
	apiCreate.Handle("/case/{case_id}/accused/{accused_id}", api.Middleware(http.HandlerFunc(acc.UpdateAccusedHandler))).Methods("PUT")
	apiCreate.Handle("/case/{case_id}/accused/{accused_id}", api.Middleware(http.HandlerFunc(acc.DeleteAccusedHandler))).Methods("DELETE")
	apiCreate.Handle("/case/{case_id}/accused/{accused_id}/status", api.Middleware(http.HandlerFunc(acc.UpdateAccusedStatusHandler))).Methods("PUT")

	apiCreate.Handle("/case/{case_id}/diary", api.Middleware(http.HandlerFunc(d.AddDiaryEntryHandler))).Methods("POST")
	apiCreate.Handle("/case/{case_id}/reports", api.Middleware(http.HandlerFunc(rep.AddReportHandler))).Methods("POST")
	apiCreate.Handle("/case/{case_id}/reports/dates", api.Middleware(http.HandlerFunc(rep.UpdateReportDatesHandler))).Methods("PUT")

	apiCreate.Handle("/attachments/upload", api.Middleware(http.HandlerFunc(att.UploadHandler))).Methods("POST")
	apiCreate.Handle("/attachments/generate-signature", api.Middleware(http.HandlerFunc(att.GenerateSignature))).Methods("GET")

	apiCreate.HandleFunc("/cases/subscribe", HandleCaseEventsWebSocket).Methods("GET")

	a.Router = r
	return r
}

// Initialize sets up the database connection, background jobs and the router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("case-monitor-api has connected to the database")

	// start the pending-case digest scheduler
	s := scheduler.NewScheduler(
		databases.NewCaseDatabase(a.dbHelper),
		databases.NewUserDatabase(a.dbHelper),
	)
	s.Start()

	// initialize api router
	a.Router = a.New()
	return nil
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
