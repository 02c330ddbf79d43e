package scheduler

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/opsdesk/case-monitor-api/databases"
	"github.com/opsdesk/case-monitor-api/models"
	"github.com/opsdesk/case-monitor-api/query"
	templates "github.com/opsdesk/case-monitor-api/templates/html"
)

// staleWarrantDays flags warrants prayed this long ago without execution
const staleWarrantDays = "90"

// Scheduler handles periodic background jobs for the case register
type Scheduler struct {
	cron   *cron.Cron
	CaseDB databases.CaseDatabase
	UserDB databases.UserDatabase
	engine *query.Engine
}

// NewScheduler creates a new scheduler instance
func NewScheduler(caseDB databases.CaseDatabase, userDB databases.UserDatabase) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		CaseDB: caseDB,
		UserDB: userDB,
		engine: query.New(),
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Send the pending-case digest daily at 3 AM UTC
	_, err := s.cron.AddFunc("0 3 * * *", s.sendPendingDigest)
	if err != nil {
		zap.S().Errorw("failed to register pending digest job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("case register scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("case register scheduler stopped")
}

// sendPendingDigest mails supervisors a summary of cases that still carry a
// pending arrest decision and warrants that have gone stale.
func (s *Scheduler) sendPendingDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cases, err := s.CaseDB.Find(ctx, bson.D{})
	if err != nil {
		zap.S().Errorw("failed to load cases for digest", "error", err)
		return
	}

	lines := s.DigestLines(cases)
	if len(lines) == 0 {
		zap.S().Info("pending digest: nothing to report")
		return
	}

	supervisors, err := s.UserDB.Find(ctx, bson.M{"user.isAdmin": true})
	if err != nil {
		zap.S().Errorw("failed to load supervisors for digest", "error", err)
		return
	}

	body := strings.Join(lines, "\n")
	htmlBody := templates.RenderPendingDigestEmail(lines)
	for _, supervisor := range supervisors {
		sendDigestEmail(supervisor.Details.Name, supervisor.Details.Email, body, htmlBody)
	}
	zap.S().Infow("pending digest sent",
		"lines", len(lines),
		"recipients", len(supervisors),
	)
}

// DigestLines builds the digest lines for the given snapshot of cases.
// Exported so the digest content is testable without cron or sendgrid.
func (s *Scheduler) DigestLines(cases []models.Case) []string {
	pending := s.engine.Run(cases, models.CaseFilter{
		DecisionPendingStatus: query.StatusDecisionPending,
	})
	stale := s.engine.Run(cases, models.CaseFilter{
		Warrant: models.LegalProcessFilter{
			ReceivedNotExecuted: true,
			IssuedOverDays:      staleWarrantDays,
		},
	})

	var lines []string
	for _, res := range pending {
		d := res.Case.Details
		lines = append(lines, fmt.Sprintf("Case %s (%s): arrest decision pending for all accused", d.CaseNo, d.PoliceStation))
	}
	for _, res := range stale {
		d := res.Case.Details
		lines = append(lines, fmt.Sprintf("Case %s (%s): warrant outstanding for over %s days against %d accused",
			d.CaseNo, d.PoliceStation, staleWarrantDays, len(res.MatchedAccused)))
	}
	return lines
}

func sendDigestEmail(toName, toEmail, plainText, htmlContent string) {
	from := mail.NewEmail("Case Monitor", "no-reply@case-monitor.example.org")
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, "Daily pending case digest", to, plainText, htmlContent)
	client := sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY"))
	response, err := client.Send(message)
	if err != nil {
		zap.S().Errorw("failed to send digest email", "error", err, "to", toEmail)
		return
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body)
	}
}
