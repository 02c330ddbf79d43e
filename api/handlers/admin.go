package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/opsdesk/case-monitor-api/api"
	"github.com/opsdesk/case-monitor-api/config"
	"github.com/opsdesk/case-monitor-api/databases"
	"github.com/opsdesk/case-monitor-api/query"
)

// Admin represents the admin handler
type Admin struct {
	DB     databases.CaseDatabase
	UserDB databases.UserDatabase
}

type adminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLoginHandler authenticates a supervisor account by email and password
// and issues the admin JWT consumed by the stats endpoint
func (h Admin) AdminLoginHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		config.ErrorStatus("email and password required", http.StatusBadRequest, w, fmt.Errorf("missing credentials"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	users, err := h.UserDB.Find(ctx, bson.M{"user.email": email})
	if err != nil || len(users) == 0 {
		config.ErrorStatus("invalid credentials", http.StatusUnauthorized, w, fmt.Errorf("no matching email"))
		return
	}
	user := users[0]
	if !user.Details.IsAdmin {
		config.ErrorStatus("invalid credentials", http.StatusUnauthorized, w, fmt.Errorf("not a supervisor account"))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Details.Password), []byte(req.Password)); err != nil {
		config.ErrorStatus("invalid credentials", http.StatusUnauthorized, w, err)
		return
	}

	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtSecret) == 0 {
		config.ErrorStatus("server misconfigured", http.StatusInternalServerError, w, fmt.Errorf("JWT_SECRET not configured"))
		return
	}

	claims := jwt.MapClaims{
		"sub":     user.ID,
		"email":   email,
		"isAdmin": true,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
	if err != nil {
		config.ErrorStatus("failed to sign token", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(map[string]string{
		"token": signed,
		"_id":   user.ID,
		"email": email,
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

type caseStatsResponse struct {
	TotalCases      int            `json:"totalCases"`
	ByDerivedStatus map[string]int `json:"byDerivedStatus"`
	ByCaseStatus    map[string]int `json:"byCaseStatus"`
	ByPoliceStation map[string]int `json:"byPoliceStation"`
}

// CaseStatsHandler returns register-wide counts for the admin dashboard.
// Access requires an admin JWT rather than the regular bearer token.
func (h Admin) CaseStatsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := verifyAdminToken(r); err != nil {
		config.ErrorStatus("unauthorized", http.StatusUnauthorized, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	cases, err := h.DB.Find(ctx, bson.D{})
	if err != nil {
		config.ErrorStatus("failed to get cases", http.StatusInternalServerError, w, err)
		return
	}

	stats := caseStatsResponse{
		TotalCases:      len(cases),
		ByDerivedStatus: map[string]int{},
		ByCaseStatus:    map[string]int{},
		ByPoliceStation: map[string]int{},
	}
	for _, c := range cases {
		c = query.Normalize(c)
		d := c.Details
		stats.ByDerivedStatus[query.DeriveStatus(d.Accused, d.DecisionPending)]++
		stats.ByCaseStatus[d.CaseStatus]++
		stats.ByPoliceStation[d.PoliceStation]++
	}

	b, err := json.Marshal(stats)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// verifyAdminToken checks the Authorization header for a valid admin JWT
func verifyAdminToken(r *http.Request) error {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return fmt.Errorf("missing bearer token")
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtSecret) == 0 {
		return fmt.Errorf("JWT_SECRET not configured")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil {
		return err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return fmt.Errorf("invalid token")
	}
	if isAdmin, _ := claims["isAdmin"].(bool); !isAdmin {
		return fmt.Errorf("token is not an admin token")
	}
	return nil
}
