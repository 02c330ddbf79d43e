package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/opsdesk/case-monitor-api/config"
	"github.com/opsdesk/case-monitor-api/databases"
	"github.com/opsdesk/case-monitor-api/models"
)

// User exported for testing purposes
type User struct {
	DB databases.UserDatabase
}

// UserCreateHandler creates a user account for a register clerk or supervisor
func (u User) UserCreateHandler(w http.ResponseWriter, r *http.Request) {
	var details models.UserDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	details.Email = strings.TrimSpace(strings.ToLower(details.Email))
	if details.Email == "" || details.Password == "" {
		config.ErrorStatus("email and password required", http.StatusBadRequest, w, fmt.Errorf("missing credentials"))
		return
	}

	existing, err := u.DB.Find(context.Background(), bson.M{"user.email": details.Email})
	if err == nil && len(existing) > 0 {
		config.ErrorStatus("email already in use", http.StatusConflict, w, fmt.Errorf("duplicate email"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(details.Password), bcrypt.DefaultCost)
	if err != nil {
		config.ErrorStatus("failed to hash password", http.StatusInternalServerError, w, err)
		return
	}
	details.Password = string(hashed)
	details.CreatedAt = primitive.NewDateTimeFromTime(time.Now())
	details.UpdatedAt = primitive.NewDateTimeFromTime(time.Now())

	newUser := models.User{
		ID:      primitive.NewObjectID().Hex(),
		Details: details,
	}

	res, err := u.DB.InsertOne(context.Background(), newUser)
	if err != nil {
		config.ErrorStatus("failed to create user", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(map[string]interface{}{"_id": res.Decode()})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}
