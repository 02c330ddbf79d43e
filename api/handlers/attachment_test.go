package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opsdesk/case-monitor-api/api/handlers"
)

func TestAttachment_GenerateSignature(t *testing.T) {
	os.Setenv("CLOUDINARY_UPLOAD_PRESET", "case-attachments")
	os.Setenv("CLOUDINARY_API_SECRET", "test-secret")

	req, err := http.NewRequest("GET", "/api/v1/attachments/generate-signature", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	a := handlers.Attachment{}

	rr := httptest.NewRecorder()
	http.HandlerFunc(a.GenerateSignature).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["timestamp"])
	assert.Len(t, resp["signature"], 40) // hex encoded sha1
}

func TestAttachment_UploadHandlerRequiresMultipart(t *testing.T) {
	req, err := http.NewRequest("POST", "/api/v1/attachments/upload", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	a := handlers.Attachment{}

	rr := httptest.NewRecorder()
	http.HandlerFunc(a.UploadHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
