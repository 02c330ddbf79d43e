package handlers

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/opsdesk/case-monitor-api/config"
	"github.com/opsdesk/case-monitor-api/models"
)

// maxAttachmentSize bounds uploaded scans and court documents
const maxAttachmentSize = 10 << 20

// Attachment handles file-store related requests
type Attachment struct{}

// UploadHandler uploads a document scan to the file store and returns its reference
func (a Attachment) UploadHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAttachmentSize); err != nil {
		config.ErrorStatus("failed to parse multipart form", http.StatusBadRequest, w, err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		config.ErrorStatus("failed to read file from form", http.StatusBadRequest, w, err)
		return
	}
	defer file.Close()

	cld, err := cloudinary.New()
	if err != nil {
		config.ErrorStatus("failed to init file store client", http.StatusInternalServerError, w, err)
		return
	}

	resp, err := cld.Upload.Upload(r.Context(), file, uploader.UploadParams{
		Folder: "case-attachments",
	})
	if err != nil {
		config.ErrorStatus("failed to upload file", http.StatusInternalServerError, w, err)
		return
	}

	ref := models.FileRef{
		PublicID:         resp.PublicID,
		SecureURL:        resp.SecureURL,
		OriginalFilename: header.Filename,
	}
	b, err := json.Marshal(ref)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// GenerateSignature generates a signature for direct browser uploads
func (a Attachment) GenerateSignature(w http.ResponseWriter, r *http.Request) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	uploadPreset := os.Getenv("CLOUDINARY_UPLOAD_PRESET")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	h := hmac.New(sha1.New, []byte(apiSecret))
	h.Write([]byte("timestamp=" + timestamp + "&upload_preset=" + uploadPreset))
	signature := hex.EncodeToString(h.Sum(nil))

	response := map[string]string{
		"timestamp": timestamp,
		"signature": signature,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
