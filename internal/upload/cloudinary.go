package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

// cloudinaryUploader posts unsigned uploads to the Cloudinary image API and
// returns the hosted secure URL.
type cloudinaryUploader struct {
	cloudName    string
	uploadPreset string
	client       *http.Client
	log          *zap.Logger
}

func NewCloudinaryUploader(config utils.CloudinaryConfig, log *zap.Logger) Uploader {
	return &cloudinaryUploader{
		cloudName:    config.CloudName,
		uploadPreset: config.UploadPreset,
		client:       &http.Client{Timeout: 30 * time.Second},
		log:          log.With(zap.String("service", "upload")),
	}
}

type cloudinaryResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (u *cloudinaryUploader) UploadAvatar(ctx context.Context, filename string, data []byte) (string, error) {
	if u.cloudName == "" || u.uploadPreset == "" {
		return "", fmt.Errorf("image upload is not configured")
	}

	normalized, err := normalizeAvatar(data)
	if err != nil {
		return "", err
	}

	body, contentType, err := buildMultipart(filename, normalized, u.uploadPreset)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", u.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := u.client.Do(req)
	if err != nil {
		u.log.Error("Avatar upload failed", zap.Error(err))
		return "", fmt.Errorf("upload avatar: %w", err)
	}
	defer resp.Body.Close()

	var result cloudinaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		u.log.Error("Avatar upload rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("message", result.Error.Message),
		)
		return "", fmt.Errorf("upload avatar: %s", result.Error.Message)
	}

	u.log.Info("Avatar uploaded", zap.String("url", result.SecureURL))
	return result.SecureURL, nil
}

func buildMultipart(filename string, data []byte, preset string) (io.Reader, string, error) {
	buf := new(bytes.Buffer)
	writer := multipart.NewWriter(buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", fmt.Errorf("write form file: %w", err)
	}

	if err := writer.WriteField("upload_preset", preset); err != nil {
		return nil, "", fmt.Errorf("write upload preset: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}

	return buf, writer.FormDataContentType(), nil
}
