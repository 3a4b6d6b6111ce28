// Package drive wraps the Google Drive v3 files API for list, upload, folder
// creation and delete. The bearer token is supplied by the caller after the
// browser OAuth flow and held in memory only; it does not survive a restart.
package drive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"

	"brandistry/internal/model"
	"brandistry/pkg/metrics"
)

const (
	defaultAPIBase    = "https://www.googleapis.com/drive/v3"
	defaultUploadBase = "https://www.googleapis.com/upload/drive/v3"

	listFields = "nextPageToken, files(id, name, mimeType, thumbnailLink, webViewLink, iconLink, modifiedTime, parents)"
)

var ErrNotAuthenticated = errors.New("drive: not authenticated")

type Client struct {
	apiBase    string
	uploadBase string
	httpClient *http.Client
	logger     *zap.Logger

	mu          sync.RWMutex
	accessToken string
}

func NewClient(logger *zap.Logger) *Client {
	return &Client{
		apiBase:    defaultAPIBase,
		uploadBase: defaultUploadBase,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// WithBaseURLs points the client at different endpoints. Used by tests.
func (c *Client) WithBaseURLs(api, upload string) *Client {
	c.apiBase = api
	c.uploadBase = upload
	return c
}

// SetToken installs the OAuth bearer token obtained by the caller.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.accessToken = token
	c.mu.Unlock()
}

func (c *Client) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken != ""
}

func (c *Client) token() (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.accessToken == "" {
		return "", ErrNotAuthenticated
	}
	return c.accessToken, nil
}

// List returns the files directly inside folderID, folders first.
func (c *Client) List(ctx context.Context, folderID string) ([]model.DriveFile, error) {
	tok, err := c.token()
	if err != nil {
		return nil, err
	}
	if folderID == "" {
		folderID = "root"
	}

	q := url.Values{}
	q.Set("pageSize", "50")
	q.Set("fields", listFields)
	q.Set("q", fmt.Sprintf("'%s' in parents and trashed = false", folderID))
	q.Set("orderBy", "folder, modifiedTime desc")

	var decoded struct {
		Files []model.DriveFile `json:"files"`
	}
	if err := c.do(ctx, "list", http.MethodGet, c.apiBase+"/files?"+q.Encode(), tok, "", nil, &decoded); err != nil {
		return nil, err
	}
	return decoded.Files, nil
}

// Upload streams a file into folderID via the multipart upload endpoint and
// returns the created file's metadata.
func (c *Client) Upload(ctx context.Context, folderID, name, mimeType string, content io.Reader) (model.DriveFile, error) {
	tok, err := c.token()
	if err != nil {
		return model.DriveFile{}, err
	}
	if folderID == "" {
		folderID = "root"
	}

	meta := map[string]any{
		"name":     name,
		"mimeType": mimeType,
		"parents":  []string{folderID},
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return model.DriveFile{}, err
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	metaHeader := textproto.MIMEHeader{}
	metaHeader.Set("Content-Type", "application/json; charset=UTF-8")
	metaPart, err := mw.CreatePart(metaHeader)
	if err != nil {
		return model.DriveFile{}, err
	}
	if _, err := metaPart.Write(metaJSON); err != nil {
		return model.DriveFile{}, err
	}

	fileHeader := textproto.MIMEHeader{}
	if mimeType != "" {
		fileHeader.Set("Content-Type", mimeType)
	}
	filePart, err := mw.CreatePart(fileHeader)
	if err != nil {
		return model.DriveFile{}, err
	}
	if _, err := io.Copy(filePart, content); err != nil {
		return model.DriveFile{}, err
	}
	if err := mw.Close(); err != nil {
		return model.DriveFile{}, err
	}

	var created model.DriveFile
	contentType := "multipart/related; boundary=" + mw.Boundary()
	if err := c.do(ctx, "upload", http.MethodPost, c.uploadBase+"/files?uploadType=multipart", tok, contentType, &body, &created); err != nil {
		return model.DriveFile{}, err
	}
	return created, nil
}

// CreateFolder creates a folder under parentID.
func (c *Client) CreateFolder(ctx context.Context, name, parentID string) (model.DriveFile, error) {
	tok, err := c.token()
	if err != nil {
		return model.DriveFile{}, err
	}
	if parentID == "" {
		parentID = "root"
	}

	meta := map[string]any{
		"name":     name,
		"mimeType": "application/vnd.google-apps.folder",
		"parents":  []string{parentID},
	}
	body, err := json.Marshal(meta)
	if err != nil {
		return model.DriveFile{}, err
	}

	var created model.DriveFile
	if err := c.do(ctx, "create_folder", http.MethodPost, c.apiBase+"/files", tok, "application/json", bytes.NewReader(body), &created); err != nil {
		return model.DriveFile{}, err
	}
	return created, nil
}

// Delete removes a file permanently.
func (c *Client) Delete(ctx context.Context, fileID string) error {
	tok, err := c.token()
	if err != nil {
		return err
	}
	return c.do(ctx, "delete", http.MethodDelete, c.apiBase+"/files/"+url.PathEscape(fileID), tok, "", nil, nil)
}

func (c *Client) do(ctx context.Context, operation, method, endpoint, token, contentType string, body io.Reader, out any) error {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordDriveCallLatency(operation, "error", time.Since(start))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RecordDriveCallLatency(operation, fmt.Sprintf("%d", resp.StatusCode), time.Since(start))
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Warn("drive api error",
			zap.String("operation", operation),
			zap.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("drive api returned %d: %s", resp.StatusCode, string(b))
	}

	metrics.RecordDriveCallLatency(operation, "ok", time.Since(start))

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
