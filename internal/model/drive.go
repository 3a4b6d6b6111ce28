package model

// DriveFile mirrors the field set requested from the Drive v3 files API.
type DriveFile struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	MimeType      string `json:"mimeType"`
	ThumbnailLink string `json:"thumbnailLink,omitempty"`
	WebViewLink   string `json:"webViewLink,omitempty"`
	IconLink      string `json:"iconLink,omitempty"`
	ModifiedTime  string `json:"modifiedTime,omitempty"`
}
