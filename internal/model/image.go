package model

// Image describes an uploaded portfolio image held in object storage.
// URL is the API path serving it and can be used as a client's image_url.
type Image struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}
