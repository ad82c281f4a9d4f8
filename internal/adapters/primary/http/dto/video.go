package dto

// CreateVideoRequest carries the single-record create payload. Field names
// match the form client's JSON exactly.
type CreateVideoRequest struct {
	Name           string `json:"name"`
	WebsiteURL     string `json:"websiteUrl"`
	VideoURL       string `json:"videoUrl"`
	TimeFullScreen int    `json:"timeFullScreen"`
	Image          string `json:"image"`
}

type CreateVideoResponse struct {
	Link string `json:"link"`
}

type BulkGenerateResponse struct {
	Links        []string `json:"links"`
	DownloadLink string   `json:"downloadLink"`
}

type CompositeRequest struct {
	BaseImageURL   string `json:"baseImageUrl" binding:"required"`
	WebcamImageURL string `json:"webcamImageUrl" binding:"required"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
