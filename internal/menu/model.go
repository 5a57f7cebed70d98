package menu

import "time"

// Upload status machine. One upload per page; retries rewind to
// MENU_UPLOADED.
const (
	StatusUploaded      = "MENU_UPLOADED"
	StatusOCRProcessing = "OCR_PROCESSING"
	StatusOCRDone       = "OCR_DONE"
	StatusParsing       = "PARSING"
	StatusParsed        = "PARSED"
	StatusFailed        = "FAILED"
)

// Structuring sources recorded on a parsed upload.
const (
	SourceModel  = "llm"
	SourceParser = "parser"
)

// Item is one structured menu record, whichever path produced it.
// Price is nil when no numeric price was recovered; Note carries the
// raw-text preview when the terminal fallback ran.
type Item struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Section     string   `json:"section,omitempty"`
	Description string   `json:"description,omitempty"`
	Note        string   `json:"note,omitempty"`
	Position    int      `json:"position"`
}

// ParsedMenu is the result of structuring one OCR text.
type ParsedMenu struct {
	Items  []Item `json:"items"`
	Source string `json:"source"`
	// RawText holds the normalized OCR text for diagnostics when the
	// deterministic fallback produced the items.
	RawText string `json:"raw_text,omitempty"`
}

// Upload represents one menu photo moving through the OCR/parse machine.
type Upload struct {
	ID        int       `json:"id"`
	PageID    int       `json:"page_id"`
	ImageURL  string    `json:"image_url"`
	Status    string    `json:"status"`
	Error     *string   `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UploadStatus is the polling payload for the dashboard.
type UploadStatus struct {
	Status string  `json:"status"`
	Reason *string `json:"reason,omitempty"`
}
