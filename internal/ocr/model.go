package ocr

// OCRJob is a claimed upload waiting for text recognition.
type OCRJob struct {
	UploadID int
	PageID   int
	ImageURL string
}

// ParseJob is a claimed upload whose text is waiting for structuring.
type ParseJob struct {
	UploadID int
	PageID   int
	RawText  string
}
