package ocr

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"tierless/internal/llm"
	"tierless/internal/menu"
)

// pollInterval is how often the workers look for claimable uploads.
const pollInterval = 2 * time.Second

// JobStore is the slice of the upload table the workers need.
type JobStore interface {
	ClaimPendingOCR(ctx context.Context) (*OCRJob, error)
	ClaimPendingParse(ctx context.Context) (*ParseJob, error)
	SaveRawText(ctx context.Context, uploadID int, text string) error
	SetStatus(ctx context.Context, uploadID int, status string, errMsg *string) error
}

// Results persists structuring outcomes; implemented by menu.Service.
type Results interface {
	SaveParsedResult(ctx context.Context, pageID int, parsed *menu.ParsedMenu) error
	MarkParsingFailed(ctx context.Context, pageID int, reason string) error
}

type Service struct {
	jobs    JobStore
	client  llm.Client
	results Results
	httpc   *http.Client
}

func NewService(jobs JobStore, client llm.Client, results Results) *Service {
	return &Service{
		jobs:    jobs,
		client:  client,
		results: results,
		httpc:   &http.Client{Timeout: 60 * time.Second},
	}
}

// --------------------------------------------------
// OCR pass: photo → raw text
// --------------------------------------------------

// ProcessOneOCR picks ONE pending upload and runs it through tesseract.
// Job-level failures are recorded on the row and never returned, so a bad
// upload cannot stall the worker.
func (s *Service) ProcessOneOCR(ctx context.Context) error {
	job, err := s.jobs.ClaimPendingOCR(ctx)
	if err != nil {
		return err
	}
	if job == nil {
		// No pending jobs is NOT an error
		return nil
	}

	resp, err := s.httpc.Get(job.ImageURL)
	if err != nil {
		s.failOCR(ctx, job.UploadID, err.Error())
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.failOCR(ctx, job.UploadID, fmt.Sprintf("photo fetch returned %d", resp.StatusCode))
		return nil
	}

	log.Printf("OCR_FETCHED upload=%d content-type=%s", job.UploadID, resp.Header.Get("Content-Type"))

	tmpFile, err := os.CreateTemp("", "menu-*.img")
	if err != nil {
		s.failOCR(ctx, job.UploadID, err.Error())
		return nil
	}
	defer os.Remove(tmpFile.Name())

	written, err := io.Copy(tmpFile, resp.Body)
	if err != nil || written == 0 {
		s.failOCR(ctx, job.UploadID, "failed to write temp image")
		return nil
	}
	_ = tmpFile.Close()

	log.Printf("OCR_PROCESSING upload=%d file=%s bytes=%d", job.UploadID, tmpFile.Name(), written)

	text, err := ExtractText(tmpFile.Name())
	if err != nil {
		s.failOCR(ctx, job.UploadID, err.Error())
		return nil
	}

	log.Printf("OCR_DONE upload=%d text_length=%d", job.UploadID, len(text))

	return s.jobs.SaveRawText(ctx, job.UploadID, text)
}

func (s *Service) failOCR(ctx context.Context, uploadID int, msg string) {
	_ = s.jobs.SetStatus(ctx, uploadID, menu.StatusFailed, &msg)
}

// --------------------------------------------------
// Parse pass: raw text → structured items
// --------------------------------------------------

// ProcessOneParse picks ONE upload with recognized text and structures it:
// model-based step first, deterministic pipeline as the guaranteed
// fallback. Whitespace-only OCR output fails the job (there is nothing to
// structure and nothing to echo back).
func (s *Service) ProcessOneParse(ctx context.Context) error {
	job, err := s.jobs.ClaimPendingParse(ctx)
	if err != nil {
		return err
	}
	if job == nil {
		return nil
	}

	if strings.TrimSpace(job.RawText) == "" {
		log.Printf("PARSE_EMPTY upload=%d", job.UploadID)
		return s.results.MarkParsingFailed(ctx, job.PageID, "ocr produced no text")
	}

	parsed := menu.StructureText(ctx, s.client, job.RawText)

	log.Printf("PARSE_DONE upload=%d source=%s items=%d", job.UploadID, parsed.Source, len(parsed.Items))

	if err := s.results.SaveParsedResult(ctx, job.PageID, parsed); err != nil {
		return s.results.MarkParsingFailed(ctx, job.PageID, err.Error())
	}

	return nil
}

// --------------------------------------------------
// Worker loops
// --------------------------------------------------

func (s *Service) RunOCRWorker(ctx context.Context) {
	log.Println("OCR worker started")
	s.runLoop(ctx, s.ProcessOneOCR, "OCR")
}

func (s *Service) RunParseWorker(ctx context.Context) {
	log.Println("Parse worker started")
	s.runLoop(ctx, s.ProcessOneParse, "Parse")
}

func (s *Service) runLoop(ctx context.Context, step func(context.Context) error, name string) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("%s worker stopped: %v", name, ctx.Err())
			return
		case <-ticker.C:
			if err := step(ctx); err != nil {
				log.Printf("⚠️  %s worker error: %v", name, err)
			}
		}
	}
}
