package summarize

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aissummarizer/core/internal/models"
	"github.com/aissummarizer/core/internal/modules/document"
	"github.com/aissummarizer/core/internal/pkg/pagination"
	"github.com/aissummarizer/core/internal/pkg/response"
)

type Service struct {
	db     *gorm.DB
	client Client
	logger *zap.Logger
}

func NewService(db *gorm.DB, client Client, logger *zap.Logger) *Service {
	return &Service{db: db, client: client, logger: logger}
}

// Result is the in-memory outcome of one summarization, returned to the
// caller independently of persistence.
type Result struct {
	ID           string   `json:"id"`
	Summary      string   `json:"summary"`
	DocumentType string   `json:"document_type"`
	SummaryType  string   `json:"summary_type"`
	Metadata     Metadata `json:"metadata"`
}

var mimeByFormat = map[document.Format]string{
	document.FormatText:      "text/plain",
	document.FormatPDF:       "application/pdf",
	document.FormatWord:      "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	document.FormatSlideshow: "application/vnd.openxmlformats-officedocument.presentationml.presentation",
}

// Summarize runs the full pipeline for an uploaded file: resolve the format,
// record the upload, extract, prompt the model, and persist the linked
// summarization records.
func (s *Service) Summarize(ctx context.Context, data []byte, filename, userID string, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: file is empty", document.ErrInvalidInput)
	}

	extractor, err := document.Resolve(filename)
	if err != nil {
		return nil, err
	}
	format := extractor.Format()

	upload := models.DocumentUploadModel{
		UserID:           userID,
		DocumentType:     string(format),
		OriginalFilename: filename,
		FileExtension:    format.Extension(),
		MimeType:         mimeByFormat[format],
		FileSize:         int64(len(data)),
	}
	if err := s.db.WithContext(ctx).Create(&upload).Error; err != nil {
		return nil, err
	}

	started := time.Now()
	content, err := extractor.Extract(data)
	if err != nil {
		if uerr := s.db.WithContext(ctx).Model(&upload).Updates(map[string]any{
			"extraction_ok":    false,
			"extraction_error": err.Error(),
		}).Error; uerr != nil {
			s.logger.Warn("failed to record extraction error",
				zap.String("upload_id", upload.ID), zap.Error(uerr))
		}
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&upload).Update("extraction_ok", true).Error; err != nil {
		return nil, err
	}

	prompt := BuildPrompt(content, opts)
	summary, err := s.client.Complete(ctx, prompt, content.Images(), opts)
	if err != nil {
		s.logger.Warn("ai invocation failed", zap.Error(err))
		return nil, err
	}

	md := BuildMetadata(content, time.Since(started))

	record, err := s.persist(ctx, persistInput{
		userID:       userID,
		uploadID:     &upload.ID,
		inputText:    content.AllText(),
		summary:      summary,
		documentType: string(format),
		summaryType:  string(opts.Style()),
		metadata:     md,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("document summarized",
		zap.String("id", record.ID),
		zap.String("type", string(format)),
		zap.String("style", string(opts.Style())),
		zap.Int("words", md.WordCount))

	return &Result{
		ID:           record.ID,
		Summary:      summary,
		DocumentType: string(format),
		SummaryType:  string(opts.Style()),
		Metadata:     md,
	}, nil
}

// SummarizeText runs the pipeline for raw text, with no upload record.
func (s *Service) SummarizeText(ctx context.Context, text, userID string, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text is empty", document.ErrInvalidInput)
	}

	started := time.Now()
	prompt := BuildTextPrompt(text, opts)
	summary, err := s.client.Complete(ctx, prompt, nil, opts)
	if err != nil {
		s.logger.Warn("ai invocation failed", zap.Error(err))
		return nil, err
	}

	md := TextMetadata(text, time.Since(started))

	record, err := s.persist(ctx, persistInput{
		userID:       userID,
		inputText:    text,
		summary:      summary,
		documentType: string(document.FormatText),
		summaryType:  string(opts.Style()),
		metadata:     md,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("text summarized",
		zap.String("id", record.ID),
		zap.String("style", string(opts.Style())),
		zap.Int("words", md.WordCount))

	return &Result{
		ID:           record.ID,
		Summary:      summary,
		DocumentType: string(document.FormatText),
		SummaryType:  string(opts.Style()),
		Metadata:     md,
	}, nil
}

type persistInput struct {
	userID       string
	uploadID     *string
	inputText    string
	summary      string
	documentType string
	summaryType  string
	metadata     Metadata
}

// persist writes the summarization, its result and its metadata in one
// transaction. IDs are assigned up front so the three records can reference
// each other before any of them exists.
func (s *Service) persist(ctx context.Context, in persistInput) (*models.SummarizationModel, error) {
	record := models.SummarizationModel{
		Base:         models.Base{ID: uuid.NewString()},
		UserID:       in.userID,
		DocumentUploadID: in.uploadID,
		InputText:    in.inputText,
		SummaryText:  in.summary,
		DocumentType: in.documentType,
		SummaryType:  in.summaryType,
	}
	result := models.SummaryResultModel{
		Base:            models.Base{ID: uuid.NewString()},
		SummarizationID: record.ID,
		Summary:         in.summary,
		DocumentType:    in.documentType,
		SummaryType:     in.summaryType,
	}
	metadata := models.SummaryMetadataModel{
		Base:            models.Base{ID: uuid.NewString()},
		SummarizationID: record.ID,
		SummaryResultID: result.ID,
		WordCount:       in.metadata.WordCount,
		ImageCount:      in.metadata.ImageCount,
		SlideCount:      in.metadata.SlideCount,
		ParagraphCount:  in.metadata.ParagraphCount,
		TableCount:      in.metadata.TableCount,
		ProcessingTime:  in.metadata.ProcessingTimeMs,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		if err := tx.Create(&result).Error; err != nil {
			return err
		}
		return tx.Create(&metadata).Error
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// SupportedExtensions lists the file extensions the pipeline accepts.
func (s *Service) SupportedExtensions() []string {
	return document.SupportedExtensions()
}

// HistoryFor returns a user's summarizations, newest first, with their
// result and metadata records attached.
func (s *Service) HistoryFor(ctx context.Context, userID string, q pagination.Query) ([]models.SummarizationModel, response.Pagination, error) {
	tx := s.db.WithContext(ctx).
		Model(&models.SummarizationModel{}).
		Preload("Result").
		Preload("Metadata").
		Where("user_id = ?", userID).
		Order("created_at DESC")

	var records []models.SummarizationModel
	pag, err := pagination.Paginate(tx, q, &records)
	return records, pag, err
}
