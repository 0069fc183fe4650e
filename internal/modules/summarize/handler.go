package summarize

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/aissummarizer/core/internal/middleware"
	"github.com/aissummarizer/core/internal/modules/document"
	"github.com/aissummarizer/core/internal/pkg/pagination"
	"github.com/aissummarizer/core/internal/pkg/response"
)

// Handler handles summarization HTTP requests.
type Handler struct {
	svc         *Service
	maxFileSize int64
}

func NewHandler(svc *Service, maxFileSize int64) *Handler {
	return &Handler{svc: svc, maxFileSize: maxFileSize}
}

// RegisterRoutes mounts summarization routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	docs := rg.Group("/documents")
	docs.GET("/supported-types", h.supportedTypes)

	authed := docs.Group("", authMW)
	authed.POST("/summarize", h.summarize)
	authed.POST("/summarize/text", h.summarizeText)

	rg.GET("/summaries", authMW, h.history)
}

// summarize POST /documents/summarize
func (h *Handler) summarize(c *gin.Context) {
	var req optionsRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	opts, err := req.buildOptions()
	if err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	if h.maxFileSize > 0 && fileHeader.Size > h.maxFileSize {
		response.BadRequest(c, "file is too large")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID := middleware.CurrentUserID(c)
	result, err := h.svc.Summarize(c.Request.Context(), data, fileHeader.Filename, userID, opts)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, result)
}

// summarizeText POST /documents/summarize/text
func (h *Handler) summarizeText(c *gin.Context) {
	var req summarizeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	opts, err := req.buildOptions()
	if err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	userID := middleware.CurrentUserID(c)
	result, err := h.svc.SummarizeText(c.Request.Context(), req.Text, userID, opts)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, result)
}

// supportedTypes GET /documents/supported-types
func (h *Handler) supportedTypes(c *gin.Context) {
	response.OK(c, supportedTypesResponse{Extensions: h.svc.SupportedExtensions()})
}

// history GET /summaries
func (h *Handler) history(c *gin.Context) {
	q := pagination.FromContext(c)
	userID := middleware.CurrentUserID(c)

	records, pag, err := h.svc.HistoryFor(c.Request.Context(), userID, q)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	items := make([]historyItem, len(records))
	for i, r := range records {
		item := historyItem{
			ID:           r.ID,
			DocumentType: r.DocumentType,
			SummaryType:  r.SummaryType,
			Summary:      r.SummaryText,
			Created:      r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
		if r.Metadata != nil {
			item.Metadata = &Metadata{
				WordCount:        r.Metadata.WordCount,
				ImageCount:       r.Metadata.ImageCount,
				SlideCount:       r.Metadata.SlideCount,
				ParagraphCount:   r.Metadata.ParagraphCount,
				TableCount:       r.Metadata.TableCount,
				ProcessingTimeMs: r.Metadata.ProcessingTime,
			}
		}
		items[i] = item
	}
	response.Paged(c, items, pag)
}

// writeError maps pipeline errors to HTTP statuses.
func writeError(c *gin.Context, err error) {
	var invocation *InvocationError
	var unsupported *document.UnsupportedFormatError
	var extraction *document.ExtractionError

	switch {
	case errors.Is(err, ErrInvalidOptions):
		response.UnprocessableEntity(c, err.Error())
	case errors.Is(err, document.ErrInvalidInput):
		response.BadRequest(c, err.Error())
	case errors.As(err, &unsupported):
		response.UnsupportedMediaType(c, err.Error())
	case errors.As(err, &extraction):
		response.InternalError(c, err)
	case errors.As(err, &invocation):
		// Provider errors carry backend detail (endpoints, key fragments,
		// quota messages) that must stay server-side. The service logs the
		// real error; the client gets a fixed message.
		if invocation.Transient {
			response.ServiceUnavailable(c, "AI service unavailable")
			return
		}
		response.InternalErrorMsg(c, "failed to process document")
	default:
		response.InternalError(c, err)
	}
}
