package models

// DocumentUploadModel records metadata about an uploaded document. The raw
// bytes are consumed during extraction and never stored.
type DocumentUploadModel struct {
	Base
	UserID           string `json:"-"                 gorm:"index;not null"`
	DocumentType     string `json:"document_type"     gorm:"not null"`
	OriginalFilename string `json:"original_filename" gorm:"not null"`
	FileExtension    string `json:"file_extension"    gorm:"size:10;not null"`
	MimeType         string `json:"mime_type"`
	FileSize         int64  `json:"file_size"`
	ExtractionOK     bool   `json:"extraction_ok"`
	ExtractionError  string `json:"extraction_error,omitempty" gorm:"type:text"`
}

func (DocumentUploadModel) TableName() string { return "document_uploads" }

// SummarizationModel is a single summarization request performed by a user.
// A visible summarization always has exactly one linked result and one linked
// metadata record; the three rows are written in one transaction.
type SummarizationModel struct {
	Base
	UserID           string                `json:"-"             gorm:"index;not null"`
	DocumentUploadID *string               `json:"upload_id,omitempty" gorm:"index"`
	InputText        string                `json:"input_text"    gorm:"type:longtext;not null"`
	SummaryText      string                `json:"summary_text"  gorm:"type:longtext"`
	DocumentType     string                `json:"document_type" gorm:"size:20;not null"`
	SummaryType      string                `json:"summary_type"  gorm:"size:30;not null"`
	Result           *SummaryResultModel   `json:"result,omitempty"   gorm:"foreignKey:SummarizationID"`
	Metadata         *SummaryMetadataModel `json:"metadata,omitempty" gorm:"foreignKey:SummarizationID"`
}

func (SummarizationModel) TableName() string { return "summarizations" }

// SummaryResultModel stores the summary produced by the AI backend, copied out
// of the summarization row so it can be queried independently.
type SummaryResultModel struct {
	Base
	SummarizationID string `json:"-"             gorm:"uniqueIndex;not null"`
	Summary         string `json:"summary"       gorm:"type:longtext;not null"`
	DocumentType    string `json:"document_type" gorm:"size:20;not null"`
	SummaryType     string `json:"summary_type"  gorm:"size:30;not null"`
}

func (SummaryResultModel) TableName() string { return "summary_results" }

// SummaryMetadataModel stores structural analytics for one summarization.
type SummaryMetadataModel struct {
	Base
	SummarizationID string `json:"-" gorm:"uniqueIndex;not null"`
	SummaryResultID string `json:"-" gorm:"uniqueIndex;not null"`
	WordCount       int    `json:"word_count"`
	ImageCount      int    `json:"image_count"`
	SlideCount      int    `json:"slide_count"`
	ParagraphCount  int    `json:"paragraph_count"`
	TableCount      int    `json:"table_count"`
	ProcessingTime  int64  `json:"processing_time_ms"`
}

func (SummaryMetadataModel) TableName() string { return "summary_metadata" }
