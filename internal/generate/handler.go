package generate

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"skribe/coverletter/render"
	"skribe/coverletter/service"
	"skribe/internal/extract"
	"skribe/internal/shared/server/middleware"
	"skribe/internal/shared/server/respond"
	"skribe/internal/shared/util"
)

const (
	// DefaultMaxUploadBytes bounds a whole multipart request.
	DefaultMaxUploadBytes = 10 << 20 // 10MB

	missingInputMessage = "Please provide both job description and resume."
)

var errUploadTooLarge = errors.New("upload too large")

// Handler wires HTTP handlers to the cover letter service.
type Handler struct {
	Svc            *service.Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler. A non-positive limit uses DefaultMaxUploadBytes.
func NewHandler(svc *service.Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches generation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/extract", h.extract)
	rg.POST("/generations", h.generate)
	rg.POST("/cover-letter", h.coverLetter)
}

func (h *Handler) extract(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	doc, found, err := readUpload(c, "file")
	if err != nil {
		respondUploadError(c, err)
		return
	}
	if !found {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	respond.OK(c, toExtractResponse(doc))
}

func (h *Handler) generate(c *gin.Context) {
	jobText, resumeText, ok := h.readInputs(c)
	if !ok {
		return
	}

	reqID := middleware.RequestIDFromContext(c)
	ctx := service.WithRequestID(c.Request.Context(), reqID)
	result, err := h.Svc.Generate(ctx, jobText, resumeText)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respond.OK(c, toGenerationResponse(reqID, result))
}

func (h *Handler) coverLetter(c *gin.Context) {
	jobText, resumeText, ok := h.readInputs(c)
	if !ok {
		return
	}

	ctx := service.WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))
	_, doc, err := h.Svc.CoverLetter(ctx, jobText, resumeText)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+render.DocxFileName+"\"")
	c.Data(http.StatusOK, render.DocxContentType, doc)
}

// readInputs resolves the job description (pasted text wins over an uploaded
// file) and the resume text. It writes the error response itself.
func (h *Handler) readInputs(c *gin.Context) (string, string, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)
	if err := c.Request.ParseMultipartForm(h.MaxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		respondUploadError(c, err)
		return "", "", false
	}

	jobText := c.PostForm("jobDescription")
	if strings.TrimSpace(jobText) == "" {
		doc, _, err := readUpload(c, "jobFile")
		if err != nil {
			respondUploadError(c, err)
			return "", "", false
		}
		jobText = doc.Text
	}

	resume, _, err := readUpload(c, "resumeFile")
	if err != nil {
		respondUploadError(c, err)
		return "", "", false
	}
	return jobText, resume.Text, true
}

// readUpload extracts the text of the named form file. found is false when
// the field is absent.
func readUpload(c *gin.Context, field string) (extract.SourceDocument, bool, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if isTooLarge(err) {
			return extract.SourceDocument{}, false, errUploadTooLarge
		}
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return extract.SourceDocument{}, false, nil
		}
		return extract.SourceDocument{}, false, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return extract.SourceDocument{}, false, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return extract.SourceDocument{}, false, err
	}
	return extract.Read(util.CleanFileName(fileHeader.Filename), data), true, nil
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.Is(err, errUploadTooLarge) || errors.As(err, &maxErr)
}

func respondUploadError(c *gin.Context, err error) {
	if isTooLarge(err) {
		respond.Error(c, http.StatusRequestEntityTooLarge, "payload_too_large", "upload exceeds size limit", nil)
		return
	}
	respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read upload", nil)
}

func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMissingInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", missingInputMessage, nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate cover letter", nil)
	}
}
