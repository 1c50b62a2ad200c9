// Package http adapts the resume pipeline to a Fiber endpoint surface.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"resume-composer/internal/config"
	"resume-composer/internal/model"
	"resume-composer/internal/render"
	"resume-composer/internal/sanitize"
	"resume-composer/internal/usecase"
	"resume-composer/pkg/ai"
	"resume-composer/pkg/infrastructure"
)

var contentTypes = map[render.Format]string{
	render.FormatPDF:  "application/pdf",
	render.FormatDOCX: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

type Handler struct {
	processor *usecase.Processor
	upload    config.UploadConfig
	log       *infrastructure.Logger
}

func NewHandler(p *usecase.Processor, upload config.UploadConfig, log *infrastructure.Logger) *Handler {
	if log == nil {
		log = infrastructure.NewNopLogger()
	}
	return &Handler{processor: p, upload: upload, log: log}
}

func (h *Handler) Register(app *fiber.App) {
	app.Get("/", h.Health)
	app.Post("/extract-resume-text", h.ExtractText)
	app.Post("/parse-resume", h.ParseResume)
	app.Post("/generate-pdf", h.GeneratePDF)
	app.Post("/generate-docx", h.GenerateDOCX)
	app.Post("/analyze-ats", h.AnalyzeATS)
	app.Post("/optimize-section", h.OptimizeSection)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":            "Resume Composer API is running",
		"completion_service": h.processor.CompletionAvailable(),
	})
}

func (h *Handler) ExtractText(c *fiber.Ctx) error {
	filename, data, err := h.readUpload(c)
	if err != nil {
		return h.fail(c, fiber.StatusBadRequest, err.Error())
	}

	text, err := h.processor.ExtractText(filename, data)
	if err != nil {
		return h.fail(c, fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"filename":     filename,
		"file_type":    strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), "."),
		"text_content": text,
		"success":      true,
	})
}

func (h *Handler) ParseResume(c *fiber.Ctx) error {
	filename, data, err := h.readUpload(c)
	if err != nil {
		return h.fail(c, fiber.StatusBadRequest, err.Error())
	}

	doc, err := h.processor.ParseResume(c.Context(), filename, data)
	if err != nil {
		var upload *usecase.UploadError
		if errors.As(err, &upload) {
			return h.fail(c, fiber.StatusBadRequest, upload.Error())
		}
		return h.completionFailure(c, "resume parsing", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    doc,
		"message": "Resume parsed successfully",
	})
}

func (h *Handler) GeneratePDF(c *fiber.Ctx) error {
	return h.generate(c, render.FormatPDF)
}

func (h *Handler) GenerateDOCX(c *fiber.Ctx) error {
	return h.generate(c, render.FormatDOCX)
}

func (h *Handler) generate(c *fiber.Ctx, format render.Format) error {
	var doc model.ResumeDocument
	if err := c.BodyParser(&doc); err != nil {
		return h.fail(c, fiber.StatusBadRequest, "invalid resume document: "+err.Error())
	}
	doc.ApplyDefaults()

	out, filename, err := h.processor.Render(&doc, format)
	if err != nil {
		h.log.Errorw("render failed", "format", format, "error", err)
		return h.fail(c, fiber.StatusInternalServerError, fmt.Sprintf("error generating %s", strings.ToUpper(string(format))))
	}

	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+filename)
	c.Set(fiber.HeaderContentType, contentTypes[format])
	return c.Send(out)
}

type analyzeRequest struct {
	ResumeData     model.ResumeDocument `json:"resume_data"`
	JobDescription string               `json:"job_description"`
}

type analyzeResponse struct {
	model.ATSReport
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *Handler) AnalyzeATS(c *fiber.Ctx) error {
	var req analyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, fiber.StatusBadRequest, "invalid payload: "+err.Error())
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		return h.fail(c, fiber.StatusBadRequest, "job description cannot be empty")
	}
	req.ResumeData.ApplyDefaults()

	report, err := h.processor.AnalyzeATS(c.Context(), &req.ResumeData, req.JobDescription)
	if err != nil {
		return h.completionFailure(c, "ats analysis", err)
	}

	return c.JSON(analyzeResponse{
		ATSReport: *report,
		Success:   true,
		Message:   "Analysis completed successfully",
	})
}

type optimizeRequest struct {
	ResumeData     model.ResumeDocument `json:"resume_data"`
	JobDescription string               `json:"job_description"`
	Section        string               `json:"section"`
	SectionData    json.RawMessage      `json:"section_data"`
	CustomPrompt   string               `json:"custom_prompt"`
}

type optimizeResponse struct {
	Success          bool            `json:"success"`
	Explanation      string          `json:"explanation"`
	ChangesMade      []string        `json:"changes_made"`
	OptimizedSection json.RawMessage `json:"optimized_section"`
}

func (h *Handler) OptimizeSection(c *fiber.Ctx) error {
	var req optimizeRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, fiber.StatusBadRequest, "invalid payload: "+err.Error())
	}
	req.ResumeData.ApplyDefaults()

	opt, err := h.processor.OptimizeSection(c.Context(), ai.OptimizeInput{
		Resume:         &req.ResumeData,
		JobDescription: req.JobDescription,
		Section:        req.Section,
		SectionData:    req.SectionData,
		CustomPrompt:   req.CustomPrompt,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownSection) {
			return h.fail(c, fiber.StatusBadRequest, err.Error())
		}
		return h.completionFailure(c, "section optimization", err)
	}

	return c.JSON(optimizeResponse{
		Success:          true,
		Explanation:      opt.Explanation,
		ChangesMade:      opt.ChangesMade,
		OptimizedSection: opt.OptimizedSection,
	})
}

// readUpload pulls the multipart "file" part and checks it against the
// configured extension allow-list and size limit.
func (h *Handler) readUpload(c *fiber.Ctx) (string, []byte, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return "", nil, errors.New("no file provided")
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !h.upload.Allowed(ext) {
		return "", nil, fmt.Errorf("unsupported file type, allowed: %s",
			strings.Join(h.upload.AllowedExtensions, ", "))
	}
	if fh.Size > h.upload.MaxBytes {
		return "", nil, fmt.Errorf("file too large, maximum size is %d bytes", h.upload.MaxBytes)
	}

	f, err := fh.Open()
	if err != nil {
		return "", nil, fmt.Errorf("error reading file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", nil, fmt.Errorf("error reading file: %w", err)
	}
	return fh.Filename, data, nil
}

func (h *Handler) fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// completionFailure maps pipeline errors onto the response taxonomy:
// missing capability is 503, a malformed completion is 500 with the
// payload excerpt, anything else is a plain 500.
func (h *Handler) completionFailure(c *fiber.Ctx, op string, err error) error {
	if errors.Is(err, usecase.ErrCompletionUnavailable) {
		return h.fail(c, fiber.StatusServiceUnavailable,
			"completion service is currently unavailable, ensure OPENAI_API_KEY is configured")
	}

	var malformed *sanitize.MalformedPayloadError
	if errors.As(err, &malformed) {
		h.log.Errorw(op+" produced a malformed payload", "excerpt", malformed.Excerpt)
		return h.fail(c, fiber.StatusInternalServerError, err.Error())
	}

	h.log.Errorw(op+" failed", "error", err)
	return h.fail(c, fiber.StatusInternalServerError, "error during "+op)
}
