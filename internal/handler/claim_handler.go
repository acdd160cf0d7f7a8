// internal/handler/claim_handler.go
package handler

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"claim-dashboard/internal/form"
	"claim-dashboard/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

const pageTitle = "AI Claim Fraud Detection"

// Templates parses the embedded page templates for gin's HTML renderer.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

type ClaimHandler struct {
	controller *form.Controller
	logger     *zap.Logger
}

func NewClaimHandler(controller *form.Controller, logger *zap.Logger) *ClaimHandler {
	return &ClaimHandler{
		controller: controller,
		logger:     logger,
	}
}

type option struct {
	Value    string
	Label    string
	Selected bool
}

type pageData struct {
	Title          string
	View           form.View
	Genders        []option
	ProcedureCodes []option
}

type fieldUpdateRequest struct {
	Value *string `json:"value" binding:"required"`
}

// Page handles GET /
func (h *ClaimHandler) Page(c *gin.Context) {
	h.render(c, h.controller.View())
}

// SubmitForm handles POST / from the HTML form: every posted field is stored,
// then the claim is submitted and the page re-rendered.
func (h *ClaimHandler) SubmitForm(c *gin.Context) {
	for _, name := range models.FieldNames {
		if value, ok := c.GetPostForm(name); ok {
			h.controller.UpdateField(name, value)
		}
	}

	h.render(c, h.controller.Submit(detach(c)))
}

// GetClaim handles GET /api/v1/claim
func (h *ClaimHandler) GetClaim(c *gin.Context) {
	c.JSON(http.StatusOK, h.controller.View())
}

// UpdateField handles PUT /api/v1/claim/fields/:name
func (h *ClaimHandler) UpdateField(c *gin.Context) {
	name := c.Param("name")
	if !models.IsField(name) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown form field"})
		return
	}

	var req fieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.controller.UpdateField(name, *req.Value)
	c.JSON(http.StatusOK, h.controller.View())
}

// PatchClaim handles PATCH /api/v1/claim with an RFC 6902 body
func (h *ClaimHandler) PatchClaim(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	if err := h.controller.ApplyPatch(body); err != nil {
		if errors.Is(err, form.ErrInvalidPatch) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to patch claim form", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update form"})
		return
	}

	c.JSON(http.StatusOK, h.controller.View())
}

// SubmitClaim handles POST /api/v1/claim/submit. A failed prediction is
// reported in the view's error field, not through the status code.
func (h *ClaimHandler) SubmitClaim(c *gin.Context) {
	c.JSON(http.StatusOK, h.controller.Submit(detach(c)))
}

func (h *ClaimHandler) render(c *gin.Context, view form.View) {
	c.HTML(http.StatusOK, "index.html", pageData{
		Title:          pageTitle,
		View:           view,
		Genders:        genderOptions(view.Form.Gender),
		ProcedureCodes: procedureOptions(view.Form.ProcedureCode),
	})
}

// detach keeps a submission running when the browser goes away; once sent, a
// prediction request always completes.
func detach(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}

func genderOptions(selected string) []option {
	opts := make([]option, 0, len(models.Genders))
	for _, g := range models.Genders {
		opts = append(opts, option{Value: string(g), Label: string(g), Selected: string(g) == selected})
	}
	return opts
}

func procedureOptions(selected string) []option {
	opts := make([]option, 0, len(models.ProcedureCodes))
	for _, p := range models.ProcedureCodes {
		opts = append(opts, option{Value: string(p), Label: p.Label(), Selected: string(p) == selected})
	}
	return opts
}
