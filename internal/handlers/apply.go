package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"schemebot/internal/config"
	"schemebot/internal/models"
	"schemebot/internal/schemes"
	"schemebot/internal/validation"
)

// MsgUnknownScheme is shown when the form names a scheme not in the table.
const MsgUnknownScheme = "Please choose a listed scheme."

// ApplyHandler serves the static application form.
type ApplyHandler struct {
	table schemes.Table
	cfg   *config.Config
}

// NewApplyHandler creates a new apply handler.
func NewApplyHandler(table schemes.Table, cfg *config.Config) *ApplyHandler {
	return &ApplyHandler{table: table, cfg: cfg}
}

// Form renders the empty application form. ?scheme= preselects a scheme.
func (h *ApplyHandler) Form(c fiber.Ctx) error {
	form := models.ApplicationForm{}
	if s, ok := h.table.Lookup(c.Query("scheme")); ok {
		form.Scheme = s.Key
	}
	return c.Render("apply", h.formData(form, nil, ""))
}

// Submit checks that every field is filled. Nothing is stored or forwarded.
func (h *ApplyHandler) Submit(c fiber.Ctx) error {
	form := models.ApplicationForm{
		Name:        c.FormValue("name"),
		DateOfBirth: c.FormValue("dob"),
		PassingYear: c.FormValue("passing_year"),
		Scheme:      c.FormValue("scheme"),
	}

	receipt, msg := SubmitApplication(form, h.table)
	if receipt == nil {
		if isHTMX(c) {
			return htmxError(c, msg)
		}
		return c.Status(fiber.StatusUnprocessableEntity).Render("apply", h.formData(form, nil, msg))
	}

	if isHTMX(c) {
		return c.Render("partials/apply_result", receipt, "")
	}
	return c.Render("apply", h.formData(models.ApplicationForm{}, receipt, ""))
}

func (h *ApplyHandler) formData(form models.ApplicationForm, receipt *models.ApplicationReceipt, errMsg string) fiber.Map {
	data := fiber.Map{
		"Title":      "Apply for Scheme",
		"Form":       form,
		"Schemes":    h.table.All(),
		"WebsiteURL": h.cfg.FormWebsiteURL,
	}
	if receipt != nil {
		data["Receipt"] = *receipt
	}
	if errMsg != "" {
		data["Error"] = errMsg
	}
	return MergeBranding(data, h.cfg)
}

// SubmitApplication validates a form and returns a receipt, or nil and the
// message to show.
func SubmitApplication(form models.ApplicationForm, table schemes.Table) (*models.ApplicationReceipt, string) {
	if valid, msg := validation.ValidateApplication(form); !valid {
		return nil, msg
	}

	scheme := ""
	if form.Scheme != "" {
		s, ok := table.Lookup(form.Scheme)
		if !ok {
			return nil, MsgUnknownScheme
		}
		scheme = s.Key
	}

	receipt := models.NewApplicationReceipt(scheme, validation.MsgFormSubmitted)
	slog.Info("application form accepted", "reference", receipt.Reference, "scheme", scheme)
	return &receipt, ""
}
