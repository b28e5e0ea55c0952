package http

import (
	"net/http"

	"leadcrm-backend/internal/infrastructure/metrics"
	ucAttachment "leadcrm-backend/internal/usecase/attachment"
	"leadcrm-backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

type AttachmentHandler struct {
	base
	uc *ucAttachment.Usecase
}

func NewAttachmentHandler(uc *ucAttachment.Usecase, log *logger.Logger, m *metrics.Metrics) *AttachmentHandler {
	return &AttachmentHandler{base: newBase(log, m), uc: uc}
}

type documentReq struct {
	DocumentURL  string `json:"document_url"  validate:"omitempty,url,max=1024"`
	DocumentType string `json:"document_type" validate:"max=64"`
	DocumentName string `json:"document_name" validate:"max=255"`
}

type addDocumentsReq struct {
	Documents []documentReq `json:"documents" validate:"dive"`
}

func (h *AttachmentHandler) AddDocuments(c echo.Context) error {
	actor, ok, err := actorOf(c)
	if !ok {
		return err
	}
	leadID, ok, err := pathID(c, "lead_id")
	if !ok {
		return err
	}
	var req addDocumentsReq
	if ok, err := bind(c, &req); !ok {
		return err
	}
	in := ucAttachment.AddDocumentsInput{LeadID: leadID, Actor: actor}
	for _, d := range req.Documents {
		in.Documents = append(in.Documents, ucAttachment.DocumentInput(d))
	}
	docs, err := h.uc.AddDocuments(c.Request().Context(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, docs)
}

func (h *AttachmentHandler) DeleteLoanReport(c echo.Context) error {
	return h.delete(c, ucAttachment.TargetLoanReport)
}

func (h *AttachmentHandler) DeleteCreditReport(c echo.Context) error {
	return h.delete(c, ucAttachment.TargetCreditReport)
}

func (h *AttachmentHandler) DeleteDocument(c echo.Context) error {
	return h.delete(c, ucAttachment.TargetDocument)
}

func (h *AttachmentHandler) delete(c echo.Context, target ucAttachment.Target) error {
	actor, ok, err := actorOf(c)
	if !ok {
		return err
	}
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}
	if err := h.uc.Delete(c.Request().Context(), ucAttachment.DeleteInput{Target: target, ID: id, Actor: actor}); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
