package http

import (
	"context"
	"net/http"

	"leadcrm-backend/internal/domain/pipeline"
	"leadcrm-backend/internal/infrastructure/metrics"
	ucLead "leadcrm-backend/internal/usecase/lead"
	"leadcrm-backend/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type LeadHandler struct {
	base
	uc *ucLead.Usecase
}

func NewLeadHandler(uc *ucLead.Usecase, log *logger.Logger, m *metrics.Metrics) *LeadHandler {
	return &LeadHandler{base: newBase(log, m), uc: uc}
}

type leadReq struct {
	Name              string           `json:"name"                validate:"max=255"`
	Email             string           `json:"email"               validate:"max=255"`
	Phone             string           `json:"phone"               validate:"max=20"`
	City              string           `json:"city"                validate:"max=128"`
	Company           string           `json:"company"             validate:"max=255"`
	LeadSource        string           `json:"lead_source"         validate:"max=128"`
	Address           string           `json:"address"             validate:"max=512"`
	CompanyCategoryID *uint64          `json:"company_category_id"`
	Salary            *decimal.Decimal `json:"salary"              validate:"omitempty,dec2,gte=0"`
}

func (r leadReq) raw() ucLead.RawLead {
	return ucLead.RawLead{
		Name:              r.Name,
		Email:             r.Email,
		Phone:             r.Phone,
		City:              r.City,
		Company:           r.Company,
		LeadSource:        r.LeadSource,
		Address:           r.Address,
		CompanyCategoryID: r.CompanyCategoryID,
	}
}

func (h *LeadHandler) Create(c echo.Context) error {
	actor, ok, err := actorOf(c)
	if !ok {
		return err
	}
	var req leadReq
	if ok, err := bind(c, &req); !ok {
		return err
	}
	in := ucLead.CreateInput{Lead: req.raw(), Actor: actor}
	if req.Salary != nil {
		in.Salary = decimal.NewNullDecimal(*req.Salary)
	}
	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// Import takes a bare JSON array of rows.
func (h *LeadHandler) Import(c echo.Context) error {
	actor, ok, err := actorOf(c)
	if !ok {
		return err
	}
	var rows []leadReq
	if err := c.Bind(&rows); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	in := ucLead.ImportInput{Rows: make([]ucLead.RawLead, 0, len(rows)), Actor: actor}
	for _, r := range rows {
		in.Rows = append(in.Rows, r.raw())
	}
	res, err := h.uc.Import(c.Request().Context(), in)
	if err != nil {
		return h.fail(c, err)
	}
	if h.metrics != nil {
		h.metrics.RecordImport(res.TotalValid, res.TotalInvalid)
	}
	return c.JSON(http.StatusCreated, res)
}

type loanReportReq struct {
	LoanAmount  decimal.Decimal `json:"loan_amount" validate:"dec2,gte=0"`
	BankName    string          `json:"bank_name"   validate:"max=255"`
	LoanType    string          `json:"loan_type"   validate:"max=128"`
	EMI         decimal.Decimal `json:"emi"         validate:"dec2,gte=0"`
	Outstanding decimal.Decimal `json:"outstanding" validate:"dec2,gte=0"`
}

type creditReportReq struct {
	CreditCardName   string          `json:"credit_card_name"  validate:"max=255"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding" validate:"dec2,gte=0"`
}

type detailsReq struct {
	Name              *string           `json:"name"                validate:"omitempty,max=255"`
	Email             *string           `json:"email"               validate:"omitempty,max=255"`
	Phone             *string           `json:"phone"               validate:"omitempty,max=20"`
	City              *string           `json:"city"                validate:"omitempty,max=128"`
	Company           *string           `json:"company"             validate:"omitempty,max=255"`
	LeadSource        *string           `json:"lead_source"         validate:"omitempty,max=128"`
	CompanyCategoryID *uint64           `json:"company_category_id"`
	Salary            *decimal.Decimal  `json:"salary"              validate:"omitempty,dec2,gte=0"`
	LoanReports       []loanReportReq   `json:"loan_reports"        validate:"dive"`
	CreditReports     []creditReportReq `json:"credit_reports"      validate:"dive"`
	Activity          *activityReq      `json:"activity"`
}

func (h *LeadHandler) UpdateDetails(c echo.Context) error {
	actor, ok, err := actorOf(c)
	if !ok {
		return err
	}
	leadID, ok, err := pathID(c, "lead_id")
	if !ok {
		return err
	}
	var req detailsReq
	if ok, err := bind(c, &req); !ok {
		return err
	}

	in := ucLead.DetailsInput{
		LeadID:            leadID,
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		City:              req.City,
		Company:           req.Company,
		LeadSource:        req.LeadSource,
		CompanyCategoryID: req.CompanyCategoryID,
		Actor:             actor,
	}
	if req.Salary != nil {
		in.Salary = decimal.NewNullDecimal(*req.Salary)
	}
	for _, lr := range req.LoanReports {
		in.LoanReports = append(in.LoanReports, ucLead.LoanReportInput(lr))
	}
	for _, cr := range req.CreditReports {
		in.CreditReports = append(in.CreditReports, ucLead.CreditReportInput(cr))
	}
	if req.Activity != nil {
		in.Activity = &ucLead.DetailsActivityInput{
			ActivityStatus: req.Activity.ActivityStatus,
			Description:    req.Activity.Description,
			DocsCollected:  req.Activity.DocsCollected,
			FollowUp:       req.Activity.FollowUp,
		}
	}

	res, err := h.uc.UpdateDetails(c.Request().Context(), in)
	if in.Activity != nil {
		h.transition(pipeline.EventActivityLogged, err)
	}
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

type verificationReq struct {
	VerificationStatus string `json:"verification_status"`
}

type applicationReq struct {
	ApplicationStatus string `json:"application_status"`
}

type leadStatusReq struct {
	LeadStatus string `json:"lead_status"`
}

func (h *LeadHandler) UpdateVerificationStatus(c echo.Context) error {
	var req verificationReq
	return h.decide(c, &req, func() string { return req.VerificationStatus },
		pipeline.EventVerificationDecision, h.uc.UpdateVerificationStatus)
}

func (h *LeadHandler) UpdateApplicationStatus(c echo.Context) error {
	var req applicationReq
	return h.decide(c, &req, func() string { return req.ApplicationStatus },
		pipeline.EventApplicationDecision, h.uc.UpdateApplicationStatus)
}

func (h *LeadHandler) UpdateLeadStatus(c echo.Context) error {
	var req leadStatusReq
	return h.decide(c, &req, func() string { return req.LeadStatus },
		pipeline.EventLeadStatusDecision, h.uc.UpdateLeadStatus)
}

type decideFn func(ctx context.Context, in ucLead.DecisionInput) (*ucLead.LeadDTO, error)

func (h *LeadHandler) decide(c echo.Context, req any, value func() string, kind pipeline.EventKind, fn decideFn) error {
	actor, ok, err := actorOf(c)
	if !ok {
		return err
	}
	leadID, ok, err := pathID(c, "lead_id")
	if !ok {
		return err
	}
	if ok, err := bind(c, req); !ok {
		return err
	}

	dto, err := fn(c.Request().Context(), ucLead.DecisionInput{LeadID: leadID, Value: value(), Actor: actor})
	h.transition(kind, err)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
