package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/careerhub/portal-service/internal/api/dto"
	"github.com/careerhub/portal-service/internal/auth"
	"github.com/careerhub/portal-service/internal/domain"
	"github.com/careerhub/portal-service/internal/service"
	apperrors "github.com/careerhub/portal-service/pkg/util/errorutil"
)

const defaultPageSize = 20

// MeetingsHandler manages meeting requests and admin decisions.
type MeetingsHandler struct {
	meetings *service.MeetingService
	workflow *service.ApprovalWorkflow
}

// NewMeetingsHandler constructs handler.
func NewMeetingsHandler(meetings *service.MeetingService, workflow *service.ApprovalWorkflow) *MeetingsHandler {
	return &MeetingsHandler{meetings: meetings, workflow: workflow}
}

// RequestMeeting POST /meetings.
func (h *MeetingsHandler) RequestMeeting(c *fiber.Ctx) error {
	identity, err := auth.MustIdentity(c)
	if err != nil {
		return err
	}
	var req dto.CreateMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	meeting, err := h.meetings.Request(c.UserContext(), identity, service.MeetingRequestInput{
		Name:    req.Name,
		Email:   req.Email,
		Purpose: req.Purpose,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewMeetingView(meeting)})
}

// ListMeetings GET /admin/meetings.
func (h *MeetingsHandler) ListMeetings(c *fiber.Ctx) error {
	page, pageSize := parsePage(c)
	filter := service.MeetingListFilter{
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	}
	if raw := c.Query("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				filter.Statuses = append(filter.Statuses, domain.MeetingStatus(strings.ToLower(s)))
			}
		}
	}

	meetings, err := h.meetings.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.MeetingView, 0, len(meetings))
	for i := range meetings {
		items = append(items, dto.NewMeetingView(&meetings[i]))
	}
	return c.JSON(fiber.Map{
		"data": items,
		"meta": dto.PageMeta{Page: page, PageSize: pageSize, Count: len(items)},
	})
}

// GetMeeting GET /admin/meetings/:id.
func (h *MeetingsHandler) GetMeeting(c *fiber.Ctx) error {
	meeting, err := h.meetings.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewMeetingView(meeting)})
}

// Approve PUT /admin/meetings/:id/approve.
func (h *MeetingsHandler) Approve(c *fiber.Ctx) error {
	var req dto.ApproveMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	return h.decide(c, service.ApproveDecision{MeetingID: c.Params("id"), Date: req.Date, Time: req.Time}, "meeting approved")
}

// Decline PUT /admin/meetings/:id/decline.
func (h *MeetingsHandler) Decline(c *fiber.Ctx) error {
	var req dto.DeclineMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	return h.decide(c, service.DeclineDecision{MeetingID: c.Params("id"), Reason: req.Reason}, "meeting declined")
}

func (h *MeetingsHandler) decide(c *fiber.Ctx, decision service.Decision, message string) error {
	identity, err := auth.MustIdentity(c)
	if err != nil {
		return err
	}
	result, err := h.workflow.Apply(c.UserContext(), identity, decision)
	if err != nil {
		return err
	}
	return c.JSON(dto.DecisionResponse{
		Message: message,
		Status:  string(result.Status),
		Meeting: dto.NewMeetingView(result.Meeting),
	})
}

func parsePage(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.Query("page_size", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > service.MaxMeetingPageSize {
		pageSize = service.MaxMeetingPageSize
	}
	return page, pageSize
}
