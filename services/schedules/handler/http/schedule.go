package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/logger"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/internal/utils"
	"github.com/chetanshingare9301/Exam-Management-System/services/schedules"
	"github.com/labstack/echo/v4"
)

// ScheduleHandler handles HTTP requests for the exam timetable
type ScheduleHandler struct {
	scheduleUC schedules.ScheduleUC
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleUC schedules.ScheduleUC) *ScheduleHandler {
	return &ScheduleHandler{scheduleUC: scheduleUC}
}

// CreateSchedule schedules an exam
func (h *ScheduleHandler) CreateSchedule(c echo.Context, p *models.Principal) error {
	var req models.ScheduleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	schedule, err := h.scheduleUC.CreateSchedule(c.Request().Context(), &req)
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Exam scheduled successfully", schedule)
}

// ListSchedules returns the whole timetable
func (h *ScheduleHandler) ListSchedules(c echo.Context, p *models.Principal) error {
	list, err := h.scheduleUC.ListSchedules(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Schedules retrieved successfully", list)
}

// GetSchedule returns one schedule
func (h *ScheduleHandler) GetSchedule(c echo.Context, p *models.Principal) error {
	id, err := scheduleID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid schedule ID")
	}

	schedule, err := h.scheduleUC.GetSchedule(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Schedule retrieved successfully", schedule)
}

// UpdateSchedule moves a schedule
func (h *ScheduleHandler) UpdateSchedule(c echo.Context, p *models.Principal) error {
	id, err := scheduleID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid schedule ID")
	}

	var req models.ScheduleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	schedule, err := h.scheduleUC.UpdateSchedule(c.Request().Context(), id, &req)
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Schedule updated successfully", schedule)
}

// DeleteSchedule removes a schedule
func (h *ScheduleHandler) DeleteSchedule(c echo.Context, p *models.Principal) error {
	id, err := scheduleID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid schedule ID")
	}

	if err := h.scheduleUC.DeleteSchedule(c.Request().Context(), id); err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Schedule deleted successfully", nil)
}

// UpcomingSchedules returns every exam that has not started yet
func (h *ScheduleHandler) UpcomingSchedules(c echo.Context, p *models.Principal) error {
	list, err := h.scheduleUC.UpcomingSchedules(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Upcoming exams retrieved successfully", list)
}

// MyExams returns the logged-in student's upcoming exams
func (h *ScheduleHandler) MyExams(c echo.Context, p *models.Principal) error {
	list, err := h.scheduleUC.StudentExams(c.Request().Context(), p.ID)
	if err != nil {
		return errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Exams retrieved successfully", list)
}

func scheduleID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func errorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, schedules.ErrInvalidInput):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, schedules.ErrUnknownExamOrSubject):
		return utils.NotFoundResponse(c, "Exam or subject not found")
	case errors.Is(err, schedules.ErrNotFound):
		return utils.NotFoundResponse(c, "Schedule not found")
	}

	logger.Error("Schedule request failed", logger.String("path", c.Path()), logger.ErrorField(err))
	return utils.InternalServerErrorResponse(c, "")
}
