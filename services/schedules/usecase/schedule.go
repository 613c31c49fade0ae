package usecase

import (
	"context"
	"time"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/logger"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/services/schedules"
)

// CreateSchedule places an exam for a subject in a future slot
func (u *ScheduleUC) CreateSchedule(ctx context.Context, req *models.ScheduleRequest) (*models.Schedule, error) {
	schedule, err := u.validateSchedule(req)
	if err != nil {
		return nil, err
	}

	if err := u.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, err
	}

	logger.Info("Exam scheduled",
		logger.Int64("schedule_id", schedule.ID),
		logger.Int64("exam_id", schedule.ExamID),
		logger.Int64("subject_id", schedule.SubjectID))
	return u.scheduleRepo.GetByID(ctx, schedule.ID)
}

// ListSchedules returns the whole timetable, latest first
func (u *ScheduleUC) ListSchedules(ctx context.Context) ([]*models.Schedule, error) {
	return u.scheduleRepo.List(ctx)
}

// GetSchedule returns one schedule
func (u *ScheduleUC) GetSchedule(ctx context.Context, id int64) (*models.Schedule, error) {
	return u.scheduleRepo.GetByID(ctx, id)
}

// UpdateSchedule moves a schedule. The new slot must still lie in the future.
func (u *ScheduleUC) UpdateSchedule(ctx context.Context, id int64, req *models.ScheduleRequest) (*models.Schedule, error) {
	schedule, err := u.validateSchedule(req)
	if err != nil {
		return nil, err
	}
	schedule.ID = id

	if err := u.scheduleRepo.Update(ctx, schedule); err != nil {
		return nil, err
	}
	return u.scheduleRepo.GetByID(ctx, id)
}

// DeleteSchedule removes a schedule
func (u *ScheduleUC) DeleteSchedule(ctx context.Context, id int64) error {
	if err := u.scheduleRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("Schedule deleted", logger.Int64("schedule_id", id))
	return nil
}

// UpcomingSchedules returns every schedule that has not started yet, soonest first
func (u *ScheduleUC) UpcomingSchedules(ctx context.Context) ([]*models.Schedule, error) {
	return u.scheduleRepo.ListUpcoming(ctx, u.now())
}

// StudentExams returns the upcoming schedules for the student's assigned subjects
func (u *ScheduleUC) StudentExams(ctx context.Context, studentID int64) ([]*models.Schedule, error) {
	return u.scheduleRepo.ListForStudent(ctx, studentID, u.now())
}

func (u *ScheduleUC) validateSchedule(req *models.ScheduleRequest) (*models.Schedule, error) {
	switch {
	case req.ExamID <= 0:
		return nil, schedules.InvalidInput("exam is required")
	case req.SubjectID <= 0:
		return nil, schedules.InvalidInput("subject is required")
	case req.StartsAt.IsZero():
		return nil, schedules.InvalidInput("start time is required")
	case req.EndsAt.IsZero():
		return nil, schedules.InvalidInput("end time is required")
	case !req.EndsAt.After(req.StartsAt):
		return nil, schedules.InvalidInput("end time must be after start time")
	case req.StartsAt.Before(u.now()):
		return nil, schedules.InvalidInput("exam date cannot be in the past")
	}

	return &models.Schedule{
		ExamID:    req.ExamID,
		SubjectID: req.SubjectID,
		StartsAt:  req.StartsAt.UTC().Truncate(time.Second),
		EndsAt:    req.EndsAt.UTC().Truncate(time.Second),
	}, nil
}
