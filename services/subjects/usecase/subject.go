package usecase

import (
	"context"
	"strings"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/logger"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/services/subjects"
)

// AddSubject creates a subject with a unique name
func (u *SubjectUC) AddSubject(ctx context.Context, req *models.SubjectRequest) (*models.Subject, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, subjects.InvalidInput("subject name is required")
	}

	subject := &models.Subject{Name: name}
	if err := u.subjectRepo.Create(ctx, subject); err != nil {
		return nil, err
	}

	logger.Info("Subject added", logger.Int64("subject_id", subject.ID))
	return subject, nil
}

// ListSubjects returns every subject
func (u *SubjectUC) ListSubjects(ctx context.Context) ([]*models.Subject, error) {
	return u.subjectRepo.List(ctx)
}

// AssignStudent links a student to a subject once
func (u *SubjectUC) AssignStudent(ctx context.Context, req *models.AssignmentRequest) error {
	if req.StudentID <= 0 || req.SubjectID <= 0 {
		return subjects.InvalidInput("student_id and subject_id are required")
	}

	if err := u.subjectRepo.Assign(ctx, req.StudentID, req.SubjectID); err != nil {
		return err
	}

	logger.Info("Student assigned to subject",
		logger.AccountID(req.StudentID),
		logger.Int64("subject_id", req.SubjectID),
	)
	return nil
}

// ListStudentSubjects returns the subjects a student is assigned to
func (u *SubjectUC) ListStudentSubjects(ctx context.Context, studentID int64) ([]*models.Subject, error) {
	return u.subjectRepo.ListForStudent(ctx, studentID)
}
