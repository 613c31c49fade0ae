package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/services/questions"
)

var questionRowColumns = []string{"id", "question", "option1", "option2", "option3", "option4", "answer", "created_at"}

func setupQuestionRepoTest(t *testing.T) (*QuestionRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	return NewQuestionRepo(&models.Config{}, sqlxDB), mock
}

func capitals() *models.Question {
	return &models.Question{
		Text:    "Capital of France?",
		Option1: "Paris", Option2: "Rome", Option3: "Berlin", Option4: "Madrid",
		Answer: "Paris",
	}
}

func TestCreate(t *testing.T) {
	repo, mock := setupQuestionRepoTest(t)
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery("^INSERT INTO questions").
		WithArgs("Capital of France?", "Paris", "Rome", "Berlin", "Madrid", "Paris").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(8), created))

	q := capitals()
	err := repo.Create(context.Background(), q)

	require.NoError(t, err)
	assert.Equal(t, int64(8), q.ID)
	assert.Equal(t, created, q.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Duplicate(t *testing.T) {
	repo, mock := setupQuestionRepoTest(t)

	mock.ExpectQuery("^INSERT INTO questions").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "questions_question_key"})

	err := repo.Create(context.Background(), capitals())

	assert.ErrorIs(t, err, questions.ErrDuplicateQuestion)
}

func TestList(t *testing.T) {
	repo, mock := setupQuestionRepoTest(t)

	rows := sqlmock.NewRows(questionRowColumns).
		AddRow(int64(1), "Capital of France?", "Paris", "Rome", "Berlin", "Madrid", "Paris", time.Now()).
		AddRow(int64(2), "2 + 2?", "3", "4", "5", "22", "4", time.Now())
	mock.ExpectQuery("^SELECT (.+) FROM questions ORDER BY id").WillReturnRows(rows)

	got, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Capital of France?", got[0].Text)
	assert.Equal(t, "4", got[1].Answer)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_Empty(t *testing.T) {
	repo, mock := setupQuestionRepoTest(t)
	mock.ExpectQuery("^SELECT (.+) FROM questions").WillReturnRows(sqlmock.NewRows(questionRowColumns))

	got, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := setupQuestionRepoTest(t)
	mock.ExpectQuery("^SELECT (.+) FROM questions WHERE id = \\$1").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(questionRowColumns))

	_, err := repo.GetByID(context.Background(), 9)

	assert.ErrorIs(t, err, questions.ErrNotFound)
}

func TestUpdate(t *testing.T) {
	repo, mock := setupQuestionRepoTest(t)

	q := capitals()
	q.ID = 1
	mock.ExpectExec("^UPDATE questions SET question = \\$1, (.+) WHERE id = \\$7").
		WithArgs("Capital of France?", "Paris", "Rome", "Berlin", "Madrid", "Paris", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("^UPDATE questions").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "questions_question_key"})

	assert.NoError(t, repo.Update(context.Background(), q))
	assert.ErrorIs(t, repo.Update(context.Background(), q), questions.ErrDuplicateQuestion)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	repo, mock := setupQuestionRepoTest(t)

	mock.ExpectExec("^DELETE FROM questions WHERE id = \\$1").WithArgs(int64(4)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("^DELETE FROM questions").WithArgs(int64(5)).WillReturnError(errors.New("connection reset"))

	assert.ErrorIs(t, repo.Delete(context.Background(), 4), questions.ErrNotFound)
	assert.Error(t, repo.Delete(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}
