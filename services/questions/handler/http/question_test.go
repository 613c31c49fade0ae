package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/services/questions"
	"github.com/chetanshingare9301/Exam-Management-System/services/questions/mocks"
)

var testAdmin = &models.Principal{ID: 1, Name: "Admin", Role: models.KindAdmin}

func newContext(method, path, body string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	if len(params) == 1 {
		c.SetParamNames("id")
		c.SetParamValues(params[0])
	}
	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

const capitalsBody = `{"question":"Capital of France?","option1":"Paris","option2":"Rome","option3":"Berlin","option4":"Madrid","answer":"Paris"}`

func TestCreateQuestion_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockQuestionUC(ctrl)
	h := NewQuestionHandler(mockUC)

	mockUC.EXPECT().
		CreateQuestion(gomock.Any(), &models.QuestionRequest{
			Text:    "Capital of France?",
			Option1: "Paris", Option2: "Rome", Option3: "Berlin", Option4: "Madrid",
			Answer: "Paris",
		}).
		Return(&models.Question{ID: 4, Text: "Capital of France?", Answer: "Paris"}, nil)

	c, rec := newContext(http.MethodPost, "/admin/questions", capitalsBody)

	// Act
	err := h.CreateQuestion(c, testAdmin)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	response := decode(t, rec)
	assert.Equal(t, "Question added successfully", response["message"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Capital of France?", data["question"])
}

func TestCreateQuestion_Errors(t *testing.T) {
	tests := []struct {
		name       string
		ucErr      error
		wantStatus int
		wantError  string
	}{
		{"answer not an option", questions.InvalidInput("the answer must be one of the provided options"), http.StatusBadRequest, "invalid input: the answer must be one of the provided options"},
		{"duplicate", questions.ErrDuplicateQuestion, http.StatusConflict, "A question with this text already exists."},
		{"store down", errors.New("db down"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockQuestionUC(ctrl)
			h := NewQuestionHandler(mockUC)
			mockUC.EXPECT().CreateQuestion(gomock.Any(), gomock.Any()).Return(nil, tt.ucErr)

			c, rec := newContext(http.MethodPost, "/admin/questions", capitalsBody)

			require.NoError(t, h.CreateQuestion(c, testAdmin))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, decode(t, rec)["error"])
		})
	}
}

func TestGetQuestion_BadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewQuestionHandler(mocks.NewMockQuestionUC(ctrl))
	c, rec := newContext(http.MethodGet, "/admin/questions/x", "", "x")

	require.NoError(t, h.GetQuestion(c, testAdmin))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid question ID", decode(t, rec)["error"])
}

func TestListQuestions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockQuestionUC(ctrl)
	h := NewQuestionHandler(mockUC)
	mockUC.EXPECT().ListQuestions(gomock.Any()).Return([]*models.Question{}, nil)

	c, rec := newContext(http.MethodGet, "/admin/questions", "")

	require.NoError(t, h.ListQuestions(c, testAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []interface{}{}, decode(t, rec)["data"])
}

func TestUpdateQuestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockQuestionUC(ctrl)
	h := NewQuestionHandler(mockUC)
	mockUC.EXPECT().UpdateQuestion(gomock.Any(), int64(5), gomock.Any()).Return(nil, questions.ErrNotFound)

	c, rec := newContext(http.MethodPut, "/admin/questions/5", capitalsBody, "5")

	require.NoError(t, h.UpdateQuestion(c, testAdmin))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Question not found", decode(t, rec)["error"])
}

func TestDeleteQuestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockQuestionUC(ctrl)
	h := NewQuestionHandler(mockUC)
	mockUC.EXPECT().DeleteQuestion(gomock.Any(), int64(5)).Return(nil)

	c, rec := newContext(http.MethodDelete, "/admin/questions/5", "", "5")

	require.NoError(t, h.DeleteQuestion(c, testAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Question deleted successfully", decode(t, rec)["message"])
}
