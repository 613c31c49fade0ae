package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/session"
	"github.com/chetanshingare9301/Exam-Management-System/services/accounts"
	"github.com/chetanshingare9301/Exam-Management-System/services/accounts/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	h := NewProfileHandler(mockUC, newTestSessions(t))
	p := &models.Principal{ID: 7, Role: models.KindStudent}

	mockUC.EXPECT().GetProfile(gomock.Any(), int64(7)).Return(studentAccount(), nil)
	c, rec := newJSONContext(http.MethodGet, "/student/profile", "", nil)

	// Act
	err := h.GetProfile(c, p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "asha", data["username"])
	assert.NotContains(t, data, "password_hash")
}

func TestGetProfile_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	h := NewProfileHandler(mockUC, newTestSessions(t))

	mockUC.EXPECT().GetProfile(gomock.Any(), int64(99)).Return(nil, accounts.ErrNotFound)
	c, rec := newJSONContext(http.MethodGet, "/student/profile", "", nil)

	require.NoError(t, h.GetProfile(c, &models.Principal{ID: 99, Role: models.KindStudent}))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateProfile_RefreshesSession(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	sessions := newTestSessions(t)
	h := NewProfileHandler(mockUC, sessions)

	p := &models.Principal{ID: 7, Name: "Asha", Role: models.KindStudent, Username: "asha"}
	sess := &session.Session{Principal: p}
	cookies := issueCookies(t, sessions, sess)

	updated := studentAccount()
	updated.Kind = ""
	updated.Username = "asha.r"
	mockUC.EXPECT().
		UpdateProfile(gomock.Any(), int64(7), &models.ProfileUpdateRequest{Name: "Asha Rao", Username: "asha.r"}).
		Return(updated, nil)

	c, rec := newJSONContext(http.MethodPut, "/student/profile", `{"name":"Asha Rao","username":"asha.r"}`, cookies)

	// Act
	err := h.UpdateProfile(c, p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	req, _ := newJSONContext(http.MethodGet, "/", "", cookies)
	reloaded, err := sessions.Load(req.Request().Context(), req.Request())
	require.NoError(t, err)
	assert.Equal(t, sess.ID, reloaded.ID)
	assert.Equal(t, "asha.r", reloaded.Principal.Username)
	assert.Equal(t, "Asha Rao", reloaded.Principal.Name)
	assert.Equal(t, models.KindStudent, reloaded.Principal.Role)
}

func TestUpdateProfile_Errors(t *testing.T) {
	tests := []struct {
		name       string
		ucErr      error
		wantStatus int
	}{
		{"username taken", &accounts.DuplicateIdentifierError{Field: "username"}, http.StatusConflict},
		{"nothing to update", accounts.InvalidInput("no fields to update"), http.StatusBadRequest},
		{"store down", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockAccountUC(ctrl)
			h := NewProfileHandler(mockUC, newTestSessions(t))
			mockUC.EXPECT().UpdateProfile(gomock.Any(), int64(7), gomock.Any()).Return(nil, tt.ucErr)

			c, rec := newJSONContext(http.MethodPut, "/student/profile", `{"username":"taken"}`, nil)

			require.NoError(t, h.UpdateProfile(c, &models.Principal{ID: 7, Role: models.KindStudent}))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
