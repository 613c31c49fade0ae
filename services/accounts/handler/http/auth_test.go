package http

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/session"
	"github.com/chetanshingare9301/Exam-Management-System/services/accounts"
	"github.com/chetanshingare9301/Exam-Management-System/services/accounts/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func studentAccount() *models.Account {
	return &models.Account{
		ID:              7,
		Kind:            models.KindStudent,
		Name:            "Asha Rao",
		Email:           "asha@example.com",
		Contact:         "9876543210",
		Username:        "asha",
		EmailVerified:   true,
		ContactVerified: true,
		CreatedAt:       time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestRegisterStudent_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	sessions := newTestSessions(t)
	h := NewAuthHandler(mockUC, sessions)

	body := `{"name":"Asha Rao","password":"secret1","email":"asha@example.com","contact":"9876543210","username":"asha"}`
	c, rec := newJSONContext(http.MethodPost, "/student/register", body, nil)

	account := studentAccount()
	account.EmailVerified, account.ContactVerified = false, false
	mockUC.EXPECT().
		Register(gomock.Any(), models.KindStudent, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ models.Kind, req *models.RegisterRequest) (*models.RegisterResult, error) {
			assert.Equal(t, "asha", req.Username)
			assert.Equal(t, "9876543210", req.Contact)
			return &models.RegisterResult{
				Account:          account,
				EmailDelivered:   true,
				ContactDelivered: false,
				Pending:          &models.PendingVerification{Email: "asha@example.com", Contact: "9876543210", Kind: models.KindStudent},
			}, nil
		})

	// Act
	err := h.RegisterStudent(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, true, response["success"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, true, data["email_delivered"])
	assert.Equal(t, false, data["contact_delivered"])

	sess := loadIssued(t, sessions, rec)
	assert.Nil(t, sess.Principal)
	require.NotNil(t, sess.Pending)
	assert.Equal(t, models.KindStudent, sess.Pending.Kind)
	assert.Equal(t, "9876543210", sess.Pending.Contact)
}

func TestRegisterAdmin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
		wantError  string
	}{
		{"invalid payload", `{bad`, nil, http.StatusBadRequest, "Invalid request payload"},
		{"duplicate email", `{"email":"a@b.co"}`, &accounts.DuplicateIdentifierError{Field: "email"}, http.StatusConflict, "an account with this email already exists"},
		{"validation", `{"email":"nope"}`, accounts.InvalidInput("email is invalid"), http.StatusBadRequest, "invalid input: email is invalid"},
		{"store down", `{"email":"a@b.co"}`, errors.New("connection refused"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockAccountUC(ctrl)
			h := NewAuthHandler(mockUC, newTestSessions(t))
			c, rec := newJSONContext(http.MethodPost, "/admin/register", tt.body, nil)

			if tt.ucErr != nil {
				mockUC.EXPECT().Register(gomock.Any(), models.KindAdmin, gomock.Any()).Return(nil, tt.ucErr)
			}

			// Act
			err := h.RegisterAdmin(c)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			response := decodeBody(t, rec)
			assert.Equal(t, false, response["success"])
			assert.Equal(t, tt.wantError, response["error"])
			assert.Empty(t, rec.Result().Cookies())
		})
	}
}

func TestLoginAdmin_Loggable(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	sessions := newTestSessions(t)
	h := NewAuthHandler(mockUC, sessions)

	admin := &models.Account{ID: 1, Kind: models.KindAdmin, Name: "Principal Admin", Email: "admin@example.com", EmailVerified: true, ContactVerified: true}
	mockUC.EXPECT().
		Login(gomock.Any(), models.KindAdmin, &models.LoginRequest{Email: "admin@example.com", Password: "secret1"}).
		Return(&models.LoginResult{Account: admin}, nil)

	c, rec := newJSONContext(http.MethodPost, "/admin/login", `{"email":"admin@example.com","password":"secret1"}`, nil)

	// Act
	err := h.LoginAdmin(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "/adminHome", data["redirect"])

	sess := loadIssued(t, sessions, rec)
	require.NotNil(t, sess.Principal)
	assert.Equal(t, int64(1), sess.Principal.ID)
	assert.Equal(t, models.KindAdmin, sess.Principal.Role)
	assert.Nil(t, sess.Pending)
}

func TestLoginStudent_RequiresVerification(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	sessions := newTestSessions(t)
	h := NewAuthHandler(mockUC, sessions)

	mockUC.EXPECT().
		Login(gomock.Any(), models.KindStudent, gomock.Any()).
		Return(&models.LoginResult{RequiresVerification: true, Email: "asha@example.com", Contact: "9876543210"}, nil)

	c, rec := newJSONContext(http.MethodPost, "/student/login", `{"email":"asha@example.com","password":"secret1"}`, nil)

	// Act
	err := h.LoginStudent(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, true, data["requires_verification"])

	sess := loadIssued(t, sessions, rec)
	assert.Nil(t, sess.Principal)
	assert.Equal(t, &models.PendingVerification{Email: "asha@example.com", Contact: "9876543210", Kind: models.KindStudent}, sess.Pending)
}

func TestLoginStudent_RotatesExistingSession(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	sessions := newTestSessions(t)
	h := NewAuthHandler(mockUC, sessions)

	pending := &session.Session{Pending: &models.PendingVerification{Email: "asha@example.com", Kind: models.KindStudent}}
	cookies := issueCookies(t, sessions, pending)
	oldID := pending.ID

	mockUC.EXPECT().Login(gomock.Any(), models.KindStudent, gomock.Any()).Return(&models.LoginResult{Account: studentAccount()}, nil)
	c, rec := newJSONContext(http.MethodPost, "/student/login", `{"email":"asha@example.com","password":"secret1"}`, cookies)

	// Act
	err := h.LoginStudent(c)

	// Assert
	require.NoError(t, err)
	sess := loadIssued(t, sessions, rec)
	assert.NotEqual(t, oldID, sess.ID)
	assert.Equal(t, "asha", sess.Principal.Username)
	assert.Nil(t, sess.Pending)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	h := NewAuthHandler(mockUC, newTestSessions(t))

	mockUC.EXPECT().Login(gomock.Any(), models.KindStudent, gomock.Any()).Return(nil, accounts.ErrInvalidCredentials)
	c, rec := newJSONContext(http.MethodPost, "/student/login", `{"email":"asha@example.com","password":"wrong"}`, nil)

	// Act
	err := h.LoginStudent(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", decodeBody(t, rec)["error"])
	assert.Empty(t, rec.Result().Cookies())
}

func TestVerifyOTP_NoPendingSession(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAuthHandler(mocks.NewMockAccountUC(ctrl), newTestSessions(t))
	c, rec := newJSONContext(http.MethodPost, "/verify-otp", `{"email_otp":"123456"}`, nil)

	// Act
	err := h.VerifyOTP(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No verification in progress", decodeBody(t, rec)["error"])
}

func TestVerifyOTP_FullyVerified(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	sessions := newTestSessions(t)
	h := NewAuthHandler(mockUC, sessions)

	pending := &models.PendingVerification{Email: "asha@example.com", Contact: "9876543210", Kind: models.KindStudent}
	cookies := issueCookies(t, sessions, &session.Session{Pending: pending})

	mockUC.EXPECT().
		CompleteVerification(gomock.Any(), pending, "123456", "654321").
		Return(&models.VerificationResult{
			Email:         models.ChannelStatus{Channel: models.ChannelEmail, Verified: true, Message: "verified"},
			Contact:       models.ChannelStatus{Channel: models.ChannelContact, Verified: true, Message: "verified"},
			FullyVerified: true,
			Account:       studentAccount(),
		}, nil)

	c, rec := newJSONContext(http.MethodPost, "/verify-otp", `{"email_otp":" 123456 ","contact_otp":"654321"}`, cookies)

	// Act
	err := h.VerifyOTP(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, "Account fully verified! You can now log in.", response["message"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "/studentlogin", data["redirect"])
	assert.Equal(t, true, data["fully_verified"])

	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, -1, cleared[0].MaxAge)
}

func TestVerifyOTP_PartialFailure(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	sessions := newTestSessions(t)
	h := NewAuthHandler(mockUC, sessions)

	pending := &models.PendingVerification{Email: "admin@example.com", Contact: "9876543210", Kind: models.KindAdmin}
	cookies := issueCookies(t, sessions, &session.Session{Pending: pending})

	mockUC.EXPECT().
		CompleteVerification(gomock.Any(), pending, "123456", "").
		Return(&models.VerificationResult{
			Email:   models.ChannelStatus{Channel: models.ChannelEmail, Verified: true, Message: "verified"},
			Contact: models.ChannelStatus{Channel: models.ChannelContact, Err: accounts.ErrCodeRequired, Message: accounts.ErrCodeRequired.Error()},
		}, nil)

	c, rec := newJSONContext(http.MethodPost, "/verify-otp", `{"email_otp":"123456"}`, cookies)

	// Act
	err := h.VerifyOTP(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Contact: OTP is required", response["error"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, false, data["fully_verified"])
	assert.Empty(t, rec.Result().Cookies())
}

func TestVerifyOTP_StoreFailure(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	sessions := newTestSessions(t)
	h := NewAuthHandler(mockUC, sessions)

	cookies := issueCookies(t, sessions, &session.Session{Pending: &models.PendingVerification{Email: "a@b.co", Kind: models.KindAdmin}})
	mockUC.EXPECT().CompleteVerification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	c, rec := newJSONContext(http.MethodPost, "/verify-otp", `{"email_otp":"1"}`, cookies)

	// Act
	err := h.VerifyOTP(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestResendOTP(t *testing.T) {
	pending := &models.PendingVerification{Email: "asha@example.com", Contact: "9876543210", Kind: models.KindStudent}

	tests := []struct {
		name        string
		body        string
		identifier  string
		channel     models.Channel
		result      *models.ResendResult
		wantMessage string
	}{
		{"email delivered", `{"channel":"email"}`, "asha@example.com", models.ChannelEmail,
			&models.ResendResult{Channel: models.ChannelEmail, Delivered: true}, "A new OTP has been sent"},
		{"contact not delivered", `{"channel":"contact"}`, "9876543210", models.ChannelContact,
			&models.ResendResult{Channel: models.ChannelContact}, "A new OTP was generated but could not be delivered. Please try again."},
		{"already verified", `{"channel":"email"}`, "asha@example.com", models.ChannelEmail,
			&models.ResendResult{Channel: models.ChannelEmail, AlreadyVerified: true}, "This channel is already verified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockAccountUC(ctrl)
			sessions := newTestSessions(t)
			h := NewAuthHandler(mockUC, sessions)
			cookies := issueCookies(t, sessions, &session.Session{Pending: pending})

			mockUC.EXPECT().Resend(gomock.Any(), models.KindStudent, tt.channel, tt.identifier).Return(tt.result, nil)
			c, rec := newJSONContext(http.MethodPost, "/resend-otp", tt.body, cookies)

			// Act
			err := h.ResendOTP(c)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeBody(t, rec)["message"])
		})
	}
}

func TestResendOTP_Rejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAuthHandler(mocks.NewMockAccountUC(ctrl), newTestSessions(t))

	c, rec := newJSONContext(http.MethodPost, "/resend-otp", `{"channel":"fax"}`, nil)
	require.NoError(t, h.ResendOTP(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newJSONContext(http.MethodPost, "/resend-otp", `{"channel":"email"}`, nil)
	require.NoError(t, h.ResendOTP(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No verification in progress", decodeBody(t, rec)["error"])
}

func TestLogout(t *testing.T) {
	tests := []struct {
		name         string
		sess         *session.Session
		wantRedirect string
	}{
		{"admin", &session.Session{Principal: &models.Principal{ID: 1, Role: models.KindAdmin}}, "/adminlogin"},
		{"student", &session.Session{Principal: &models.Principal{ID: 2, Role: models.KindStudent}}, "/studentlogin"},
		{"pending student", &session.Session{Pending: &models.PendingVerification{Email: "a@b.co", Kind: models.KindStudent}}, "/studentlogin"},
		{"no session", nil, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sessions := newTestSessions(t)
			h := NewAuthHandler(mocks.NewMockAccountUC(ctrl), sessions)

			var cookies []*http.Cookie
			if tt.sess != nil {
				cookies = issueCookies(t, sessions, tt.sess)
			}
			c, rec := newJSONContext(http.MethodPost, "/logout", "", cookies)

			// Act
			err := h.Logout(c)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)
			data := decodeBody(t, rec)["data"].(map[string]interface{})
			assert.Equal(t, tt.wantRedirect, data["redirect"])

			if tt.sess != nil {
				req, _ := newJSONContext(http.MethodGet, "/", "", cookies)
				_, err := sessions.Load(req.Request().Context(), req.Request())
				assert.ErrorIs(t, err, session.ErrSessionNotFound)
			}
		})
	}
}

func TestErrorResponse_Expired(t *testing.T) {
	c, rec := newJSONContext(http.MethodPost, "/verify-otp", "", nil)

	require.NoError(t, errorResponse(c, accounts.ErrExpired))

	assert.Equal(t, http.StatusGone, rec.Code)
	assert.Equal(t, "OTP has expired", decodeBody(t, rec)["error"])
}
