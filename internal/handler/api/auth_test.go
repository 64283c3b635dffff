//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/rahma103/calendrier-reservation-v2/internal/handler/api"
	reqdto "github.com/rahma103/calendrier-reservation-v2/internal/handler/dto/request"
	"github.com/rahma103/calendrier-reservation-v2/internal/pkg/config"
	"github.com/rahma103/calendrier-reservation-v2/internal/pkg/cookie"
	"github.com/rahma103/calendrier-reservation-v2/internal/pkg/errs"
	"github.com/rahma103/calendrier-reservation-v2/internal/pkg/jwt"
	"github.com/rahma103/calendrier-reservation-v2/internal/usecase/commands"
	"github.com/rahma103/calendrier-reservation-v2/tests/common/httptest"
	commandsmock "github.com/rahma103/calendrier-reservation-v2/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockAuth   *commandsmock.MockAuthCommands
	jwtService *jwt.Service
	handler    *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.jwtService = jwt.NewService("test-secret", time.Hour)
	s.handler = api.NewAuthHandler(s.mockAuth, s.jwtService, config.NewTestConfig())

	s.router.POST("/login", s.handler.Login)
	s.router.POST("/logout", s.handler.Logout)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/login"
	body := reqdto.LoginRequest{Username: "rahma", Password: "motdepasse"}

	s.Run("success: sets the session cookie", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(&commands.LoginResult{Username: "rahma", Token: "signed-token"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"username":"rahma"`)

		c := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(c)
		s.Equal("signed-token", c.Value)
		s.True(c.HttpOnly)
	})

	s.Run("invalid credentials: 401", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Contains(rec.Body.String(), "Identifiants incorrects.")
	})

	s.Run("missing fields: 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.LoginRequest{Username: "rahma"}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/logout", nil, "")
	s.Equal(http.StatusNoContent, rec.Code)

	c := httptest.ExtractCookie(rec, cookie.SessionCookieName)
	s.Require().NotNil(c)
	s.Empty(c.Value)
	s.Negative(c.MaxAge)
}
