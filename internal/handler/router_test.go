//go:build unit

package handler_test

import (
	"net/http"
	"testing"
	"time"

	"hall-booking/internal/domain/user"
	"hall-booking/internal/handler"
	"hall-booking/internal/handler/api"
	"hall-booking/internal/handler/middleware"
	"hall-booking/internal/pkg/config"
	"hall-booking/internal/pkg/jwt"
	"hall-booking/internal/usecase"
	"hall-booking/tests/common/builder"
	"hall-booking/tests/common/httptest"
	commandsmock "hall-booking/tests/mock/commands"
	queriesmock "hall-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RouterTestSuite drives requests through the real router and auth
// middleware with issued tokens, so the role gates themselves are
// under test rather than a stand-in middleware.
type RouterTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	catalogCmds  *commandsmock.MockCatalogCommands
	tariffCmds   *commandsmock.MockTariffCommands
	bookingCmds  *commandsmock.MockBookingCommands
	catalogQrys  *queriesmock.MockCatalogQueries
	bookingQrys  *queriesmock.MockBookingQueries
	viewerToken  string
	operatorToken string
	adminToken   string
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.catalogCmds = commandsmock.NewMockCatalogCommands(s.mockCtrl)
	s.tariffCmds = commandsmock.NewMockTariffCommands(s.mockCtrl)
	s.bookingCmds = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.catalogQrys = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.bookingQrys = queriesmock.NewMockBookingQueries(s.mockCtrl)

	handlers := handler.Handlers{
		Auth:         api.NewAuthHandler(commandsmock.NewMockAuthCommands(s.mockCtrl), queriesmock.NewMockUserQueries(s.mockCtrl), config.NewTestConfig()),
		Catalog:      api.NewCatalogHandler(s.catalogQrys),
		Quote:        api.NewQuoteHandler(queriesmock.NewMockQuoteQueries(s.mockCtrl)),
		Booking:      api.NewBookingHandler(s.bookingCmds, s.bookingQrys),
		AdminCatalog: api.NewAdminCatalogHandler(s.catalogCmds, s.catalogQrys),
		AdminTariff:  api.NewAdminTariffHandler(s.tariffCmds, s.catalogQrys),
	}

	jwtService := jwt.NewService("router-test-secret", time.Hour)
	authMiddleware := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwtService))
	handler.NewRouter(s.router, config.NewTestConfig(), handlers, authMiddleware)

	s.viewerToken = s.issueToken(jwtService, user.RoleViewer)
	s.operatorToken = s.issueToken(jwtService, user.RoleOperator)
	s.adminToken = s.issueToken(jwtService, user.RoleAdmin)
}

func (s *RouterTestSuite) issueToken(svc *jwt.Service, role user.Role) string {
	token, err := svc.GenerateToken(uuid.New(), role)
	s.Require().NoError(err)
	return token
}

func (s *RouterTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) TestAdminMutationsRequireAdminRole() {
	hallBody := builder.NewHallBuilder().BuildCreateRequestDTO()

	s.Run("admin can create a hall", func() {
		id := uuid.New()
		s.catalogCmds.EXPECT().CreateHall(gomock.Any(), gomock.Any()).Return(id, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/halls", hallBody, s.adminToken)
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("operator cannot create a hall", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/halls", hallBody, s.operatorToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("operator cannot delete a price set", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/admin/price-sets/"+uuid.NewString(), nil, s.operatorToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("operator cannot create a season rule", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/season-rules", map[string]any{}, s.operatorToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("operator cannot put a rate card", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/admin/halls/"+uuid.NewString()+"/rates", map[string]any{}, s.operatorToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *RouterTestSuite) TestOperatorWorkflowsStayOpen() {
	s.Run("operator updates booking request status", func() {
		id := uuid.New()
		s.bookingCmds.EXPECT().UpdateStatus(gomock.Any(), id, "contacted").Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/admin/booking-requests/"+id.String()+"/status",
			map[string]string{"status": "contacted"}, s.operatorToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("operator lists rate cards", func() {
		id := uuid.New()
		s.catalogQrys.EXPECT().ListRateCards(gomock.Any(), id).Return(nil, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/halls/"+id.String()+"/rates", nil, s.operatorToken)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("viewer cannot reach the admin group at all", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/price-sets", nil, s.viewerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("missing token is rejected before role checks", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/price-sets", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}
