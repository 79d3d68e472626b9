package holiday_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-leave/internal/holiday"
	holidayerrors "go-leave/internal/holiday/errors"
	holidayMock "go-leave/internal/holiday/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHolidayHandler_Create_Conflict(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := holidayMock.NewMockService(ctrl)
	h := holiday.NewHandler(svc)

	svc.EXPECT().
		Create(gomock.Any(), holiday.CreateHolidayRequest{Name: "New Year", Date: "2024-01-01"}).
		Return(holiday.HolidayResponse{}, holidayerrors.ErrHolidayAlreadyExists)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/holidays",
		strings.NewReader(`{"name":"New Year","date":"2024-01-01"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "CONFLICT")
}

func TestHolidayHandler_List_InvalidYear(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	h := holiday.NewHandler(holidayMock.NewMockService(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/holidays?year=abc", nil)

	h.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHolidayHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := holidayMock.NewMockService(ctrl)
	h := holiday.NewHandler(svc)

	svc.EXPECT().List(gomock.Any(), 2024).Return([]holiday.HolidayResponse{{Name: "New Year", Date: "2024-01-01"}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/holidays?year=2024", nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2024-01-01")
}
