package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"rede_saude/internal/adapter/http/handlers/mocks"
	"rede_saude/internal/domain/entities"
	"rede_saude/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPlanHandler_ListPlans(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlanUseCase(ctrl)
		h := NewPlanHandler(uc)

		r := gin.New()
		r.GET("/v1/plans", h.ListPlans)

		uc.EXPECT().ListActive(gomock.Any()).Return([]entities.Plan{
			{ID: "plan-1", Name: "Essencial", Price: 149.90, Active: true},
			{ID: "plan-2", Name: "Completo", Price: 289.90, Active: true},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/plans", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if len(got) != 2 || got[0]["id"] != "plan-1" {
			t.Fatalf("unexpected body: %v", got)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlanUseCase(ctrl)
		h := NewPlanHandler(uc)

		r := gin.New()
		r.GET("/v1/plans", h.ListPlans)

		uc.EXPECT().ListActive(gomock.Any()).Return(nil, errors.New("dynamodb unavailable"))

		req := httptest.NewRequest(http.MethodGet, "/v1/plans", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestPlanHandler_GetPlan(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlanUseCase(ctrl)
		h := NewPlanHandler(uc)

		r := gin.New()
		r.GET("/v1/plans/:plan_id", h.GetPlan)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Plan{}, usecase.ErrPlanNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/plans/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPlanUseCase(ctrl)
		h := NewPlanHandler(uc)

		r := gin.New()
		r.GET("/v1/plans/:plan_id", h.GetPlan)

		uc.EXPECT().GetByID(gomock.Any(), "plan-1").Return(entities.Plan{ID: "plan-1", Name: "Essencial", Price: 149.90, Active: true}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/plans/plan-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
