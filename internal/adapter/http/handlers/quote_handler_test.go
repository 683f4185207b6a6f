package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"umzug_backoffice/internal/adapter/http/handlers/mocks"
	"umzug_backoffice/internal/domain/entities"
	"umzug_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_CalculateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/calculate", h.CalculateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/calculate", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing customer id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/calculate", h.CalculateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/calculate", bytes.NewBufferString(`{"details":{"volume":20}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("customer not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/calculate", h.CalculateQuote)

		uc.EXPECT().Preview(gomock.Any(), "cust-1", gomock.Any()).Return(entities.QuoteCalculation{}, usecase.ErrCustomerNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/calculate", bytes.NewBufferString(`{"customer_id":"cust-1","details":{"volume":20}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/calculate", h.CalculateQuote)

		uc.EXPECT().Preview(gomock.Any(), "cust-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, d entities.QuoteDetails) (entities.QuoteCalculation, error) {
				if d.Volume != 12 || d.Distance != 120 || d.BoxCount != 10 || !d.PackingRequested {
					t.Fatalf("details not mapped: %+v", d)
				}
				return entities.QuoteCalculation{BasePrice: 749, TotalPrice: 1254, FinalPrice: 1254}, nil
			},
		)

		body := `{"customer_id":"cust-1","details":{"volume":12,"distance":120,"box_count":10,"packing_requested":true}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/calculate", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["final_price"] != 1254.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if resp["formatted_final_price"] != "1.254,00 €" {
			t.Fatalf("unexpected formatted price: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().Create(gomock.Any(), "cust-1", gomock.Any()).Return(
			entities.Quote{ID: "q-1", CustomerID: "cust-1", Price: 899, Status: entities.QuoteStatusDraft, Version: 1},
			entities.QuoteCalculation{BasePrice: 899, TotalPrice: 899, FinalPrice: 899},
			nil,
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"customer_id":"cust-1","details":{"volume":20,"distance":30}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Quote struct {
				ID     string  `json:"id"`
				Price  float64 `json:"price"`
				Status string  `json:"status"`
			} `json:"quote"`
			Calculation struct {
				FinalPrice float64 `json:"final_price"`
			} `json:"calculation"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Quote.ID != "q-1" || resp.Quote.Status != "draft" || resp.Calculation.FinalPrice != 899 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("usecase error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().Create(gomock.Any(), "cust-1", gomock.Any()).Return(entities.Quote{}, entities.QuoteCalculation{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"customer_id":"cust-1","details":{"volume":20}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_GetAndList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id", h.GetQuoteByID)

		uc.EXPECT().GetByID(gomock.Any(), "q-404").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list by customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes", h.ListQuotes)

		uc.EXPECT().ListByCustomerID(gomock.Any(), "cust-1").Return([]entities.Quote{{ID: "q-1"}, {ID: "q-2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes?customer_id=cust-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if len(resp) != 2 {
			t.Fatalf("expected 2 quotes, got %s", w.Body.String())
		}
	})

	t.Run("list without customer id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes", h.ListQuotes)

		uc.EXPECT().ListByCustomerID(gomock.Any(), "").Return(nil, usecase.ErrInvalidCustomerID)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_StatusTransitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("send success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/send", h.SendQuote)

		uc.EXPECT().SendByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusSent}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/send", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("accept conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/accept", h.AcceptQuote)

		uc.EXPECT().AcceptByID(gomock.Any(), "q-1").Return(entities.Quote{}, usecase.ErrInvalidStatusTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("confirm success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/confirm", h.ConfirmQuote)

		uc.EXPECT().ConfirmByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusConfirmed}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/confirm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("decline success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/decline", h.DeclineQuote)

		uc.EXPECT().DeclineByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusDeclined}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/decline", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_UpdateQuotePrice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/price", h.UpdateQuotePrice)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/price", bytes.NewBufferString(`{"price":-100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/price", h.UpdateQuotePrice)

		uc.EXPECT().UpdateQuotePrice(gomock.Any(), "q-1", 1200.0).Return(entities.Quote{ID: "q-1", Price: 1200}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/price", bytes.NewBufferString(`{"price":1200}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_ReviseQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)

	r := gin.New()
	r.POST("/v1/quotes/:id/revise", h.ReviseQuote)

	uc.EXPECT().Revise(gomock.Any(), "q-1", gomock.Any()).Return(
		entities.Quote{ID: "q-2", ParentQuoteID: "q-1", Version: 2},
		entities.QuoteCalculation{FinalPrice: 1099},
		nil,
	)

	req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/revise", bytes.NewBufferString(`{"details":{"volume":25}}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var resp struct {
		Quote struct {
			ID            string `json:"id"`
			ParentQuoteID string `json:"parent_quote_id"`
			Version       int    `json:"version"`
		} `json:"quote"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Quote.ID != "q-2" || resp.Quote.ParentQuoteID != "q-1" || resp.Quote.Version != 2 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestMapQuoteError(t *testing.T) {
	if got := mapQuoteError(usecase.ErrInvalidQuoteID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrInvalidQuotePrice); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrInvalidCustomerID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrQuoteNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuoteError(usecase.ErrCustomerNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuoteError(usecase.ErrInvalidStatusTransition); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapQuoteError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
