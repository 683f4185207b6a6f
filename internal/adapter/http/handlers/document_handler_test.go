package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"umzug_backoffice/internal/adapter/http/handlers/mocks"
	"umzug_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDocumentHandler_EmailQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/email", h.EmailQuote)

		uc.EXPECT().EmailQuote(gomock.Any(), "q-1").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/email", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/email", h.EmailQuote)

		uc.EXPECT().EmailQuote(gomock.Any(), "q-404").Return(usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-404/email", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delivery failure maps to bad gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/email", h.EmailQuote)

		uc.EXPECT().EmailQuote(gomock.Any(), "q-1").Return(errors.New("smtp down"))

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/email", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestDocumentHandler_QuotePDF(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDocumentUseCase(ctrl)
	h := NewDocumentHandler(uc)

	r := gin.New()
	r.GET("/v1/quotes/:id/pdf", h.QuotePDF)

	uc.EXPECT().QuotePDF(gomock.Any(), "q-1").Return([]byte("%PDF-1.7 content"), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1/pdf", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "Umzugsangebot-q-1.pdf") {
		t.Fatalf("unexpected content disposition: %q", cd)
	}
	if !strings.HasPrefix(w.Body.String(), "%PDF-") {
		t.Fatalf("expected pdf body, got %q", w.Body.String())
	}
}

func TestDocumentHandler_WorkOrderPDF(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDocumentUseCase(ctrl)
	h := NewDocumentHandler(uc)

	r := gin.New()
	r.GET("/v1/quotes/:id/work-order", h.WorkOrderPDF)

	uc.EXPECT().WorkOrderPDF(gomock.Any(), "q-1").Return([]byte("%PDF-1.7"), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1/work-order", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "Arbeitsauftrag-q-1.pdf") {
		t.Fatalf("unexpected content disposition: %q", cd)
	}
}

func TestServiceHandler_ListServices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewServiceHandler()
	r := gin.New()
	r.GET("/v1/services", h.ListServices)

	req := httptest.NewRequest(http.MethodGet, "/v1/services", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Klaviertransport") {
		t.Fatalf("catalog missing piano service: %s", w.Body.String())
	}
}
