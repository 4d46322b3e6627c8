package booking

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, _ := setupTestService(t)
	h := NewHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", int64(42))
		c.Set("role", "agent")
		c.Next()
	})

	v1 := r.Group("/api/v1")
	RegisterRoutes(v1, h)
	return r
}

func doJSONRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestCreateAcceptsZeroTotalAmount(t *testing.T) {
	r := setupTestRouter(t)

	rr := doJSONRequest(r, http.MethodPost, "/api/v1/bookings", map[string]any{
		"total_amount": 0,
		"description":  "complimentary upgrade",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 for zero-total booking, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Success bool    `json:"success"`
		Data    Booking `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid create response: %v", err)
	}
	if !resp.Success {
		t.Fatal("expected success envelope")
	}
	if resp.Data.TotalAmount != 0 || resp.Data.PaymentStatus != PaymentUnpaid {
		t.Fatalf("unexpected booking: total=%v payment_status=%s", resp.Data.TotalAmount, resp.Data.PaymentStatus)
	}
}

func TestCreateRejectsNegativeTotalAmount(t *testing.T) {
	r := setupTestRouter(t)

	rr := doJSONRequest(r, http.MethodPost, "/api/v1/bookings", map[string]any{
		"total_amount": -10,
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative total, got %d body=%s", rr.Code, rr.Body.String())
	}
}
