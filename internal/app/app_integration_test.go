//go:build integration

package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haugsdal/packboard/config"
	"github.com/haugsdal/packboard/internal/testutil"
)

func newIntegrationApp(t *testing.T) *Application {
	t.Helper()

	t.Setenv("MONGODB_URI", testutil.SharedMongoURI())
	t.Setenv("MONGODB_DATABASE", testutil.TestDBName(t.Name()))

	appl := InitializeApp(config.Load())
	require.NotNil(t, appl.Router)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		appl.Close(ctx)
	})
	return appl
}

func doJSON(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestApp_EndToEnd(t *testing.T) {
	appl := newIntegrationApp(t)
	router := appl.Router

	w := doJSON(router, http.MethodGet, "/readyz", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Reference data first.
	w = doJSON(router, http.MethodPost, "/api/customers", `{"name":"Kafe Fjell"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var customerResp struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &customerResp))

	w = doJSON(router, http.MethodPost, "/api/products", `{"name":"Sourdough loaf","category":"bread","unit":"pcs","price":"34.50"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var productResp struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &productResp))

	// An order for tomorrow's delivery.
	orderBody := `{"customer_id":"` + customerResp.Data.ID + `","delivery_date":"2026-09-02","lines":[{"product_id":"` + productResp.Data.ID + `","quantity":4}]}`
	w = doJSON(router, http.MethodPost, "/api/orders", orderBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var orderResp struct {
		Data struct {
			ID    string `json:"id"`
			Lines []struct {
				ID          string `json:"id"`
				ProductName string `json:"product_name"`
			} `json:"lines"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orderResp))
	require.Len(t, orderResp.Data.Lines, 1)
	assert.Equal(t, "Sourdough loaf", orderResp.Data.Lines[0].ProductName)

	// The board shows the customer at zero progress.
	w = doJSON(router, http.MethodGet, "/api/packing?date=2026-09-02", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Kafe Fjell")
	assert.Contains(t, w.Body.String(), `"progress_percentage":0`)

	// Pack the only line; the board flips to completed.
	lineID := orderResp.Data.Lines[0].ID
	w = doJSON(router, http.MethodPut, "/api/orders/"+orderResp.Data.ID+"/lines/"+lineID+"/status", `{"status":"packed"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The snapshot cache is invalidated by a change event, so poll briefly.
	assert.Eventually(t, func() bool {
		w := doJSON(router, http.MethodGet, "/api/packing?date=2026-09-02", "")
		return w.Code == http.StatusOK && strings.Contains(w.Body.String(), `"progress_percentage":100`)
	}, 2*time.Second, 50*time.Millisecond)
}

func TestApp_SelectionAndDisplay(t *testing.T) {
	appl := newIntegrationApp(t)
	router := appl.Router

	w := doJSON(router, http.MethodPost, "/api/customers", `{"name":"Baker Hansen"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var customerResp struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &customerResp))

	var productIDs []string
	for _, name := range []string{"Rye bread", "Cinnamon bun"} {
		w = doJSON(router, http.MethodPost, "/api/products", `{"name":"`+name+`","price":"20.00"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		var productResp struct {
			Data struct {
				ID string `json:"id"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &productResp))
		productIDs = append(productIDs, productResp.Data.ID)
	}

	orderBody := `{"customer_id":"` + customerResp.Data.ID + `","delivery_date":"2026-09-03","lines":[` +
		`{"product_id":"` + productIDs[0] + `","quantity":2},` +
		`{"product_id":"` + productIDs[1] + `","quantity":1}]}`
	w = doJSON(router, http.MethodPost, "/api/orders", orderBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Select only the rye bread for the display board.
	w = doJSON(router, http.MethodPut, "/api/selection?date=2026-09-03", `{"product_ids":["`+productIDs[0]+`"]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(router, http.MethodGet, "/api/packing/display?date=2026-09-03", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"filtered":true`)
	assert.Contains(t, body, "Rye bread")
	assert.NotContains(t, body, "Cinnamon bun")
	// Progress still counts the hidden line.
	assert.Contains(t, body, `"total_line_items_all":2`)

	// Clearing the selection brings everything back. The cached snapshot is
	// invalidated by a change event, so poll briefly.
	w = doJSON(router, http.MethodDelete, "/api/selection?date=2026-09-03", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Eventually(t, func() bool {
		w := doJSON(router, http.MethodGet, "/api/packing/display?date=2026-09-03", "")
		return w.Code == http.StatusOK && strings.Contains(w.Body.String(), "Cinnamon bun")
	}, 2*time.Second, 50*time.Millisecond)
}
