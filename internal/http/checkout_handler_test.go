package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeStatus(t *testing.T, body []byte) CheckoutStatusResponse {
	t.Helper()
	var resp CheckoutStatusResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestStartCheckout_EmptyCart(t *testing.T) {
	router, _, timers := setupRouter(t)

	recorder := doRequest(t, router, "POST", "/api/v1/checkout", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	assert.Equal(t, 0, timers.count())
}

func TestStartCheckout_Flow(t *testing.T) {
	router, sess, timers := setupRouter(t)
	doRequest(t, router, "POST", "/api/v1/cart/items", AddItemRequestDTO{ItemID: 6})
	visible := true
	doRequest(t, router, "PUT", "/api/v1/cart/visibility", SetVisibilityRequestDTO{Visible: &visible})

	recorder := doRequest(t, router, "POST", "/api/v1/checkout", nil)
	require.Equal(t, http.StatusAccepted, recorder.Code)

	var started CheckoutStartedResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&started))
	assert.NotEmpty(t, started.CheckoutID)
	assert.Equal(t, "IN_PROGRESS", started.Status)

	cart := decodeCart(t, doRequest(t, router, "GET", "/api/v1/cart", nil))
	assert.True(t, cart.IsCheckingOut)

	status := decodeStatus(t, doRequest(t, router, "GET", "/api/v1/checkout", nil).Body.Bytes())
	assert.Equal(t, "IN_PROGRESS", status.Status)
	assert.Equal(t, started.CheckoutID, status.CheckoutID)
	assert.Nil(t, status.LastNotification)

	// second trigger is refused and schedules nothing
	recorder = doRequest(t, router, "POST", "/api/v1/checkout", nil)
	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Equal(t, 1, timers.count())

	timers.fire()

	status = decodeStatus(t, doRequest(t, router, "GET", "/api/v1/checkout", nil).Body.Bytes())
	assert.Equal(t, "IDLE", status.Status)
	assert.Equal(t, 1, status.NotificationCount)
	require.NotNil(t, status.LastNotification)
	assert.Equal(t, started.CheckoutID, status.LastNotification.CheckoutID)
	assert.Equal(t, "Order placed successfully! 🎉", status.LastNotification.Message)
	assert.Equal(t, "399.00", status.LastNotification.TotalAmount)

	assert.False(t, sess.Cart.Visible())
	assert.Len(t, sess.Cart.Lines(), 1)
}

func TestResetSession(t *testing.T) {
	router, sess, timers := setupRouter(t)
	doRequest(t, router, "POST", "/api/v1/cart/items", AddItemRequestDTO{ItemID: 6})
	doRequest(t, router, "POST", "/api/v1/checkout", nil)

	recorder := doRequest(t, router, "POST", "/api/v1/session/reset", nil)
	assert.Equal(t, http.StatusConflict, recorder.Code)

	timers.fire()

	recorder = doRequest(t, router, "POST", "/api/v1/session/reset", nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, sess.Cart.Lines())

	status := decodeStatus(t, doRequest(t, router, "GET", "/api/v1/checkout", nil).Body.Bytes())
	assert.Nil(t, status.LastNotification)
}

func TestStartCheckout_CartEmptiedWhileInFlight(t *testing.T) {
	router, _, timers := setupRouter(t)
	doRequest(t, router, "POST", "/api/v1/cart/items", AddItemRequestDTO{ItemID: 6})

	recorder := doRequest(t, router, "POST", "/api/v1/checkout", nil)
	require.Equal(t, http.StatusAccepted, recorder.Code)

	// the cart stays editable until completion, which snapshots it
	recorder = doRequest(t, router, "DELETE", "/api/v1/cart/items/6", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	timers.fire()

	status := decodeStatus(t, doRequest(t, router, "GET", "/api/v1/checkout", nil).Body.Bytes())
	require.NotNil(t, status.LastNotification)
	assert.Equal(t, 0, status.LastNotification.TotalItems)
	assert.Equal(t, "0.00", status.LastNotification.TotalAmount)
}
