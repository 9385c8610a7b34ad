package handler

import (
	"errors"   // for errors.Is comparisons against domain sentinels
	"net/http" // HTTP status codes

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/adilbekov/icecream-parlor/internal/catalog"
	"github.com/adilbekov/icecream-parlor/internal/model"
	"github.com/adilbekov/icecream-parlor/internal/session"
)

// TillHandler exposes the session operations of a single till over HTTP.
// Every mutating endpoint funnels into the session, which serializes
// access behind its own lock, so handlers never coordinate with each
// other.  Error translation follows the domain taxonomy: validation
// failures map to 400, lifecycle violations to 409.
type TillHandler struct {
	Session *session.Parlor // the one till session of this process
}

// NewTillHandler constructs a TillHandler.  The session must be non-nil.
func NewTillHandler(s *session.Parlor) *TillHandler {
	if s == nil {
		panic("nil session passed to NewTillHandler")
	}
	return &TillHandler{Session: s}
}

// GetMenu handles GET /v1/menu.  It returns the loaded catalog; empty
// categories come back as empty arrays, not errors.
func (h *TillHandler) GetMenu(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Session.Menu())
}

// OpenShift handles POST /v1/shifts/open.  Opening while a shift is
// already open is not an error: the open shift is returned with
// already_open set so the client can tell the difference.
func (h *TillHandler) OpenShift(c echo.Context) error {
	shift, opened := h.Session.OpenShift()
	if !opened {
		return c.JSON(http.StatusOK, echo.Map{
			"shift":        session.Summarize(shift),
			"already_open": true,
		})
	}
	return c.JSON(http.StatusCreated, echo.Map{"shift": session.Summarize(shift)})
}

// CloseShift handles POST /v1/shifts/close.  It returns the closing
// summary of the shift, or 409 when no shift is open.
func (h *TillHandler) CloseShift(c echo.Context) error {
	shift, err := h.Session.CloseShift()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"shift": session.Summarize(shift)})
}

// GetCurrentShift handles GET /v1/shifts/current.  It returns 404 when
// no shift is open; an unopened till is an expected state, not a failure.
func (h *TillHandler) GetCurrentShift(c echo.Context) error {
	shift := h.Session.CurrentShift()
	if shift == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no open shift"})
	}
	return c.JSON(http.StatusOK, echo.Map{"shift": session.Summarize(shift)})
}

// GetDailySummary handles GET /v1/summary/day.  The summary covers every
// shift of the run regardless of state and is recomputed on each call.
func (h *TillHandler) GetDailySummary(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Session.DailySummary())
}

// CreateOrder handles POST /v1/orders.  The body selects portions by
// 1-based menu numbers:
//
//	{"portions": [{"container": 1, "scoops": [{"flavor": 2, "balls": 2}], "topping": 1}]}
//
// On success the order is added to the open shift and paid, and a 201
// response carries its number, total and payment time.
func (h *TillHandler) CreateOrder(c echo.Context) error {
	var body struct {
		Portions []session.PortionSpec `json:"portions"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	order, err := h.Session.PlaceOrder(body.Portions)
	if err != nil {
		return respondError(c, err)
	}
	lines := make([]string, 0, len(order.Portions()))
	for _, p := range order.Portions() {
		lines = append(lines, p.String())
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"number":      order.Number(),
		"total_price": order.TotalPrice(),
		"paid_at":     order.PaidAt(),
		"portions":    lines,
	})
}

// respondError maps a domain error onto an HTTP response.  Validation
// errors are client mistakes the operator can correct (400); lifecycle
// errors mean the action does not fit the till's current state (409).
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, catalog.ErrUnknownFlavor),
		errors.Is(err, catalog.ErrUnknownTopping),
		errors.Is(err, catalog.ErrUnknownContainer),
		errors.Is(err, model.ErrInvalidComposition),
		errors.Is(err, model.ErrCapacityExceeded),
		errors.Is(err, model.ErrEmptyOrder):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, model.ErrShiftNotOpen),
		errors.Is(err, model.ErrShiftClosed),
		errors.Is(err, model.ErrOrderAlreadyPaid):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
