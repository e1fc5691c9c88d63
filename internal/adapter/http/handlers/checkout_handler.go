package handlers

import (
	"errors"
	"log"
	"net/http"

	request "rede_saude/internal/adapter/http/dto/request"
	response "rede_saude/internal/adapter/http/dto/response"
	"rede_saude/internal/domain/entities"
	"rede_saude/internal/usecase"
	"rede_saude/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)

// CheckoutHandler exposes the checkout session flow over HTTP. Every endpoint
// answers with the session view after the attempted transition.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// StartCheckout opens a new session, optionally with a pre-selected plan.
func (h *CheckoutHandler) StartCheckout(c *gin.Context) {
	var payload request.StartCheckoutRequest
	// An empty body is fine: the plan gets chosen on the first step.
	_ = c.ShouldBindJSON(&payload)

	session, err := h.usecase.Start(c.Request.Context(), payload.PlanID)
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] session started session_id=%s step=%s", session.ID, session.Step)

	c.JSON(http.StatusCreated, response.FromCheckoutSession(session))
}

// GetCheckout returns the current session view.
func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	session, err := h.usecase.Get(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutSession(session))
}

func (h *CheckoutHandler) SelectPlan(c *gin.Context) {
	var payload request.SelectPlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.SelectPlan(c.Request.Context(), c.Param("session_id"), payload.PlanID)
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutSession(session))
}

func (h *CheckoutHandler) SubmitCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.SubmitCustomer(c.Request.Context(), c.Param("session_id"), payload.ToEntity())
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutSession(session))
}

func (h *CheckoutHandler) ChoosePaymentMethod(c *gin.Context) {
	var payload request.PaymentMethodRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.ChooseMethod(c.Request.Context(), c.Param("session_id"), entities.PaymentMethod(payload.Method))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutSession(session))
}

// SubmitCard receives raw card fields, which go straight into the tokenizer
// and are never echoed back in any response.
func (h *CheckoutHandler) SubmitCard(c *gin.Context) {
	var payload request.CardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.SubmitCard(c.Request.Context(), c.Param("session_id"), payload.ToDraft())
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutSession(session))
}

func (h *CheckoutHandler) Retry(c *gin.Context) {
	session, err := h.usecase.Retry(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutSession(session))
}

func (h *CheckoutHandler) Continue(c *gin.Context) {
	session, err := h.usecase.Continue(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutSession(session))
}

// AbandonCheckout tears the session down, releasing its settlement
// subscription and expiration timer.
func (h *CheckoutHandler) AbandonCheckout(c *gin.Context) {
	if err := h.usecase.Abandon(c.Request.Context(), c.Param("session_id")); err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCheckoutError(err error) *pkg.AppError {
	var fieldErr *usecase.FieldError
	switch {
	case errors.As(err, &fieldErr):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", fieldErr.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrTokenizationFailed):
		return pkg.NewDomainErrorSimple("TOKENIZATION_FAILED", "Card could not be tokenized, check the card data and try again", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCheckoutSessionNotFound):
		return pkg.NewDomainErrorSimple("CHECKOUT_SESSION_NOT_FOUND", "Checkout session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Plan not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidPlanID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Payment method must be credit_card, pix or boleto", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStepNotAllowed):
		return pkg.NewDomainErrorSimple("STEP_NOT_ALLOWED", "Action not allowed on the current checkout step", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
