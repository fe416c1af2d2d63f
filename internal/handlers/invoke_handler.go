package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"function-invoker-api/internal/models"
	"function-invoker-api/internal/services"
	"function-invoker-api/pkg/lambda"
)

// InvokeHandler handles invocation-related HTTP requests
type InvokeHandler struct {
	invokerService services.InvokerService
}

// NewInvokeHandler creates a new invoke handler
func NewInvokeHandler(invokerService services.InvokerService) *InvokeHandler {
	return &InvokeHandler{
		invokerService: invokerService,
	}
}

// @Summary Invoke the loaded function
// @Description Call the function loaded at startup with the supplied named parameters
// @Tags invoke
// @Accept json
// @Produce json
// @Param request body models.InvokeRequest true "Named parameters for the function"
// @Success 200 {object} models.InvokeResponse
// @Failure 400 {object} models.InvokeResponse
// @Failure 500 {object} models.InvokeResponse
// @Router /invoke [post]
func (h *InvokeHandler) Invoke(c *gin.Context) {
	req, err := models.DecodeInvokeRequest(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.FailureResponse(err))
		return
	}

	result, err := h.invokerService.Invoke(c.Request.Context(), req.Params)
	if err != nil {
		h.logInvokeFailure(c, err)
		c.JSON(http.StatusInternalServerError, models.FailureResponse(err))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(result))
}

// @Summary Health probe
// @Description Reports liveness. Always returns ok, even when no function is loaded.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *InvokeHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// logInvokeFailure logs at a level matching the failure class: caller
// mistakes are warnings, everything else an error.
func (h *InvokeHandler) logInvokeFailure(c *gin.Context, err error) {
	fields := logrus.Fields{
		"path":  c.Request.URL.Path,
		"error": err.Error(),
	}
	if isNotDefinedError(err) || isArgumentError(err) {
		logrus.WithFields(fields).Warn("Invocation rejected")
		return
	}
	logrus.WithFields(fields).Error("Invocation failed")
}

// HandleInvoke is the framework-agnostic variant used by the Lambda entrypoint
func (h *InvokeHandler) HandleInvoke(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	decoded, err := models.DecodeInvokeRequest(bytes.NewReader(req.Body))
	if err != nil {
		return invokeResponse(http.StatusBadRequest, models.FailureResponse(err))
	}

	result, err := h.invokerService.Invoke(ctx, decoded.Params)
	if err != nil {
		return invokeResponse(http.StatusInternalServerError, models.FailureResponse(err))
	}

	return invokeResponse(http.StatusOK, models.SuccessResponse(result))
}

// HandleHealth is the framework-agnostic variant used by the Lambda entrypoint
func (h *InvokeHandler) HandleHealth(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	return &lambda.Response{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       []byte(`{"status":"ok"}`),
	}, nil
}

func invokeResponse(status int, body *models.InvokeResponse) (*lambda.Response, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	return &lambda.Response{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       encoded,
	}, nil
}
