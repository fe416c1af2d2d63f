package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"function-invoker-api/internal/config"
	"function-invoker-api/internal/function"
)

// invokerService serves every request with the one function resolved at
// startup. When the load failed the service keeps running and holds the load
// error instead; each invoke then fails with a "not defined" error, mirroring
// what the caller of a mis-provisioned function container should see.
type invokerService struct {
	fn      *function.Function
	loadErr *function.LoadError
	timeout time.Duration
}

// NewInvokerService resolves the configured function source once. A load
// failure is logged and the service continues in a degraded state rather
// than aborting the process.
func NewInvokerService(cfg *config.Config) InvokerService {
	svc := &invokerService{
		timeout: time.Duration(cfg.Invoke.TimeoutSeconds) * time.Second,
	}

	fn, err := function.Load(cfg.Function.Source)
	if err != nil {
		var loadErr *function.LoadError
		if !errors.As(err, &loadErr) {
			loadErr = &function.LoadError{Reason: err.Error()}
		}
		svc.loadErr = loadErr
		logrus.WithFields(logrus.Fields{
			"source_env": cfg.Function.SourceEnv,
			"error":      loadErr.Error(),
		}).Error("Could not load custom function")
		return svc
	}

	svc.fn = fn
	logrus.WithFields(logrus.Fields{
		"function": fn.Name(),
		"params":   fn.ParamNames(),
	}).Info("Loaded custom function")
	return svc
}

// Invoke calls the loaded function. The returned error is always a
// *function.InvocationError.
func (s *invokerService) Invoke(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	if s.fn == nil {
		return nil, function.NotDefinedError(s.loadErr)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	return s.fn.Call(ctx, params)
}

func (s *invokerService) Available() bool {
	return s.fn != nil
}

func (s *invokerService) FunctionName() string {
	if s.fn == nil {
		return ""
	}
	return s.fn.Name()
}
