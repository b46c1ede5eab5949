// Package payment captures the hosted-checkout redirect. The processor
// sends the customer's browser back to a loopback URL after payment; the
// callback server turns that redirect into a result the application can
// act on (typically by polling the checkout status endpoint).
package payment

import (
	"context"
	"net"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/servinow/servinow-go/utils/logger"
)

const (
	successPath = "/payment/success"
	cancelPath  = "/payment/cancel"
)

// CallbackResult is the outcome of one checkout redirect. SessionID is
// set on success; Cancelled marks the customer backing out.
type CallbackResult struct {
	SessionID string
	Cancelled bool
}

// CallbackServer listens on loopback for the processor's success/cancel
// redirects and delivers the first outcome it sees.
type CallbackServer struct {
	echo    *echo.Echo
	results chan CallbackResult
}

func NewCallbackServer() *CallbackServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &CallbackServer{
		echo:    e,
		results: make(chan CallbackResult, 1),
	}
	e.GET(successPath, s.handleSuccess)
	e.GET(cancelPath, s.handleCancel)
	return s
}

// Start binds the listener and serves in the background. Use addr
// "127.0.0.1:0" to let the OS pick a free port; Addr reports the bound
// address for building redirect URLs.
func (s *CallbackServer) Start(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.echo.Listener = listener

	go func() {
		if err := s.echo.Start(""); err != nil && err != http.ErrServerClosed {
			logger.LogWarn("payment callback server stopped", zap.Error(err))
		}
	}()
	return nil
}

// Addr returns the bound listen address. Only valid after Start.
func (s *CallbackServer) Addr() string {
	return s.echo.Listener.Addr().String()
}

// SuccessURL returns the redirect target to register as the checkout's
// success URL. The processor substitutes its session id into the
// query string.
func (s *CallbackServer) SuccessURL() string {
	return "http://" + s.Addr() + successPath
}

// CancelURL returns the redirect target for an abandoned checkout.
func (s *CallbackServer) CancelURL() string {
	return "http://" + s.Addr() + cancelPath
}

// Wait blocks until a redirect arrives or the context ends.
func (s *CallbackServer) Wait(ctx context.Context) (CallbackResult, error) {
	select {
	case result := <-s.results:
		return result, nil
	case <-ctx.Done():
		return CallbackResult{}, ctx.Err()
	}
}

// Shutdown stops the listener. Safe to call whether or not a redirect
// was received.
func (s *CallbackServer) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *CallbackServer) handleSuccess(c echo.Context) error {
	sessionID := c.QueryParam("session_id")
	if sessionID == "" {
		return c.HTML(http.StatusBadRequest, "<h3>Missing session_id.</h3>")
	}
	s.deliver(CallbackResult{SessionID: sessionID})
	return c.HTML(http.StatusOK, "<h3>Payment received. You can return to the app.</h3>")
}

func (s *CallbackServer) handleCancel(c echo.Context) error {
	s.deliver(CallbackResult{Cancelled: true})
	return c.HTML(http.StatusOK, "<h3>Payment cancelled. You can return to the app.</h3>")
}

// deliver keeps only the first outcome; repeated redirects (browser
// refresh) are ignored.
func (s *CallbackServer) deliver(result CallbackResult) {
	select {
	case s.results <- result:
	default:
	}
}
