package assistant

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"pmdsite/app/config"
	"pmdsite/app/service/content"
	"pmdsite/app/service/responder"

	"github.com/mark3labs/mcp-go/server"
	"github.com/samber/do"
)

const (
	serverName      = "pmdsite-assistant"
	serverVersion   = "1.0.0"
	shutdownTimeout = 10 * time.Second
)

// Service exposes the chat assistant and the site content as MCP tools.
type Service struct {
	cfg          *config.Config
	contentSvc   *content.Service
	responderSvc *responder.Service

	mcpServer *server.MCPServer
}

func New(di *do.Injector) (*Service, error) {
	s := &Service{
		cfg:          do.MustInvoke[*config.Config](di),
		contentSvc:   do.MustInvoke[*content.Service](di),
		responderSvc: do.MustInvoke[*responder.Service](di),
	}

	s.mcpServer = server.NewMCPServer(serverName, serverVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	s.mcpServer.AddTools(s.createTools()...)

	return s, nil
}

// Run serves the streamable HTTP endpoint until ctx is cancelled.
// It returns immediately when MCP is disabled.
func (s *Service) Run(ctx context.Context) error {
	if !s.cfg.MCP.Enabled {
		slog.Debug("MCP server disabled")
		return nil
	}

	httpServer := server.NewStreamableHTTPServer(s.mcpServer)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("MCP server listening", "addr", s.cfg.MCP.Listen)
		errCh <- httpServer.Start(s.cfg.MCP.Listen)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		slog.Info("MCP server shutting down")
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
