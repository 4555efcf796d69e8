// Package server exposes the calculator as MCP tools over stdio.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/iburimskiy/particle-calc/internal/calc"
)

const (
	Name    = "particle-calc"
	Version = "0.1.0"

	// Tool name prefix for all MCP tools
	ToolPrefix = "calculator."

	ToolEvaluate     = ToolPrefix + "evaluate"
	ToolNewSession   = ToolPrefix + "new_session"
	ToolPress        = ToolPrefix + "press"
	ToolCloseSession = ToolPrefix + "close_session"
)

// CalculatorServer represents the calculator MCP server
type CalculatorServer struct {
	mcpServer *server.MCPServer
	sessions  *Sessions
	eval      calc.Evaluator
	log       *slog.Logger
}

// PressResult is the JSON body returned by the press tool.
type PressResult struct {
	SessionID  string `json:"session_id"`
	Display    string `json:"display"`
	LastToken  string `json:"last_token"`
	Scientific bool   `json:"scientific"`
}

func New(log *slog.Logger) *CalculatorServer {
	s := &CalculatorServer{
		mcpServer: server.NewMCPServer(Name, Version, server.WithToolCapabilities(false)),
		eval:      calc.NewExpressionEvaluator(),
		log:       log,
	}
	s.sessions = NewSessions(func() *calc.Calculator {
		return calc.New(calc.WithEvaluator(s.eval), calc.WithLogger(log))
	})
	s.registerTools()
	return s
}

// ServeStdio blocks serving requests on stdin/stdout.
func (s *CalculatorServer) ServeStdio() error {
	s.log.Info("Starting calculator MCP server", "name", Name, "version", Version)
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}
	return nil
}

func (s *CalculatorServer) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool(ToolEvaluate,
		mcp.WithDescription("Evaluate an arithmetic expression the way the calculator's = button does. "+
			"Accepts + - * / × ÷ ^ parentheses and sin cos tan log ln sqrt."),
		mcp.WithString("expression", mcp.Required(), mcp.Description("Expression to evaluate, e.g. 5×3")),
	), s.handleEvaluate)

	s.mcpServer.AddTool(mcp.NewTool(ToolNewSession,
		mcp.WithDescription("Open a new calculator showing 0 and return its session id"),
	), s.handleNewSession)

	s.mcpServer.AddTool(mcp.NewTool(ToolPress,
		mcp.WithDescription("Press buttons on a calculator session and return the display. "+
			"Buttons: 0-9 . + - × ÷ C ± % = and in scientific mode sin cos tan log ln ^ ( ) π e √ x² x³ x!"),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Id returned by "+ToolNewSession)),
		mcp.WithString("tokens", mcp.Required(), mcp.Description("Whitespace separated buttons, e.g. \"1 2 + 3 =\"")),
	), s.handlePress)

	s.mcpServer.AddTool(mcp.NewTool(ToolCloseSession,
		mcp.WithDescription("Discard a calculator session"),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Id returned by "+ToolNewSession)),
	), s.handleCloseSession)
}

func (s *CalculatorServer) handleEvaluate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	expression := mcp.ParseString(req, "expression", "")
	if strings.TrimSpace(expression) == "" {
		return mcp.NewToolResultError("expression parameter is required"), nil
	}

	display, err := calc.Evaluate(s.eval, expression)
	if err != nil {
		s.log.Debug("Evaluation failed", "expression", expression, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("%s: %v", display, err)), nil
	}
	return mcp.NewToolResultText(display), nil
}

func (s *CalculatorServer) handleNewSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := s.sessions.Open()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.log.Debug("Session opened", "session_id", id)
	return mcp.NewToolResultText(id), nil
}

func (s *CalculatorServer) handlePress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := mcp.ParseString(req, "session_id", "")
	if id == "" {
		return mcp.NewToolResultError("session_id parameter is required"), nil
	}
	tokens := strings.Fields(mcp.ParseString(req, "tokens", ""))
	if len(tokens) == 0 {
		return mcp.NewToolResultError("tokens parameter is required"), nil
	}

	result := PressResult{SessionID: id}
	err := s.sessions.With(id, func(c *calc.Calculator) {
		result.Display = c.PressAll(tokens...)
		result.LastToken = c.LastToken()
		result.Scientific = c.Scientific()
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *CalculatorServer) handleCloseSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := mcp.ParseString(req, "session_id", "")
	if err := s.sessions.Close(id); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.log.Debug("Session closed", "session_id", id)
	return mcp.NewToolResultText("closed " + id), nil
}
