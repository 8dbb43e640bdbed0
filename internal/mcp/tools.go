package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/shellwright/shellwright/internal/extract"
	"github.com/shellwright/shellwright/internal/syslogs"
	"github.com/shellwright/shellwright/internal/terminal"
)

// registerTools registers the tool surface with the MCP server.
func (s *Server) registerTools() {
	s.mcpServer.AddTool(createTerminalTool(), s.handleCreateTerminal)
	s.mcpServer.AddTool(runCommandTool(), s.handleRunCommand)
	s.mcpServer.AddTool(readOutputTool(), s.handleReadOutput)
	s.mcpServer.AddTool(killTerminalTool(), s.handleKillTerminal)
	s.mcpServer.AddTool(listTerminalsTool(), s.handleListTerminals)
	s.mcpServer.AddTool(runRootCommandTool(), s.handleRunRootCommand)
	s.mcpServer.AddTool(readSpecialFileTool(), s.handleReadSpecialFile)
	s.mcpServer.AddTool(getSystemLogsTool(), s.handleGetSystemLogs)
}

// Tool definitions

func createTerminalTool() mcp.Tool {
	return mcp.NewTool("create_terminal",
		mcp.WithDescription("Open a new interactive terminal session backed by a PTY"),
		mcp.WithString("cwd",
			mcp.Description("Working directory for the shell (defaults to the user's home)"),
		),
		mcp.WithString("shell",
			mcp.Description("Shell to launch (defaults to $SHELL, then /bin/bash)"),
		),
		mcp.WithString("root_password",
			mcp.Description("When set, the shell is launched through sudo using this password"),
		),
	)
}

func runCommandTool() mcp.Tool {
	return mcp.NewTool("run_command",
		mcp.WithDescription("Send a command to a terminal session. Output is collected asynchronously; poll it with read_output"),
		mcp.WithString("session_id",
			mcp.Required(),
			mcp.Description("The session ID returned by create_terminal"),
		),
		mcp.WithString("command",
			mcp.Required(),
			mcp.Description("The command line to send"),
		),
	)
}

func readOutputTool() mcp.Tool {
	return mcp.NewTool("read_output",
		mcp.WithDescription("Drain everything the session printed since the last read (may be empty)"),
		mcp.WithString("session_id",
			mcp.Required(),
			mcp.Description("The session ID"),
		),
	)
}

func killTerminalTool() mcp.Tool {
	return mcp.NewTool("kill_terminal",
		mcp.WithDescription("Terminate a terminal session and forget it"),
		mcp.WithString("session_id",
			mcp.Required(),
			mcp.Description("The session ID"),
		),
	)
}

func listTerminalsTool() mcp.Tool {
	return mcp.NewTool("list_terminals",
		mcp.WithDescription("List the ids of all tracked terminal sessions"),
	)
}

func runRootCommandTool() mcp.Tool {
	return mcp.NewTool("run_root_command",
		mcp.WithDescription("Run a single command with root privileges via sudo and return its output"),
		mcp.WithString("command",
			mcp.Required(),
			mcp.Description("The command to run"),
		),
		mcp.WithString("password",
			mcp.Required(),
			mcp.Description("The sudo password"),
		),
		mcp.WithString("cwd",
			mcp.Description("Working directory for the command"),
		),
	)
}

func readSpecialFileTool() mcp.Tool {
	return mcp.NewTool("read_special_file",
		mcp.WithDescription("Extract text from a file: PDF, Excel workbook, image (OCR) or raw contents"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path of the file to read"),
		),
	)
}

func getSystemLogsTool() mcp.Tool {
	return mcp.NewTool("get_system_logs",
		mcp.WithDescription("Tail a system log file, falling back to the systemd journal"),
		mcp.WithString("log_file",
			mcp.Description("Log file to tail (defaults to the configured syslog path, then journalctl)"),
		),
		mcp.WithNumber("lines",
			mcp.Description(fmt.Sprintf("Number of lines to return (default %d)", syslogs.DefaultLines)),
		),
	)
}

// Handlers. Every internal failure is converted into an error-flagged tool
// result; the returned Go error stays nil so per-call failures never become
// transport faults.

func (s *Server) handleCreateTerminal(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := terminal.CreateOptions{
		WorkingDir:   req.GetString("cwd", ""),
		Shell:        req.GetString("shell", ""),
		RootPassword: req.GetString("root_password", ""),
	}

	info, err := s.terminals.Create(opts)
	if err != nil {
		s.log.Warn("create_terminal failed", zap.Error(err))
		return mcp.NewToolResultError(fmt.Sprintf("failed to create terminal: %v", err)), nil
	}

	payload, err := json.Marshal(info)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode session descriptor: %v", err)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}

func (s *Server) handleRunCommand(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := req.RequireString("session_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	command, err := req.RequireString("command")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.terminals.Write(sessionID, command); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("command sent to session %s", sessionID)), nil
}

func (s *Server) handleReadOutput(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := req.RequireString("session_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	output, err := s.terminals.Drain(sessionID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(output), nil
}

func (s *Server) handleKillTerminal(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := req.RequireString("session_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.terminals.Kill(sessionID); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("session %s terminated", sessionID)), nil
}

func (s *Server) handleListTerminals(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ids := s.terminals.List()
	if ids == nil {
		ids = []string{}
	}

	payload, err := json.Marshal(ids)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode session list: %v", err)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}

func (s *Server) handleRunRootCommand(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	command, err := req.RequireString("command")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	password, err := req.RequireString("password")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cwd := req.GetString("cwd", "")

	out, err := s.root.Run(ctx, command, password, cwd)
	if err != nil {
		s.log.Warn("run_root_command failed", zap.Error(err))
		return mcp.NewToolResultError(fmt.Sprintf("%v\n%s", err, out)), nil
	}
	return mcp.NewToolResultText(out), nil
}

func (s *Server) handleReadSpecialFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text, err := extract.ReadSpecialFile(ctx, path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleGetSystemLogs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	file := req.GetString("log_file", "")
	lines := req.GetInt("lines", syslogs.DefaultLines)

	out, err := s.logs.Get(ctx, file, lines)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}
