package assistant

import (
	"context"
	"encoding/json"
	"fmt"

	"pmdsite/app/service/content"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (s *Service) createTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("chat_reply",
				mcp.WithDescription("Answer a visitor question the way the PMD Consulting site chat widget does."),
				mcp.WithString("message", mcp.Required(), mcp.Description("Visitor utterance")),
			),
			Handler: func(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				message, err := request.RequireString("message")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}

				return mcp.NewToolResultText(s.responderSvc.Reply(message)), nil
			},
		},
		{
			Tool: mcp.NewTool("chat_rules",
				mcp.WithDescription("List the chat widget keyword rules in priority order."),
			),
			Handler: func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return jsonResult(s.responderSvc.Rules())
			},
		},
		{
			Tool: mcp.NewTool("site_content",
				mcp.WithDescription("Return the full site content for a language."),
				mcp.WithString("language", mcp.Description("Language tag, en or fr"), mcp.Enum("en", "fr")),
			),
			Handler: func(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				lang := content.Language(request.GetString("language", string(content.DefaultLanguage)))

				table, err := s.contentSvc.Get(lang)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}

				return jsonResult(table)
			},
		},
		{
			Tool: mcp.NewTool("team_member",
				mcp.WithDescription("Return the bio of a team member."),
				mcp.WithString("id", mcp.Required(), mcp.Description("Team member id, e.g. sarah-johnson")),
				mcp.WithString("language", mcp.Description("Language tag, en or fr"), mcp.Enum("en", "fr")),
			),
			Handler: func(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				id, err := request.RequireString("id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				lang := content.Language(request.GetString("language", string(content.DefaultLanguage)))

				member, err := s.contentSvc.TeamMember(lang, id)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}

				return jsonResult(member)
			},
		},
	}
}

func jsonResult(value any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tool result: %w", err)
	}

	return mcp.NewToolResultText(string(data)), nil
}
