package assistant

import (
	"context"
	"encoding/json"
	"testing"

	"pmdsite/app/config"
	"pmdsite/app/service/content"
	"pmdsite/app/service/responder"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/samber/do"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	cfg, err := config.Parse([]byte("{}"))
	require.NoError(t, err)

	di := do.New()
	t.Cleanup(func() { _ = di.Shutdown() })

	do.ProvideValue(di, cfg)
	do.Provide(di, content.New)
	do.Provide(di, responder.New)
	do.Provide(di, New)

	return do.MustInvoke[*Service](di)
}

func callTool(t *testing.T, svc *Service, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()

	var tool *server.ServerTool
	for _, candidate := range svc.createTools() {
		if candidate.Tool.Name == name {
			tool = &candidate
			break
		}
	}
	require.NotNil(t, tool, "tool %s not registered", name)

	request := mcp.CallToolRequest{}
	request.Params.Name = name
	request.Params.Arguments = args

	result, err := tool.Handler(context.Background(), request)
	require.NoError(t, err)
	require.NotNil(t, result)

	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)

	return text.Text
}

func TestChatReplyTool(t *testing.T) {
	svc := newTestService(t)

	result := callTool(t, svc, "chat_reply", map[string]any{"message": "How can I contact you?"})
	require.False(t, result.IsError)
	require.Contains(t, resultText(t, result), "hello@pmdconsulting.com")

	result = callTool(t, svc, "chat_reply", map[string]any{})
	require.True(t, result.IsError)
}

func TestChatRulesTool(t *testing.T) {
	svc := newTestService(t)

	result := callTool(t, svc, "chat_rules", nil)
	require.False(t, result.IsError)

	var rules []responder.Rule
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &rules))
	require.Len(t, rules, 5)
	require.Equal(t, "services", rules[0].Name)
}

func TestSiteContentTool(t *testing.T) {
	svc := newTestService(t)

	result := callTool(t, svc, "site_content", map[string]any{"language": "fr"})
	require.False(t, result.IsError)

	var table content.Content
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &table))
	require.Equal(t, "Accueil", table.Nav.Home)

	result = callTool(t, svc, "site_content", nil)
	require.False(t, result.IsError)
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &table))
	require.Equal(t, "Home", table.Nav.Home)

	result = callTool(t, svc, "site_content", map[string]any{"language": "de"})
	require.True(t, result.IsError)
}

func TestTeamMemberTool(t *testing.T) {
	svc := newTestService(t)

	result := callTool(t, svc, "team_member", map[string]any{"id": "emily-rodriguez"})
	require.False(t, result.IsError)

	var member content.TeamMember
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &member))
	require.Equal(t, "Operations Specialist", member.Role)

	result = callTool(t, svc, "team_member", map[string]any{"id": "nobody"})
	require.True(t, result.IsError)

	result = callTool(t, svc, "team_member", nil)
	require.True(t, result.IsError)
}

func TestRunDisabled(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.Run(context.Background()))
}
