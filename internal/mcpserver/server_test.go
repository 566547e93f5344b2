package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aocctl/internal/catalog"
	"aocctl/internal/solve"
)

func testServer() *Server {
	cat := catalog.BuildDays([]catalog.DaySpec{
		{Day: 1, Name: "Historian Hysteria"},
		{Day: 3, Name: "Mull It Over", Description: "Find `mul(X,Y)`."},
	}, catalog.LinkTemplates{Year: 2024, Puzzle: "https://adventofcode.com/{year}/day/{day}"})

	engine := solve.EngineFunc(func(_ context.Context, input string, day, part int) (string, error) {
		if input == "bad" {
			return "", errors.New("bad format")
		}
		if part == 2 {
			return "", errors.New("day 3 part 2 is not implemented")
		}
		return "42", nil
	})
	return New(cat, engine, "test")
}

func callRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "Expected TextContent")
	return text.Text
}

func TestNew_RegistersTools(t *testing.T) {
	s := testServer()
	assert.NotNil(t, s.MCPServer())
}

func TestHandleListPages(t *testing.T) {
	s := testServer()

	res, err := s.handleListPages(context.Background(), callRequest("list_pages", map[string]interface{}{}))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	var pages []PageInfo
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &pages))
	require.Len(t, pages, 2)
	assert.Equal(t, "Day 01", pages[0].Title)
	assert.Equal(t, 3, pages[1].Day)
	assert.Equal(t, "https://adventofcode.com/2024/day/3", pages[1].PuzzleLink)
	assert.Empty(t, pages[1].Description)
}

func TestHandleListPages_Empty(t *testing.T) {
	s := New(catalog.New(), solve.EngineFunc(func(context.Context, string, int, int) (string, error) {
		return "", nil
	}), "test")

	res, err := s.handleListPages(context.Background(), callRequest("list_pages", nil))
	require.NoError(t, err)
	assert.Equal(t, "No pages configured", resultText(t, res))
}

func TestHandleGetPage(t *testing.T) {
	s := testServer()

	res, err := s.handleGetPage(context.Background(), callRequest("get_page", map[string]interface{}{"title": "Day 03"}))
	require.NoError(t, err)

	var page PageInfo
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &page))
	assert.Equal(t, "Mull It Over", page.Name)
	assert.Equal(t, "Find `mul(X,Y)`.", page.Description)
}

func TestHandleGetPage_NotFound(t *testing.T) {
	s := testServer()

	res, err := s.handleGetPage(context.Background(), callRequest("get_page", map[string]interface{}{"title": "Day 99"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestHandleGetPage_MissingTitle(t *testing.T) {
	s := testServer()

	res, err := s.handleGetPage(context.Background(), callRequest("get_page", map[string]interface{}{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestHandleSolve(t *testing.T) {
	s := testServer()

	res, err := s.handleSolve(context.Background(), callRequest("solve", map[string]interface{}{
		"day":   float64(3),
		"input": "xmul(2,4)\r\n",
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError, "one failing part is not a tool error")
	assert.Equal(t, "Part 1: 42\nPart 2: <Input Error>\nday 3 part 2 is not implemented", resultText(t, res))
}

func TestHandleSolve_BothPartsFail(t *testing.T) {
	s := testServer()

	res, err := s.handleSolve(context.Background(), callRequest("solve", map[string]interface{}{
		"day":   float64(1),
		"input": "bad",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "bad format")
}

func TestHandleSolve_EmptyInputIsPending(t *testing.T) {
	s := testServer()

	res, err := s.handleSolve(context.Background(), callRequest("solve", map[string]interface{}{
		"day":   float64(1),
		"input": "",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Part 1: <Waiting for Input>\nPart 2: <Waiting for Input>", resultText(t, res))
}

func TestHandleSolve_InvalidArguments(t *testing.T) {
	s := testServer()

	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{"missing day", map[string]interface{}{"input": "x"}},
		{"day out of range", map[string]interface{}{"day": float64(26), "input": "x"}},
		{"missing input", map[string]interface{}{"day": float64(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.handleSolve(context.Background(), callRequest("solve", tt.args))
			require.NoError(t, err)
			assert.True(t, res.IsError)
		})
	}
}

func TestServe_UnknownTransport(t *testing.T) {
	err := testServer().Serve(context.Background(), "carrier-pigeon", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transport")
}
