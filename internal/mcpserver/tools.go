package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"aocctl/internal/catalog"
	"aocctl/internal/console"
	"aocctl/internal/input"
	"aocctl/internal/solve"
	"aocctl/pkg/logging"
)

// PageInfo is the JSON shape of a catalog page.
type PageInfo struct {
	Title       string `json:"title"`
	Day         int    `json:"day"`
	Name        string `json:"name,omitempty"`
	PuzzleLink  string `json:"puzzleLink,omitempty"`
	CodeLink    string `json:"codeLink,omitempty"`
	Description string `json:"description,omitempty"`
}

func pageInfo(p catalog.Page, withDescription bool) PageInfo {
	info := PageInfo{Title: p.Title}
	if day, ok := p.Content.(catalog.DayContent); ok {
		info.Day = day.Day
		info.Name = day.Name
		info.PuzzleLink = day.PuzzleLink
		info.CodeLink = day.CodeLink
		if withDescription {
			info.Description = day.Description
		}
	}
	return info
}

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("list_pages",
		mcp.WithDescription("List the puzzle day pages in display order"),
	), s.handleListPages)

	s.mcp.AddTool(mcp.NewTool("get_page",
		mcp.WithDescription("Get a puzzle day page, including its description"),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Page title as shown by list_pages, e.g. \"Day 03\""),
		),
	), s.handleGetPage)

	s.mcp.AddTool(mcp.NewTool("solve",
		mcp.WithDescription("Solve both parts of a day for the given puzzle input"),
		mcp.WithNumber("day",
			mcp.Required(),
			mcp.Description("Puzzle day, 1-25"),
		),
		mcp.WithString("input",
			mcp.Required(),
			mcp.Description("Raw puzzle input"),
		),
	), s.handleSolve)
}

func (s *Server) handleListPages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pages := s.catalog.Pages()
	if len(pages) == 0 {
		return mcp.NewToolResultText("No pages configured"), nil
	}

	infos := make([]PageInfo, 0, len(pages))
	for _, p := range pages {
		infos = append(infos, pageInfo(p, false))
	}

	jsonData, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format pages: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (s *Server) handleGetPage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("title parameter is required"), nil
	}

	page, ok := s.catalog.Resolve(title)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Page not found: %s", title)), nil
	}

	jsonData, err := json.MarshalIndent(pageInfo(page, true), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format page: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (s *Server) handleSolve(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := request.RequireInt("day")
	if err != nil {
		return mcp.NewToolResultError("day parameter is required"), nil
	}
	if day < 1 || day > 25 {
		return mcp.NewToolResultError(fmt.Sprintf("day must be between 1 and 25, got %d", day)), nil
	}
	text, err := request.RequireString("input")
	if err != nil {
		return mcp.NewToolResultError("input parameter is required"), nil
	}

	logging.Debug(subsystem, "solve requested for day %d (%d bytes)", day, len(text))
	p := solve.New(s.engine, day)
	p.Update(ctx, input.Normalize(text))
	part1, part2 := p.Outcomes()

	result := mcp.NewToolResultText(console.FormatAnswers(part1, part2))
	result.IsError = part1.IsFailure() && part2.IsFailure()
	return result, nil
}
