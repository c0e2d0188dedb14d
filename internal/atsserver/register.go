// Package atsserver exposes the resume analysis engine as MCP tools:
// ats_check, ats_extract_text, jd_keywords.
package atsserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all resume analysis tools on the given MCP server.
func RegisterTools(server *mcp.Server) {
	registerATSCheck(server)
	registerExtractText(server)
	registerJDKeywords(server)
}
