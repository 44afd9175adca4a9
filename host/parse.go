package host

import (
	"bufio"
	"strings"

	"github.com/nnnkkk7/claude-extend/types"
)

// statusSeparator splits the command from the health status in `mcp list` lines.
const statusSeparator = " - "

// ParseLine parses a single `mcp list` line of the form
// "name: command args - status". Returns false for headers, blank lines
// and anything else that does not look like a server entry.
func ParseLine(line string) (types.InstalledServer, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return types.InstalledServer{}, false
	}

	idx := strings.Index(line, ":")
	if idx <= 0 {
		return types.InstalledServer{}, false
	}

	name := line[:idx]
	if strings.ContainsAny(name, " \t") {
		// "Checking MCP server health..." and similar prose
		return types.InstalledServer{}, false
	}

	rest := strings.TrimSpace(line[idx+1:])
	server := types.InstalledServer{Name: name, Command: rest}

	if sep := strings.LastIndex(rest, statusSeparator); sep >= 0 {
		server.Command = strings.TrimSpace(rest[:sep])
		server.Status = strings.TrimSpace(rest[sep+len(statusSeparator):])
	}

	return server, true
}

// ParseList extracts every server entry from `mcp list` output.
// Unknown lines are skipped.
func ParseList(output string) []types.InstalledServer {
	var servers []types.InstalledServer

	scanner := bufio.NewScanner(strings.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		if server, ok := ParseLine(scanner.Text()); ok {
			servers = append(servers, server)
		}
	}

	return servers
}
