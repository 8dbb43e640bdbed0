// Command shellwright serves a terminal-session control plane over MCP
// stdio: interactive PTY-backed shells an agent can open, feed, drain and
// kill, plus one-shot privileged commands, special-file extraction and
// system log access.
//
// Run with -install to register the server in the Claude Desktop client
// configuration instead of serving.
package main
