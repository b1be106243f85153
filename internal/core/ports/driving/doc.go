// Package driving defines the driving ports (primary interfaces) for
// partsbin. The CLI and MCP adapters depend on these interfaces, which
// are implemented by the core services.
package driving
