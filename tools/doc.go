// Package tools defines the Tool interface for LLM agents, including registration, parameter schema, and MCP integration. Tools enable agents to interact with external systems and APIs in a structured, extensible way.
package tools
