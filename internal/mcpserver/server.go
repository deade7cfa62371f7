// Package mcpserver exposes the tool registry over the Model Context
// Protocol's stdio transport. It translates the declarative tool
// contracts into MCP input schemas and routes calls into the dispatcher.
package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/zoralabs/coins-mcp/internal/tools"
)

// Server wraps the MCP stdio server with the registered tool surface.
type Server struct {
	mcp    *server.MCPServer
	logger *logrus.Logger
}

// New registers every tool from the registry on a fresh MCP server.
func New(name, version string, registry *tools.Registry, dispatcher *tools.Dispatcher, logger *logrus.Logger) *Server {
	s := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
	)

	for _, spec := range registry.Specs() {
		s.AddTool(toolFromSpec(spec), toolHandler(dispatcher, spec.Name))
	}

	return &Server{mcp: s, logger: logger}
}

// ServeStdio blocks serving the MCP protocol on stdin/stdout. All logging
// stays on stderr; stdout carries only protocol frames.
func (s *Server) ServeStdio() error {
	s.logger.WithField("transport", "stdio").Info("MCP server listening")
	return server.ServeStdio(s.mcp)
}

// toolHandler adapts one registered tool to the MCP handler signature.
// Dispatch errors become in-band tool errors rather than protocol
// failures, so the caller always gets a response.
func toolHandler(dispatcher *tools.Dispatcher, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := dispatcher.Invoke(ctx, name, req.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(text), nil
	}
}

// toolFromSpec translates a declarative tool definition into an MCP tool
// with a matching JSON schema.
func toolFromSpec(spec *tools.Spec) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(spec.Description),
		mcp.WithTitleAnnotation(spec.Title),
		mcp.WithReadOnlyHintAnnotation(!spec.Write),
		mcp.WithDestructiveHintAnnotation(spec.Write),
	}

	for _, field := range spec.Fields {
		opts = append(opts, fieldOption(field))
	}

	return mcp.NewTool(spec.Name, opts...)
}

func fieldOption(field tools.Field) mcp.ToolOption {
	switch field.Type {
	case tools.FieldString:
		opts := []mcp.PropertyOption{mcp.Description(field.Description)}
		if field.Required {
			opts = append(opts, mcp.Required())
		}
		if field.MinLen > 0 {
			opts = append(opts, mcp.MinLength(field.MinLen))
		}
		if len(field.Enum) > 0 {
			opts = append(opts, mcp.Enum(field.Enum...))
		}
		if def, ok := field.Default.(string); ok {
			opts = append(opts, mcp.DefaultString(def))
		}
		return mcp.WithString(field.Name, opts...)

	case tools.FieldNumber, tools.FieldInteger:
		opts := []mcp.PropertyOption{mcp.Description(field.Description)}
		if field.Required {
			opts = append(opts, mcp.Required())
		}
		if field.Min != nil {
			opts = append(opts, mcp.Min(*field.Min))
		}
		if field.Max != nil {
			opts = append(opts, mcp.Max(*field.Max))
		}
		if def, ok := field.Default.(float64); ok {
			opts = append(opts, mcp.DefaultNumber(def))
		}
		return mcp.WithNumber(field.Name, opts...)

	case tools.FieldBoolean:
		opts := []mcp.PropertyOption{mcp.Description(field.Description)}
		if field.Required {
			opts = append(opts, mcp.Required())
		}
		return mcp.WithBoolean(field.Name, opts...)

	case tools.FieldStringList:
		return arrayOption(field, map[string]any{"type": "string"})

	case tools.FieldIntegerList:
		return arrayOption(field, map[string]any{"type": "number"})

	case tools.FieldObjectList:
		return arrayOption(field, objectSchema(field.Elem))

	default:
		return mcp.WithString(field.Name, mcp.Description(field.Description))
	}
}

func arrayOption(field tools.Field, items map[string]any) mcp.ToolOption {
	opts := []mcp.PropertyOption{
		mcp.Description(field.Description),
		mcp.Items(items),
	}
	if field.Required {
		opts = append(opts, mcp.Required())
	}
	if field.MinLen > 0 {
		opts = append(opts, mcp.MinItems(field.MinLen))
	}
	return mcp.WithArray(field.Name, opts...)
}

// objectSchema renders the per-element contract of an object list as a
// JSON schema fragment.
func objectSchema(elem []tools.Field) map[string]any {
	properties := make(map[string]any, len(elem))
	var required []string

	for _, field := range elem {
		prop := map[string]any{"description": field.Description}
		switch field.Type {
		case tools.FieldString:
			prop["type"] = "string"
			if len(field.Enum) > 0 {
				prop["enum"] = field.Enum
			}
		case tools.FieldNumber, tools.FieldInteger:
			prop["type"] = "number"
		case tools.FieldBoolean:
			prop["type"] = "boolean"
		}
		if field.Default != nil {
			prop["default"] = field.Default
		}
		properties[field.Name] = prop
		if field.Required {
			required = append(required, field.Name)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}
