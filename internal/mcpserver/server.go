package mcpserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"pawlist/internal/catalog"
)

// Server wraps the MCP server with read-only catalog tools.
type Server struct {
	mcpServer *mcp.Server
	source    catalog.Source
	log       *slog.Logger
}

// Config holds configuration for the MCP server.
type Config struct {
	ServerName    string
	ServerVersion string
}

// NewServer creates a new MCP server instance.
func NewServer(cfg Config, source catalog.Source, log *slog.Logger) *Server {
	impl := &mcp.Implementation{
		Name:    cfg.ServerName,
		Version: cfg.ServerVersion,
	}

	s := &Server{
		mcpServer: mcp.NewServer(impl, nil),
		source:    source,
		log:       log,
	}

	s.registerTools()
	return s
}

// ListAnimalsArgs defines the input for list_animals tool.
type ListAnimalsArgs struct{}

// AnimalSummary is one list row.
type AnimalSummary struct {
	ID      string `json:"id" jsonschema:"stable animal key"`
	Name    string `json:"name" jsonschema:"animal name"`
	Detail  string `json:"detail" jsonschema:"short description"`
	PhotoID string `json:"photo_id" jsonschema:"opaque image reference"`
}

// ListAnimalsResult defines the output for list_animals tool.
type ListAnimalsResult struct {
	Animals []AnimalSummary `json:"animals" jsonschema:"animals in display order"`
}

// GetAnimalArgs defines the input for get_animal tool.
type GetAnimalArgs struct {
	Ref string `json:"ref" jsonschema:"animal id or name"`
}

// AnimalDetail is the full record as shown on the detail screen.
type AnimalDetail struct {
	ID          string `json:"id" jsonschema:"stable animal key"`
	Name        string `json:"name" jsonschema:"animal name"`
	PhotoID     string `json:"photo_id" jsonschema:"opaque image reference"`
	Gender      string `json:"gender" jsonschema:"Male or Female"`
	Size        string `json:"size"`
	Weight      string `json:"weight"`
	Age         string `json:"age"`
	AdoptionFee string `json:"adoption_fee"`
	Detail      string `json:"additional_info"`
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_animals",
		Description: "List the animals available for adoption, in display order, with their ids and short descriptions.",
	}, s.handleListAnimals)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_animal",
		Description: "Get every attribute of one animal by id or by name (case-insensitive).",
	}, s.handleGetAnimal)
}

// handleListAnimals returns the catalog in order.
func (s *Server) handleListAnimals(ctx context.Context, _ *mcp.CallToolRequest, _ ListAnimalsArgs) (*mcp.CallToolResult, ListAnimalsResult, error) {
	animals := s.source.Animals()
	s.log.Info("tool call", "tool", "list_animals", "count", len(animals))

	out := ListAnimalsResult{Animals: make([]AnimalSummary, 0, len(animals))}
	for _, a := range animals {
		out.Animals = append(out.Animals, AnimalSummary{
			ID:      a.ID.String(),
			Name:    a.Name,
			Detail:  a.Detail,
			PhotoID: a.PhotoID,
		})
	}
	return nil, out, nil
}

// handleGetAnimal resolves one animal.
func (s *Server) handleGetAnimal(ctx context.Context, _ *mcp.CallToolRequest, args GetAnimalArgs) (*mcp.CallToolResult, AnimalDetail, error) {
	a, err := catalog.Lookup(s.source.Animals(), args.Ref)
	if err != nil {
		s.log.Warn("tool call failed", "tool", "get_animal", "ref", args.Ref, "error", err)
		return nil, AnimalDetail{}, fmt.Errorf("get_animal: %w", err)
	}
	s.log.Info("tool call", "tool", "get_animal", "animal", a.Name)

	return nil, toDetail(a), nil
}

func toDetail(a catalog.Animal) AnimalDetail {
	return AnimalDetail{
		ID:          a.ID.String(),
		Name:        a.Name,
		PhotoID:     a.PhotoID,
		Gender:      catalog.GenderLabel(a.Male),
		Size:        a.Size,
		Weight:      a.Weight,
		Age:         a.Age,
		AdoptionFee: a.AdoptionFee,
		Detail:      a.Detail,
	}
}

// Start starts the MCP server using stdio transport.
func (s *Server) Start(ctx context.Context) error {
	s.log.Info("starting MCP server on stdio")
	return s.Run(ctx, &mcp.StdioTransport{})
}

// Run serves on an arbitrary transport until the client disconnects or ctx ends.
func (s *Server) Run(ctx context.Context, t mcp.Transport) error {
	return s.mcpServer.Run(ctx, t)
}
