package mcpserver

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"pawlist/internal/catalog"
	"pawlist/internal/logging"
)

// MockSource implements catalog.Source for testing
type MockSource struct {
	Records []catalog.Animal
}

func (m *MockSource) Animals() []catalog.Animal {
	return m.Records
}

func newTestServer(src catalog.Source) *Server {
	return NewServer(Config{ServerName: "pawlist-test", ServerVersion: "0.0.0"}, src, logging.Discard())
}

func TestHandleListAnimals(t *testing.T) {
	s := newTestServer(catalog.Static{})

	_, result, err := s.handleListAnimals(context.Background(), nil, ListAnimalsArgs{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(result.Animals) != 4 {
		t.Fatalf("Expected 4 animals, got %d", len(result.Animals))
	}

	names := []string{"Pierre", "Anna", "Max", "Lucy"}
	for i, want := range names {
		if result.Animals[i].Name != want {
			t.Errorf("Expected animal %d to be %s, got %s", i, want, result.Animals[i].Name)
		}
		if result.Animals[i].ID == "" {
			t.Errorf("Expected id for %s", want)
		}
	}
}

func TestHandleListAnimals_Empty(t *testing.T) {
	s := newTestServer(&MockSource{})

	_, result, err := s.handleListAnimals(context.Background(), nil, ListAnimalsArgs{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result.Animals == nil || len(result.Animals) != 0 {
		t.Errorf("Expected empty non-nil list, got %v", result.Animals)
	}
}

func TestHandleGetAnimal_ByName(t *testing.T) {
	s := newTestServer(catalog.Static{})

	_, result, err := s.handleGetAnimal(context.Background(), nil, GetAnimalArgs{Ref: "ANNA"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if result.Name != "Anna" {
		t.Errorf("Expected Anna, got '%s'", result.Name)
	}
	if result.Gender != "Female" {
		t.Errorf("Expected gender 'Female', got '%s'", result.Gender)
	}
	if result.AdoptionFee != "$400" || result.Weight != "5 kg" || result.Age != "6 months" || result.Size != "Medium" {
		t.Errorf("Unexpected attributes: %+v", result)
	}
	if result.Detail != "She is a beautiful girl." {
		t.Errorf("Unexpected detail '%s'", result.Detail)
	}
}

func TestHandleGetAnimal_ByID(t *testing.T) {
	animal := catalog.Animals()[2]
	s := newTestServer(catalog.Static{})

	_, result, err := s.handleGetAnimal(context.Background(), nil, GetAnimalArgs{Ref: animal.ID.String()})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result.Name != "Max" || result.Gender != "Male" {
		t.Errorf("Expected Max/Male, got %s/%s", result.Name, result.Gender)
	}
}

func TestHandleGetAnimal_NotFound(t *testing.T) {
	s := newTestServer(catalog.Static{})

	_, _, err := s.handleGetAnimal(context.Background(), nil, GetAnimalArgs{Ref: "Rex"})
	if err == nil {
		t.Fatal("Expected error for unknown animal")
	}
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestServer_InMemorySession(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := newTestServer(catalog.Static{})
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	serverSession, err := s.mcpServer.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	defer session.Close()

	var tools []string
	for tool, err := range session.Tools(ctx, nil) {
		if err != nil {
			t.Fatalf("list tools: %v", err)
		}
		tools = append(tools, tool.Name)
	}
	if len(tools) != 2 {
		t.Errorf("Expected 2 tools, got %v", tools)
	}

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_animal",
		Arguments: map[string]any{"ref": "lucy"},
	})
	if err != nil {
		t.Fatalf("call get_animal: %v", err)
	}
	if res.IsError {
		t.Fatalf("Expected success, got error result: %+v", res.Content)
	}
	if !contentContains(res, "Lucy") {
		t.Errorf("Expected Lucy in result content")
	}

	res, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_animal",
		Arguments: map[string]any{"ref": "nobody"},
	})
	if err == nil && !res.IsError {
		t.Error("Expected an error for unknown animal")
	}
}

func contentContains(res *mcp.CallToolResult, s string) bool {
	for _, c := range res.Content {
		if tc, ok := c.(*mcp.TextContent); ok && strings.Contains(tc.Text, s) {
			return true
		}
	}
	return false
}
