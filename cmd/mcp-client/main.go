// Command mcp-client spawns a pawlist MCP server and queries it from a prompt.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, s *mcp.ClientSession, arg string)
}

var commands = []command{
	{"/tools", "list the server's tools", func(ctx context.Context, s *mcp.ClientSession, _ string) {
		listTools(ctx, s)
	}},
	{"/list", "list adoptable animals", func(ctx context.Context, s *mcp.ClientSession, _ string) {
		callTool(ctx, s, "list_animals", map[string]any{})
	}},
	{"/show", "<name|id> show one animal", func(ctx context.Context, s *mcp.ClientSession, arg string) {
		if arg == "" {
			fmt.Println("/show needs a name or id")
			return
		}
		callTool(ctx, s, "get_animal", map[string]any{"ref": arg})
	}},
}

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: mcp-client <server-command> [args...]")
		fmt.Fprintln(os.Stderr, "  e.g. mcp-client ./pawlist mcp")
	}
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	client := mcp.NewClient(&mcp.Implementation{Name: "pawlist-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, &mcp.CommandTransport{Command: exec.Command(args[0], args[1:]...)}, nil)
	if err != nil {
		log.Fatalf("connect to %s: %v", args[0], err)
	}
	defer session.Close()

	printCommands(os.Stdout)
	if err := prompt(ctx, session, os.Stdin); err != nil {
		log.Printf("read input: %v", err)
	}
}

func printCommands(w io.Writer) {
	for _, c := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.usage)
	}
	fmt.Fprintf(w, "  %-8s %s\n\n", "/exit", "quit")
}

// prompt reads one command per line until /exit or end of input.
func prompt(ctx context.Context, session *mcp.ClientSession, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for fmt.Print("pawlist> "); scanner.Scan(); fmt.Print("pawlist> ") {
		name, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		switch name {
		case "":
			continue
		case "/exit":
			return nil
		}

		found := false
		for _, c := range commands {
			if c.name == name {
				c.run(ctx, session, strings.TrimSpace(arg))
				found = true
				break
			}
		}
		if !found {
			printCommands(os.Stdout)
		}
	}
	return scanner.Err()
}

func listTools(ctx context.Context, session *mcp.ClientSession) {
	for tool, err := range session.Tools(ctx, nil) {
		if err != nil {
			log.Printf("list tools: %v", err)
			return
		}
		fmt.Printf("%s\t%s\n", tool.Name, tool.Description)
	}
}

func callTool(ctx context.Context, session *mcp.ClientSession, name string, args map[string]any) {
	res, err := session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		log.Printf("%s: %v", name, err)
		return
	}

	if res.IsError {
		fmt.Print("error: ")
	}
	for _, c := range res.Content {
		if text, ok := c.(*mcp.TextContent); ok {
			fmt.Println(prettyJSON(text.Text))
			continue
		}
		out, _ := json.MarshalIndent(c, "", "  ")
		fmt.Println(string(out))
	}
}

// prettyJSON indents text when it is a JSON document and returns it
// unchanged otherwise.
func prettyJSON(text string) string {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return text
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return text
	}
	return string(out)
}
