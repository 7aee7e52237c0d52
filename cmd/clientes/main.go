package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/celerix-dev/clientes/internal/api"
	"github.com/celerix-dev/clientes/internal/engine"
	"github.com/celerix-dev/clientes/pkg/query"
	"github.com/celerix-dev/clientes/pkg/sdk"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		return
	}

	command := strings.ToUpper(os.Args[1])
	args := os.Args[2:]

	// SEED picks its own store so it can dry-run without a server.
	if command == "SEED" {
		seed(args)
		return
	}

	addr := os.Getenv("CLIENTES_API_ADDR")
	if addr == "" {
		addr = "localhost:8000"
	}

	client, err := sdk.Connect(addr)
	if err != nil {
		log.Fatalf("Failed to connect to %s: %v", addr, err)
	}
	defer client.Close()

	switch command {
	case "LIST":
		var raw [3]string
		copy(raw[:], args)
		params, err := query.ParseParams(raw[0], raw[1], raw[2])
		if err != nil {
			log.Fatal(err)
		}
		page, err := client.Query(params)
		if err != nil {
			log.Fatal(err)
		}
		printJSON(page.Items)
		fmt.Println(query.ContentRange(api.Resource, page))

	case "GET":
		if len(args) < 1 {
			log.Fatal("Usage: clientes GET <id>")
		}
		c, err := client.Get(args[0])
		if err != nil {
			log.Fatal(err)
		}
		printJSON(c)

	case "CREATE":
		if len(args) < 2 {
			log.Fatal("Usage: clientes CREATE <first_name> <last_name>")
		}
		c, err := client.Create(args[0], args[1])
		if err != nil {
			log.Fatal(err)
		}
		printJSON(c)

	case "UPDATE":
		if len(args) < 3 {
			log.Fatal("Usage: clientes UPDATE <id> <first_name> <last_name>")
		}
		c, err := client.Update(args[0], args[1], args[2])
		if err != nil {
			log.Fatal(err)
		}
		printJSON(c)

	case "DEL":
		if len(args) < 1 {
			log.Fatal("Usage: clientes DEL <id>")
		}
		if err := client.Delete(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Println("OK")

	case "MIGRATE":
		if len(args) < 1 {
			log.Fatal("Usage: clientes MIGRATE <dst_addr>")
		}
		dst, err := sdk.Connect(args[0])
		if err != nil {
			log.Fatalf("Failed to connect to %s: %v", args[0], err)
		}
		defer dst.Close()
		n, err := engine.Migrate(client, dst)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Copied %d clientes to %s\n", n, args[0])

	case "PING":
		if err := client.Ping(); err != nil {
			log.Fatal(err)
		}
		fmt.Println("PONG")

	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

func seed(args []string) {
	if len(args) < 1 {
		log.Fatal("Usage: clientes SEED <file>")
	}

	store, err := sdk.New()
	if err != nil {
		log.Fatal(err)
	}
	n, err := engine.Seed(store, args[0])
	if err != nil {
		log.Fatal(err)
	}
	if _, embedded := store.(*engine.MemStore); embedded {
		fmt.Printf("Validated %d clientes (no reachable CLIENTES_API_ADDR, nothing was sent)\n", n)
		return
	}
	fmt.Printf("Seeded %d clientes\n", n)
}

func printUsage() {
	fmt.Println("Clientes CLI - Interface for the clientes API")
	fmt.Println("\nUsage:")
	fmt.Println("  clientes LIST [filter] [sort] [range]   e.g. LIST '{\"q\":\"ann\"}' '[\"last_name\",\"ASC\"]' '[0,9]'")
	fmt.Println("  clientes GET <id>")
	fmt.Println("  clientes CREATE <first_name> <last_name>")
	fmt.Println("  clientes UPDATE <id> <first_name> <last_name>")
	fmt.Println("  clientes DEL <id>")
	fmt.Println("  clientes MIGRATE <dst_addr>")
	fmt.Println("  clientes SEED <file>")
	fmt.Println("  clientes PING")
	fmt.Println("\nSortable fields:", strings.Join(query.SortableFields(), ", "))
	fmt.Println("\nEnvironment Variables:")
	fmt.Println("  CLIENTES_API_ADDR    Address of the API (default: localhost:8000)")
}

func printJSON(v any) {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(v)
		return
	}
	fmt.Println(string(bytes))
}
