package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"proker/internal/auth"
	"proker/internal/events"
	"proker/internal/navigator"
	"proker/internal/repository"
	"proker/internal/router"
	"proker/internal/storage"
)

func main() {
	dsn := os.Getenv("PROKER_DB")
	if dsn == "" {
		dsn = "proker.db"
	}

	store, err := storage.Open(dsn)
	if err != nil {
		log.Fatal("Failed to open store: ", err)
	}

	hub := events.NewHub()
	hub.Subscribe(func(evt events.Event) {
		log.Printf("event: %s %s", evt.Kind, evt.EntityID)
	})

	repo := repository.New(store, hub)
	sessions := auth.NewService(store)
	resolver := router.New()
	nav := navigator.New(resolver, sessions, navigator.LoaderFunc(func(route router.Resolved) {
		log.Printf("loaded route %s (path %s, params %v)", route.Name, route.Path, route.Params)
	}))

	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "seed":
		store.Init()
		log.Println("Store seeded with default data")

	case "open":
		if len(os.Args) < 3 {
			usage()
			return
		}
		nav.Navigate(os.Args[2])

	case "export":
		data, ok := store.Export()
		if !ok {
			log.Fatal("Export failed")
		}
		if len(os.Args) >= 3 {
			if err := os.WriteFile(os.Args[2], data, 0o644); err != nil {
				log.Fatal("Failed to write export: ", err)
			}
			log.Printf("Exported to %s", os.Args[2])
			return
		}
		fmt.Println(string(data))

	case "import":
		if len(os.Args) < 3 {
			usage()
			return
		}
		data, err := os.ReadFile(os.Args[2])
		if err != nil {
			log.Fatal("Failed to read import file: ", err)
		}
		if !store.Import(data) {
			log.Fatal("Import failed; store left untouched")
		}
		log.Println("Import applied")

	case "stats":
		out := map[string]any{
			"projects": repo.ProjectStats(),
			"tasks":    repo.TaskStats(),
		}
		encoded, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(encoded))

	default:
		usage()
	}
}

func usage() {
	log.Println("Usage: proker <command>")
	log.Println("  seed              seed default projects, tasks and settings")
	log.Println("  open <path>       resolve a route and load it through the guards")
	log.Println("  export [file]     export the store as pretty-printed JSON")
	log.Println("  import <file>     import a previously exported document")
	log.Println("  stats             print project and task statistics")
}
