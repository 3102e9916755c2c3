package main

import (
	"os"

	"github.com/joho/godotenv"
)

func newRegistry() *Registry {
	r := NewRegistry()
	r.Register(&BuildCommand{})
	r.Register(&CatalogCommand{})
	r.Register(&CheckDBCommand{})
	r.Register(&CheckDepsCommand{})
	r.Register(&CreateDBCommand{})
	r.Register(&DoctorCommand{})
	r.Register(&EntrypointCommand{})
	r.Register(&HealthCheckCommand{})
	r.Register(&MigrateCommand{})
	r.Register(&ResetDBCommand{})
	r.Register(&SeedCommand{})
	r.Register(&WaitForDBCommand{})
	r.Register(&WatchEventsCommand{})
	return r
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	registry := newRegistry()

	if len(os.Args) < 2 {
		registry.PrintHelp()
		os.Exit(1)
	}

	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		PrintError("Unknown command: %s", os.Args[1])
		registry.PrintHelp()
		os.Exit(1)
	}

	if err := cmd.Run(os.Args[2:]); err != nil {
		PrintError("%s failed: %v", cmd.Name(), err)
		os.Exit(1)
	}
}
