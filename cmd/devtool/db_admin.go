package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

const dbAdminTimeout = 30 * time.Second

// serverConn connects to the maintenance database so the application
// database can be created or dropped
func serverConn(ctx context.Context) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, dbURL("postgres"))
	if err != nil {
		return nil, fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	return conn, nil
}

func databaseExists(ctx context.Context, conn *pgx.Conn, name string) (bool, error) {
	var exists bool
	err := conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check if database exists: %w", err)
	}
	return exists, nil
}

type CreateDBCommand struct{}

func (c *CreateDBCommand) Name() string {
	return "create-db"
}

func (c *CreateDBCommand) Description() string {
	return "Create the application database if it does not exist"
}

func (c *CreateDBCommand) Run(args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), dbAdminTimeout)
	defer cancel()

	conn, err := serverConn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	name := dbName()
	exists, err := databaseExists(ctx, conn, name)
	if err != nil {
		return err
	}
	if exists {
		PrintInfo("Database %s already exists", name)
		return nil
	}

	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{name}.Sanitize()); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	PrintSuccess("Database %s created", name)
	return nil
}

type ResetDBCommand struct{}

func (c *ResetDBCommand) Name() string {
	return "reset-db"
}

func (c *ResetDBCommand) Description() string {
	return "Drop and recreate the application database (-y skips the prompt)"
}

func (c *ResetDBCommand) Run(args []string) error {
	if getEnv("ENVIRONMENT", "") == envProduction {
		return fmt.Errorf("refusing to reset the database with ENVIRONMENT=%s", envProduction)
	}

	name := dbName()
	if len(args) == 0 || args[0] != "-y" {
		fmt.Printf("This drops database %s and every player in it. Type '%s' to continue: ", name, confirmYes)
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.TrimSpace(answer) != confirmYes {
			PrintWarning("Aborted")
			return nil
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbAdminTimeout)
	defer cancel()

	conn, err := serverConn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	PrintInfo("Terminating existing connections to %s...", name)
	if _, err := conn.Exec(ctx, `
		SELECT pg_terminate_backend(pid)
		FROM pg_stat_activity
		WHERE datname = $1 AND pid <> pg_backend_pid()`, name); err != nil {
		PrintWarning("Failed to terminate connections: %v", err)
	}

	ident := pgx.Identifier{name}.Sanitize()
	if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+ident); err != nil {
		return fmt.Errorf("failed to drop database: %w", err)
	}
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+ident); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	PrintSuccess("Database %s reset", name)
	PrintInfo("Next step: devtool migrate up && devtool seed")
	return nil
}
