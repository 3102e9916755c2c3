package main

import (
	"context"
	"fmt"
	"time"
)

const (
	waitForDBRetries  = 30
	waitForDBInterval = 2 * time.Second
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for database to be ready (with retries)"
}

func (c *WaitForDBCommand) Run(args []string) error {
	PrintHeader("Waiting for database...")

	var err error
	for i := 0; i < waitForDBRetries; i++ {
		if err = c.ping(); err == nil {
			PrintSuccess("Database is ready")
			return nil
		}

		fmt.Printf("Database not ready (%d/%d): %v\n", i+1, waitForDBRetries, err)
		time.Sleep(waitForDBInterval)
	}

	return fmt.Errorf("database failed to become ready after %d attempts: %w", waitForDBRetries, err)
}

// ping opens a pool, which pings on creation, and closes it again
func (c *WaitForDBCommand) ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), waitForDBInterval)
	defer cancel()

	pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	pool.Close()
	return nil
}
