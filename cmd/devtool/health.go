package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	healthTimeout     = 5 * time.Second
	healthSlowWarning = time.Second
)

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check API liveness, readiness and version (base URL defaults to API_URL)"
}

func (c *HealthCheckCommand) Run(args []string) error {
	baseURL := getEnv("API_URL", "http://localhost:8080")
	if len(args) > 0 {
		baseURL = args[0]
	}

	PrintHeader(fmt.Sprintf("Health Check (%s)", baseURL))

	for _, path := range []string{"/healthz", "/readyz"} {
		start := time.Now()
		if err := c.probe(baseURL + path); err != nil {
			PrintError("%s failed: %v", path, err)
			return err
		}
		if d := time.Since(start); d > healthSlowWarning {
			PrintWarning("%s slow response time (%v)", path, d)
		} else {
			PrintSuccess("%s passed (response time: %v)", path, d)
		}
	}

	var version struct {
		Version   string `json:"version"`
		GitCommit string `json:"git_commit"`
	}
	if err := c.getJSON(baseURL+"/version", &version); err != nil {
		PrintWarning("Could not read version: %v", err)
		return nil
	}
	PrintInfo("Running version %s (%s)", version.Version, version.GitCommit)
	return nil
}

func (c *HealthCheckCommand) probe(url string) error {
	return c.getJSON(url, nil)
}

func (c *HealthCheckCommand) getJSON(url string, out any) error {
	ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
