//go:build staging

package staging

import (
	"net/http"
	"testing"

	"github.com/osse101/NeuroFarm_Go/internal/handler"
)

func TestCatalogSeeded(t *testing.T) {
	var crops []handler.CropTypeResponse
	resp, body := makeRequest(t, "GET", "/api/v1/catalog/crops", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	decode(t, body, &crops)
	if len(crops) == 0 {
		t.Error("Expected at least one crop in the catalog")
	}

	var regions []handler.RegionResponse
	resp, body = makeRequest(t, "GET", "/api/v1/catalog/regions", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	decode(t, body, &regions)

	foundStarter := false
	for _, r := range regions {
		if r.RequiredLevel <= 1 {
			foundStarter = true
			break
		}
	}
	if !foundStarter {
		t.Error("Expected a region open to level 1 players")
	}
}

func TestUnknownFarmIsNotFound(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/farms/999999999", nil)

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d. Body: %s", resp.StatusCode, string(body))
	}
}
