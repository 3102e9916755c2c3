package postgres

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	code := m.Run()
	if terminateFn != nil {
		terminateFn()
	}
	os.Exit(code)
}
