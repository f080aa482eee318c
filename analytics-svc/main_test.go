package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"overcooked-analytics/analytics-svc/internal/domain"
	"overcooked-analytics/analytics-svc/internal/engine"
	"overcooked-analytics/analytics-svc/internal/service"
	"overcooked-analytics/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *service.AnalyticsService {
	return service.NewAnalyticsService(engine.New(engine.Options{}), nil, nil, service.DefaultQRGenerator{})
}

func TestLoadOrdersAndWriteSorted(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "orders.txt")
	output := filepath.Join(dir, "salida.txt")
	require.NoError(t, os.WriteFile(input, []byte(
		"Jun 3 10:00:00 R:A O:Taco(5)\n"+
			"not an order\n"+
			"Jun 1 9:05:00 R:A O:Pizza(10)\n"), 0o644))

	svc := newService()
	res, err := loadOrders(context.Background(), config.Config{OrdersFile: input}, svc)
	require.NoError(t, err)
	assert.Equal(t, domain.LoadResult{Accepted: 2, Malformed: 1}, res)

	require.NoError(t, writeSorted(output, svc))
	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "Jun 1 09:05:00 R:A O:Pizza(10)\nJun 3 10:00:00 R:A O:Taco(5)\n", string(got))
}

func TestLoadOrders_MissingFile(t *testing.T) {
	_, err := loadOrders(context.Background(), config.Config{OrdersFile: filepath.Join(t.TempDir(), "nope.txt")}, newService())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
