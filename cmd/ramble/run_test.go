package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asrivast28/ramble-go/ciquery"
	"github.com/asrivast28/ramble-go/counter"
	"github.com/asrivast28/ramble-go/internal/config"
	"github.com/asrivast28/ramble-go/learn"
)

func TestNewDriver_KnownNames(t *testing.T) {
	cfg := learn.Config{N: 3, MaxConditioning: 3}
	for _, name := range config.Algorithms {
		d, err := newDriver(name, cfg)
		require.NoError(t, err, "newDriver(%q)", name)
		assert.Equal(t, name, d.Name())
	}
}

func TestNewDriver_UnknownName_ReturnsErrUnknownAlgorithm(t *testing.T) {
	_, err := newDriver("bogus", learn.Config{})
	assert.True(t, errors.Is(err, config.ErrUnknownAlgorithm))
}

func TestColliderTest_GlobalDriver_UsesGlobalTest(t *testing.T) {
	col0 := []int{0, 1, 0, 1}
	col1 := []int{0, 1, 0, 1}
	col2 := []int{0, 0, 1, 1}
	tbl, err := counter.NewTable([][]int{col0, col1, col2})
	require.NoError(t, err)
	oracle := ciquery.NewOracle(tbl, ciquery.WithAlpha(0.05))
	driverCfg := learn.Config{Oracle: oracle, N: 3, MaxConditioning: 3}
	driver := learn.NewPCStable(driverCfg)
	test, err := colliderTest(3, oracle, driver, nil)
	require.NoError(t, err)
	assert.NotNil(t, test)
}
