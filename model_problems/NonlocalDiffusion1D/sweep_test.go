package NonlocalDiffusion1D

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepOrderAndIndependence(t *testing.T) {
	cfg := Config{Scheme: FDM, N: 32, Dt: 1.e-3, FinalTime: 0.05, D0: 3}
	betas := []float64{0, 8, 16, 4}
	results := Sweep(cfg, betas)
	require.Equal(t, len(betas), len(results))
	for i, res := range results {
		// results come back in input order, one independent run per beta
		assert.Equal(t, betas[i], res.Beta)
		require.NoError(t, res.Err)
		assert.Equal(t, cfg.Steps(), res.Steps)
		assert.NotNil(t, res.Grid)
		assert.InDelta(t, 1, res.Grid.Mass(res.Rho), 1.e-8)
	}
	// the beta = 0 run is not disturbed by concurrent neighbors: it matches
	// a standalone run bit for bit
	sim, err := NewSimulation(cfg)
	require.NoError(t, err)
	solo := sim.Run()
	require.NoError(t, solo.Err)
	for i := 0; i < cfg.N; i++ {
		assert.Equal(t, solo.Rho.AtVec(i), results[0].Rho.AtVec(i))
	}
}

func TestSweepReportsConfigErrors(t *testing.T) {
	cfg := Config{Scheme: FDM, N: 31, Dt: 1.e-3, FinalTime: 0.05, D0: 3}
	results := Sweep(cfg, []float64{0, 1})
	require.Equal(t, 2, len(results))
	for _, res := range results {
		assert.Error(t, res.Err)
	}
}
