package NonlocalDiffusion1D

import (
	"sync"
)

// Sweep runs one independent Simulation per beta value concurrently and
// returns results in the order the betas were given. Each run owns its own
// state vector and, for the finite element variant, its own operator
// matrices, so no synchronization is needed beyond collecting the results.
// A run that fails to configure or aborts mid-run reports through its
// Result's Err field; the caller decides whether that is fatal for the whole
// sweep.
func Sweep(cfg Config, betas []float64) (results []Result) {
	var wg sync.WaitGroup
	results = make([]Result, len(betas))
	for i, beta := range betas {
		wg.Add(1)
		go func(i int, beta float64) {
			defer wg.Done()
			runCfg := cfg
			runCfg.Beta = beta
			sim, err := NewSimulation(runCfg)
			if err != nil {
				results[i] = Result{Beta: beta, Err: err}
				return
			}
			results[i] = sim.Run()
		}(i, beta)
	}
	wg.Wait()
	return
}
