/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cfdlabs/ringdiff/model_problems/NonlocalDiffusion1D"
)

// SolveCmd represents the solve command
var SolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Single run of the nonlocal diffusion model problem",
	Long: `
Advances the density for one beta value with the chosen spatial scheme and
prints the final state summary,

ringdiff solve `,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			cfg NonlocalDiffusion1D.Config
			err error
		)
		scheme, _ := cmd.Flags().GetString("scheme")
		if cfg.Scheme, err = NonlocalDiffusion1D.NewSchemeType(scheme); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		cfg.N, _ = cmd.Flags().GetInt("n")
		cfg.Dt, _ = cmd.Flags().GetFloat64("dt")
		cfg.FinalTime, _ = cmd.Flags().GetFloat64("finalTime")
		cfg.Beta, _ = cmd.Flags().GetFloat64("beta")
		cfg.D0, _ = cmd.Flags().GetFloat64("d0")
		logFrequency, _ := cmd.Flags().GetInt("logFrequency")
		RunSolve(cfg, logFrequency)
	},
}

func init() {
	rootCmd.AddCommand(SolveCmd)
	SolveCmd.Flags().StringP("scheme", "s", "fdm", "spatial scheme: fdm or fem")
	SolveCmd.Flags().IntP("n", "n", 128, "number of grid nodes, must be even")
	SolveCmd.Flags().Float64("dt", 1.e-4, "time step, explicit stability requires dt <~ h^2/(2 max D)")
	SolveCmd.Flags().Float64("finalTime", 1.0, "the target end time for the sim")
	SolveCmd.Flags().Float64P("beta", "b", 0, "strength of the nonlocal coupling term")
	SolveCmd.Flags().Float64("d0", 3.0, "base diffusivity D0 (D1 is fixed at 2*D0)")
	SolveCmd.Flags().Int("logFrequency", 1000, "number of steps between progress lines, 0 disables")
}

func RunSolve(cfg NonlocalDiffusion1D.Config, logFrequency int) {
	sim, err := NonlocalDiffusion1D.NewSimulation(cfg)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("Scheme: %s\nN = %d, dt = %8.6f, FinalTime = %8.4f, beta = %8.4f, D0 = %8.4f, steps = %d\n\n",
		cfg.Scheme, cfg.N, cfg.Dt, cfg.FinalTime, cfg.Beta, cfg.D0, cfg.Steps())
	sim.LogFrequency = logFrequency
	res := sim.Run()
	if res.Err != nil {
		fmt.Printf("run failed: %s\n", res.Err.Error())
		os.Exit(1)
	}
	fmt.Printf("\nFinal state: rhomin = %8.6f, rhomax = %8.6f, mass = %8.6f\n",
		res.Rho.Min(), res.Rho.Max(), res.Grid.Mass(res.Rho))
}
