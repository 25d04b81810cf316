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

	"github.com/cfdlabs/ringdiff/InputParameters"
	"github.com/cfdlabs/ringdiff/model_problems/NonlocalDiffusion1D"
)

// SweepCmd represents the sweep command
var SweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep over beta values, one independent run per beta",
	Long: `
Reads run parameters and a list of beta values from a YAML file, executes one
independent run per beta concurrently and prints a summary table,

ringdiff sweep `,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		paramFile, _ := cmd.Flags().GetString("paramFile")
		if len(paramFile) == 0 {
			fmt.Printf("error: must supply a parameter file (-F, --paramFile) in YAML format\n")
			exampleFile := `
########################################
Title: "Beta Sweep"
Scheme: fdm # Can be "fem"
NodeCount: 128
Dt: 1.e-4
FinalTime: 1.
D0: 3.
Betas: [0, 4, 8, 16, 32]
########################################
`
			fmt.Printf("Example File:%s\n", exampleFile)
			os.Exit(1)
		}
		data, err := os.ReadFile(paramFile)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		sp := &InputParameters.SweepParameters{}
		if err = sp.Parse(data); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		sp.Print()
		keepGoing, _ := cmd.Flags().GetBool("keepGoing")
		RunSweep(sp, keepGoing)
	},
}

func init() {
	rootCmd.AddCommand(SweepCmd)
	SweepCmd.Flags().StringP("paramFile", "F", "", "YAML file with run parameters and the list of betas")
	SweepCmd.Flags().Bool("keepGoing", false, "report failed betas and continue instead of aborting the sweep")
}

func RunSweep(sp *InputParameters.SweepParameters, keepGoing bool) {
	var (
		cfg NonlocalDiffusion1D.Config
		err error
	)
	if cfg.Scheme, err = NonlocalDiffusion1D.NewSchemeType(sp.Scheme); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	cfg.N, cfg.Dt, cfg.FinalTime, cfg.D0 = sp.NodeCount, sp.Dt, sp.FinalTime, sp.D0
	if err = cfg.Validate(); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}

	results := NonlocalDiffusion1D.Sweep(cfg, sp.Betas)
	fmt.Printf("\n%8s %12s %12s %12s %12s %8s\n", "beta", "rhomin", "rhomax", "spread", "mass", "steps")
	for _, res := range results {
		if res.Err != nil {
			fmt.Printf("%8.3f failed: %s\n", res.Beta, res.Err.Error())
			if !keepGoing {
				os.Exit(1)
			}
			continue
		}
		min, max := res.Rho.Min(), res.Rho.Max()
		fmt.Printf("%8.3f %12.6f %12.6f %12.6f %12.6f %8d\n",
			res.Beta, min, max, max-min, res.Grid.Mass(res.Rho), res.Steps)
	}
}
