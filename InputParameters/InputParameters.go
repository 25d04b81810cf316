package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file. The grid size key is spelled
// out as NodeCount: a bare N scans as a YAML 1.1 boolean and would silently
// drop the value.
type SweepParameters struct {
	Title     string    `yaml:"Title"`
	Scheme    string    `yaml:"Scheme"` // "fdm" or "fem"
	NodeCount int       `yaml:"NodeCount"`
	Dt        float64   `yaml:"Dt"`
	FinalTime float64   `yaml:"FinalTime"`
	D0        float64   `yaml:"D0"`
	Betas     []float64 `yaml:"Betas"`
}

func (sp *SweepParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, sp)
}

func (sp *SweepParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", sp.Title)
	fmt.Printf("[%s]\t\t\t= Scheme\n", sp.Scheme)
	fmt.Printf("%d\t\t\t= NodeCount\n", sp.NodeCount)
	fmt.Printf("%8.6f\t\t= Dt\n", sp.Dt)
	fmt.Printf("%8.5f\t\t= FinalTime\n", sp.FinalTime)
	fmt.Printf("%8.5f\t\t= D0\n", sp.D0)
	fmt.Printf("%v\t= Betas\n", sp.Betas)
}
