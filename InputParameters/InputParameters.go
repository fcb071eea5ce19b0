package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML case file
type CaseParameters struct {
	Title           string             `yaml:"Title"`
	PolynomialOrder int                `yaml:"PolynomialOrder"`
	Dimension       int                `yaml:"Dimension"`
	NodeSpacing     string             `yaml:"NodeSpacing"` // "equispaced" or "lobatto"
	QuadraturePts   int                `yaml:"QuadraturePoints"`
	Material        string             `yaml:"Material"` // "neo-hooke" or "svk"
	Constants       map[string]float64 `yaml:"Constants"` // mu, lambda
	Pressure        float64            `yaml:"Pressure"`
	VolumeRatio     float64            `yaml:"VolumeRatio"` // Jbar
	DefGradient     [][]float64        `yaml:"DeformationGradient"`
}

func (cp *CaseParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, cp)
}

func (cp *CaseParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", cp.Title)
	fmt.Printf("[%d]\t\t\t\t= Polynomial Order\n", cp.PolynomialOrder)
	fmt.Printf("[%d]\t\t\t\t= Dimension\n", cp.Dimension)
	fmt.Printf("[%s]\t\t= Node Spacing\n", cp.NodeSpacing)
	fmt.Printf("[%d]\t\t\t\t= Quadrature Points per Axis\n", cp.QuadraturePts)
	fmt.Printf("[%s]\t\t= Material\n", cp.Material)
	keys := make([]string, len(cp.Constants))
	i := 0
	for k := range cp.Constants {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("Constants[%s] = %v\n", key, cp.Constants[key])
	}
	fmt.Printf("%8.5f\t\t= Pressure\n", cp.Pressure)
	fmt.Printf("%8.5f\t\t= Volume Ratio (Jbar)\n", cp.VolumeRatio)
	fmt.Printf("DeformationGradient = %v\n", cp.DefGradient)
}
