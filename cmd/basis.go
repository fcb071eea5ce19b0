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
	"math"

	"github.com/spf13/cobra"

	"github.com/notargets/gofea/element"
)

// basisCmd represents the basis command
var basisCmd = &cobra.Command{
	Use:   "basis",
	Short: "Report Lagrange basis values and derivatives for an element",
	Long: `
Builds the tensor-product Lagrange basis of the requested order and
dimension, prints the nodal coordinates in flattening order and samples
the basis across the reference element, reporting the worst partition
of unity residual.

gofea basis -n 2 -d 3 --spacing lobatto`,
	Run: func(cmd *cobra.Command, args []string) {
		order, _ := cmd.Flags().GetInt("order")
		dim, _ := cmd.Flags().GetInt("dim")
		spacingName, _ := cmd.Flags().GetString("spacing")
		samples, _ := cmd.Flags().GetInt("samples")
		spacing, err := parseSpacing(spacingName)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			return
		}
		if err = runBasis(order, dim, spacing, samples); err != nil {
			fmt.Printf("error: %s\n", err.Error())
		}
	},
}

func init() {
	rootCmd.AddCommand(basisCmd)
	basisCmd.Flags().IntP("order", "n", 1, "polynomial order")
	basisCmd.Flags().IntP("dim", "d", 3, "element dimension (1, 2 or 3)")
	basisCmd.Flags().String("spacing", "equispaced", "node spacing: equispaced or lobatto")
	basisCmd.Flags().Int("samples", 5, "sample points per axis")
}

func parseSpacing(name string) (s element.NodeSpacing, err error) {
	switch name {
	case "equispaced":
		s = element.Equispaced
	case "lobatto":
		s = element.Lobatto
	default:
		err = fmt.Errorf("unknown node spacing %q", name)
	}
	return
}

func runBasis(order, dim int, spacing element.NodeSpacing, samples int) (err error) {
	if samples < 2 {
		samples = 2
	}
	table := element.NewTable()
	b, err := table.Basis(order, dim, spacing)
	if err != nil {
		return
	}
	fmt.Printf("order %d, dimension %d, %s nodes, %d basis functions\n",
		order, dim, spacing, b.NP())
	fmt.Printf("node coordinates (first axis fastest):\n%v\n", b.NodeCoordinates())

	var worst float64
	point := make([]float64, dim)
	nTot := 1
	for d := 0; d < dim; d++ {
		nTot *= samples
	}
	for flat := 0; flat < nTot; flat++ {
		rem := flat
		for d := 0; d < dim; d++ {
			id := rem % samples
			rem /= samples
			point[d] = -1 + 2*float64(id)/float64(samples-1)
		}
		H, errE := b.Eval(point...)
		if errE != nil {
			return errE
		}
		if res := math.Abs(H.Sum() - 1); res > worst {
			worst = res
		}
	}
	fmt.Printf("worst partition of unity residual over %d samples: %8.2e\n",
		nTot, worst)
	return
}
