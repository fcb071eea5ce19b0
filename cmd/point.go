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
	"io/ioutil"

	"github.com/spf13/cobra"

	"github.com/notargets/gofea/InputParameters"
	"github.com/notargets/gofea/hyperelastic"
	"github.com/notargets/gofea/tensor"
)

// pointCmd represents the point command
var pointCmd = &cobra.Command{
	Use:   "point",
	Short: "Evaluate the three-field residual and tangent at one state",
	Long: `
Reads a YAML case file describing a material and a deformation state and
prints the three-field residual contributions and the six tangent blocks
at that quadrature point.

gofea point -I case.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		caseFile, _ := cmd.Flags().GetString("inputCaseFile")
		if len(caseFile) == 0 {
			fmt.Println("error: must supply a case file (-I, --inputCaseFile)")
			exampleCase()
			return
		}
		if err := runPoint(caseFile); err != nil {
			fmt.Printf("error: %s\n", err.Error())
		}
	},
}

func init() {
	rootCmd.AddCommand(pointCmd)
	pointCmd.Flags().StringP("inputCaseFile", "I", "", "YAML case file")
}

func exampleCase() {
	fmt.Print(`
########################################
Title: "Uniaxial Stretch"
Material: neo-hooke
Constants:
  mu: 1.0
  lambda: 10.0
Pressure: 0.1
VolumeRatio: 1.05
DeformationGradient:
  - [1.2, 0.0, 0.0]
  - [0.0, 0.95, 0.0]
  - [0.0, 0.0, 0.95]
########################################
`)
}

func runPoint(caseFile string) (err error) {
	data, err := ioutil.ReadFile(caseFile)
	if err != nil {
		return
	}
	cp := &InputParameters.CaseParameters{}
	if err = cp.Parse(data); err != nil {
		return
	}
	cp.Print()

	m, err := makeMaterial(cp.Material, cp.Constants)
	if err != nil {
		return
	}
	F, err := defGradient(cp.DefGradient)
	if err != nil {
		return
	}
	res, tg, err := hyperelastic.Evaluate(m, F, cp.Pressure, cp.VolumeRatio)
	if err != nil {
		return
	}

	fmt.Printf("\nresidual contributions:\n")
	printMat3("f_u", res.Fu)
	fmt.Printf("f_p   = %10.6f\n", res.Fp)
	fmt.Printf("f_J   = %10.6f\n\n", res.FJ)

	fmt.Printf("tangent blocks:\n")
	printMat3("A_up", tg.Aup)
	printMat3("A_uJ", tg.AuJ)
	fmt.Printf("A_pp  = %10.6f\n", tg.App)
	fmt.Printf("A_pJ  = %10.6f\n", tg.ApJ)
	fmt.Printf("A_JJ  = %10.6f\n", tg.AJJ)
	return
}

func makeMaterial(name string, constants map[string]float64) (m hyperelastic.Material, err error) {
	var (
		mu     = constants["mu"]
		lambda = constants["lambda"]
	)
	switch name {
	case "neo-hooke":
		m = hyperelastic.NeoHooke{Mu: mu, Lambda: lambda}
	case "svk":
		m = hyperelastic.StVenantKirchhoff{Mu: mu, Lambda: lambda}
	default:
		err = fmt.Errorf("unknown material %q", name)
	}
	return
}

func defGradient(rows [][]float64) (F tensor.Mat3, err error) {
	if len(rows) != 3 {
		err = fmt.Errorf("deformation gradient needs 3 rows, have %d", len(rows))
		return
	}
	for i, row := range rows {
		if len(row) != 3 {
			err = fmt.Errorf("deformation gradient row %d needs 3 entries, have %d",
				i, len(row))
			return
		}
		for j, val := range row {
			F[i][j] = val
		}
	}
	return
}

func printMat3(name string, A tensor.Mat3) {
	for i := 0; i < 3; i++ {
		if i == 1 {
			fmt.Printf("%-5s = ", name)
		} else {
			fmt.Printf("        ")
		}
		fmt.Printf("%10.6f %10.6f %10.6f\n", A[i][0], A[i][1], A[i][2])
	}
}
