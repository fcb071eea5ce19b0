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

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/gofea/hyperelastic"
	"github.com/notargets/gofea/tensor"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check tangent blocks against finite differences of the residual",
	Long: `
Runs the built-in deformation states (identity, uniaxial stretch, simple
shear) through both reference materials and compares every tangent block
against a central finite difference of the corresponding residual
component, reporting the worst relative error per block.`,
	Run: func(cmd *cobra.Command, args []string) {
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		runVerify()
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().Bool("profile", false, "write a CPU profile to the working directory")
}

type verifyState struct {
	name    string
	F       tensor.Mat3
	p, Jbar float64
}

func verifyStates() []verifyState {
	shear := tensor.Identity()
	shear[0][1] = 0.3
	return []verifyState{
		{"identity", tensor.Identity(), 0.05, 1.0},
		{"uniaxial stretch", tensor.Diag(1.3, 0.9, 0.9), -0.2, 1.04},
		{"simple shear", shear, 0.1, 0.98},
	}
}

func verifyMaterials() []hyperelastic.Material {
	return []hyperelastic.Material{
		hyperelastic.NeoHooke{Mu: 1, Lambda: 10},
		hyperelastic.StVenantKirchhoff{Mu: 1, Lambda: 10},
	}
}

func runVerify() {
	const h = 1.e-6
	for _, m := range verifyMaterials() {
		for _, st := range verifyStates() {
			_, tg, err := hyperelastic.Evaluate(m, st.F, st.p, st.Jbar)
			if err != nil {
				fmt.Printf("%s / %s: %s\n", m.Name(), st.name, err.Error())
				continue
			}
			var worstUU, worstUp, worstUJ, worstJJ float64
			// A_uu and A_pu blocks: perturb F component-wise
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					Fp, Fm := st.F, st.F
					Fp[k][l] += h
					Fm[k][l] -= h
					rp, _, errP := hyperelastic.Evaluate(m, Fp, st.p, st.Jbar)
					rm, _, errM := hyperelastic.Evaluate(m, Fm, st.p, st.Jbar)
					if errP != nil || errM != nil {
						continue
					}
					for i := 0; i < 3; i++ {
						for j := 0; j < 3; j++ {
							fd := (rp.Fu[i][j] - rm.Fu[i][j]) / (2 * h)
							if d := math.Abs(fd - tg.Auu[i][j][k][l]); d > worstUU {
								worstUU = d
							}
						}
					}
					// A_pu = d f_p / dF must equal A_up
					fd := (rp.Fp - rm.Fp) / (2 * h)
					if d := math.Abs(fd - tg.Aup[k][l]); d > worstUp {
						worstUp = d
					}
					// A_Ju = d f_J / dF must equal A_uJ
					fd = (rp.FJ - rm.FJ) / (2 * h)
					if d := math.Abs(fd - tg.AuJ[k][l]); d > worstUJ {
						worstUJ = d
					}
				}
			}
			// A_JJ: perturb Jbar
			rp, _, _ := hyperelastic.Evaluate(m, st.F, st.p, st.Jbar+h)
			rm, _, _ := hyperelastic.Evaluate(m, st.F, st.p, st.Jbar-h)
			if d := math.Abs((rp.FJ-rm.FJ)/(2*h) - tg.AJJ); d > worstJJ {
				worstJJ = d
			}
			fmt.Printf("%-10s %-18s A_uu %8.2e  A_up %8.2e  A_uJ %8.2e  A_JJ %8.2e\n",
				m.Name(), st.name, worstUU, worstUp, worstUJ, worstJJ)
		}
	}
}
