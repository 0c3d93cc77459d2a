// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

var (
	figDir  string   // directory to save figures
	xyKeys  []string // extra figures; e.g. "eps:epsp"
	checkD  bool     // check consistent tangent
	height  int      // height of ascii graph
	width   int      // width of ascii graph
	prmList []string // parameters for sensitivity analysis
	asJson  bool     // print report as JSON
	useMpi  bool     // send through MPI
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(1)
		}
	}()

	rootCmd := &cobra.Command{
		Use:   "hardening",
		Short: "uniaxial linear hardening material with DDM sensitivities",
	}

	runCmd := &cobra.Command{
		Use:   "run <matfile> <material> <pathfile>",
		Short: "run material through strain path",
		Args:  cobra.ExactArgs(3),
		RunE:  runCommand,
	}
	runCmd.Flags().StringVar(&figDir, "fig", "", "directory to save figures")
	runCmd.Flags().StringSliceVar(&xyKeys, "xy", nil, "extra figures x:y with keys step, eps, sig, D, epsp, alp")
	runCmd.Flags().BoolVar(&checkD, "checkD", false, "check consistent tangent")
	runCmd.Flags().IntVar(&height, "height", 12, "height of ascii graph")
	runCmd.Flags().IntVar(&width, "width", 70, "width of ascii graph")

	sensCmd := &cobra.Command{
		Use:   "sens <matfile> <material> <pathfile>",
		Short: "compute stress sensitivities along strain path",
		Args:  cobra.ExactArgs(3),
		RunE:  sensCommand,
	}
	sensCmd.Flags().StringSliceVar(&prmList, "prm", []string{"E", "sigmaY"}, "parameters: sigmaY, E, Hkin, Hiso")

	printCmd := &cobra.Command{
		Use:   "print <matfile> <material>",
		Short: "print material report",
		Args:  cobra.ExactArgs(2),
		RunE:  printCommand,
	}
	printCmd.Flags().BoolVar(&asJson, "json", false, "print JSON report")

	sendCmd := &cobra.Command{
		Use:   "send <matfile> <material>",
		Short: "send and receive material state",
		Args:  cobra.ExactArgs(2),
		RunE:  sendCommand,
	}
	sendCmd.Flags().BoolVar(&useMpi, "mpi", false, "send from rank 0 to rank 1 via MPI")

	rootCmd.AddCommand(runCmd, sensCmd, printCmd, sendCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
