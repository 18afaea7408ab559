package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/Priyanka-idk/SPICE-Simulator-EE2703/pkg/analysis"
	"github.com/Priyanka-idk/SPICE-Simulator-EE2703/pkg/circuit"
	"github.com/Priyanka-idk/SPICE-Simulator-EE2703/pkg/netlist"
	"github.com/Priyanka-idk/SPICE-Simulator-EE2703/pkg/util"
)

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func main() {
	showResistorCurrents := flag.Bool("r", false, "also print resistor currents from Ohm's law")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal("usage: spice [-r] <netlist file>")
	}

	content, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("%v: %v", analysis.ErrFileAccess, err)
	}

	data, err := netlist.Parse(string(content))
	if err != nil {
		log.Fatalf("Error parsing netlist: %v", err)
	}

	ckt := circuit.New(flag.Arg(0))
	defer ckt.Destroy()
	if err := ckt.Setup(data); err != nil {
		log.Fatalf("Error building circuit: %v", err)
	}

	op := analysis.NewOP()
	if err := op.Setup(ckt); err != nil {
		log.Fatalf("Error setting up analysis: %v", err)
	}
	if err := op.Execute(); err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	voltages := op.Voltages()
	currents := op.Currents()

	fmt.Println("\nNode Voltages:")
	for _, name := range sortedKeys(voltages) {
		fmt.Printf("V(%s) = %s\n", name, util.FormatValueFactor(voltages[name], "V"))
	}

	fmt.Println("\nBranch Currents:")
	for _, name := range sortedKeys(currents) {
		fmt.Printf("I(%s) = %s\n", name, util.FormatValueFactor(currents[name], "A"))
	}

	if *showResistorCurrents {
		resistorCurrents := op.ResistorCurrents()
		fmt.Println("\nResistor Currents:")
		for _, name := range sortedKeys(resistorCurrents) {
			fmt.Printf("I(%s) = %s\n", name, util.FormatValueFactor(resistorCurrents[name], "A"))
		}
	}
}
