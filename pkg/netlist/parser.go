package netlist

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed covers every structural problem in a circuit file:
// missing block markers, unknown element prefixes, duplicate names,
// missing fields, unusable values. Raise sites wrap it with a message
// naming the actual cause.
var ErrMalformed = errors.New("malformed circuit file")

const (
	circuitMarker = ".circuit"
	endMarker     = ".end"

	// GroundName is the reserved ground node, always index 0.
	GroundName = "GND"

	groundAlias = "0" // conventional SPICE spelling, resolves to ground
)

// Element is one parsed circuit element. N1 and N2 are resolved node
// indices. Value keeps the raw token; numeric conversion happens at
// circuit assembly, where the element kind decides the error message.
type Element struct {
	Name  string
	N1    int
	N2    int
	Value string
}

type NetlistData struct {
	Resistors      []Element
	VoltageSources []Element
	CurrentSources []Element
	Nodes          map[string]int // node name -> index, GroundName at 0
	NumNodes       int            // ground included
}

// mapNode resolves a node name to its index, assigning the next free
// index on first appearance. The counter is threaded through the
// caller explicitly, so index assignment has no hidden state.
func mapNode(name string, nodes map[string]int, counter int) (int, int) {
	if name == groundAlias {
		return 0, counter
	}
	if idx, ok := nodes[name]; ok {
		return idx, counter
	}
	nodes[name] = counter
	return counter, counter + 1
}

// Parse reads a netlist and returns the element lists and node map.
// Only the first .circuit block is considered; everything outside it
// is ignored. Element kind comes from the first character of the
// name: R, V or I, case-insensitively.
func Parse(input string) (*NetlistData, error) {
	if err := checkMarkers(input); err != nil {
		return nil, err
	}

	data := &NetlistData{Nodes: map[string]int{GroundName: 0}}
	counter := 1

	resistorNames := make(map[string]bool)
	voltageNames := make(map[string]bool)
	currentNames := make(map[string]bool)

	inBlock := false
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == circuitMarker {
			inBlock = true
			continue
		}
		if line == endMarker {
			if inBlock {
				break
			}
			continue
		}
		if !inBlock {
			continue
		}

		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}

		elem := Element{Name: words[0]}

		switch strings.ToUpper(words[0][:1]) {
		case "R":
			if resistorNames[elem.Name] {
				return nil, fmt.Errorf("%w: duplicate resistor name %s", ErrMalformed, elem.Name)
			}
			resistorNames[elem.Name] = true
			if len(words) < 4 {
				return nil, fmt.Errorf("%w: insufficient data to access resistor value", ErrMalformed)
			}
			elem.N1, counter = mapNode(words[1], data.Nodes, counter)
			elem.N2, counter = mapNode(words[2], data.Nodes, counter)
			elem.Value = words[3]
			data.Resistors = append(data.Resistors, elem)

		case "V":
			if voltageNames[elem.Name] {
				return nil, fmt.Errorf("%w: duplicate voltage source name %s", ErrMalformed, elem.Name)
			}
			voltageNames[elem.Name] = true
			if len(words) < 5 {
				return nil, fmt.Errorf("%w: insufficient data to access voltage source value", ErrMalformed)
			}
			elem.N1, counter = mapNode(words[1], data.Nodes, counter)
			elem.N2, counter = mapNode(words[2], data.Nodes, counter)
			// words[3] is the source type slot (e.g. dc), reserved.
			elem.Value = words[4]
			data.VoltageSources = append(data.VoltageSources, elem)

		case "I":
			if currentNames[elem.Name] {
				return nil, fmt.Errorf("%w: duplicate current source name %s", ErrMalformed, elem.Name)
			}
			currentNames[elem.Name] = true
			if len(words) < 5 {
				return nil, fmt.Errorf("%w: insufficient data to access current source value", ErrMalformed)
			}
			elem.N1, counter = mapNode(words[1], data.Nodes, counter)
			elem.N2, counter = mapNode(words[2], data.Nodes, counter)
			elem.Value = words[4]
			data.CurrentSources = append(data.CurrentSources, elem)

		default:
			return nil, fmt.Errorf("%w: only V, I, R elements are permitted", ErrMalformed)
		}
	}

	data.NumNodes = counter
	return data, nil
}

// checkMarkers verifies that .circuit and .end each appear somewhere
// in the input. Only presence is checked here; the block scan in
// Parse decides what actually gets read.
func checkMarkers(input string) error {
	hasCircuit, hasEnd := false, false

	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		switch strings.TrimSpace(scanner.Text()) {
		case circuitMarker:
			hasCircuit = true
		case endMarker:
			hasEnd = true
		}
	}

	if !hasCircuit {
		return fmt.Errorf("%w: missing %s marker", ErrMalformed, circuitMarker)
	}
	if !hasEnd {
		return fmt.Errorf("%w: missing %s marker", ErrMalformed, endMarker)
	}
	return nil
}
