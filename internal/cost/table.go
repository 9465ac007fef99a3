// Package cost resolves test identifiers to averaged historical execution
// costs read from the externally maintained history files.
package cost

import "math"

// DefaultCost is assumed for tests that have no recorded history.
const DefaultCost = 1

// Table maps unit-test identifiers to their recent cost samples.
type Table struct {
	samples map[string][]float64
}

// RegressTable maps regress type and name to recent cost samples.
type RegressTable struct {
	samples map[string]map[string][]float64
}

// Average is the arithmetic mean of samples rounded to one decimal place,
// or DefaultCost when there are no samples.
func Average(samples []float64) float64 {
	if len(samples) == 0 {
		return DefaultCost
	}
	total := 0.0
	for _, s := range samples {
		total += s
	}
	return math.Round(total/float64(len(samples))*10) / 10
}

// Lookup returns the averaged cost for a unit-test identifier.
func (t *Table) Lookup(name string) float64 {
	return Average(t.samples[name])
}

// Lookup returns the averaged cost for a (type, name) regress key.
func (t *RegressTable) Lookup(regressType, name string) float64 {
	return Average(t.samples[regressType][name])
}

// bareNameTypes name their regress runs by bare number instead of "regressN".
var bareNameTypes = map[string]bool{
	"gap": true,
	"gst": true,
	"gus": true,
}

// RegressName returns the history key for regress number num of the given type.
func RegressName(regressType, num string) string {
	if bareNameTypes[regressType] {
		return num
	}
	return "regress" + num
}
