package modecounter

import (
	"cmp"
	"slices"
)

// ModeCounter struct that counts how many times each value of a column appears
// + Name: name of the column to collect data. Once set, it cannot change
// + Counter: amount of appearances of each value
// + Total: amount of values counted
type ModeCounter[K cmp.Ordered] struct {
	Name    string    `json:"name"`
	Counter map[K]int `json:"counter"`
	Total   int       `json:"total"`
}

// ValueCount a value and the amount of times it appears
type ValueCount[K cmp.Ordered] struct {
	Value K   `json:"value"`
	Count int `json:"count"`
}

func NewModeCounter[K cmp.Ordered](name string) *ModeCounter[K] {
	return &ModeCounter[K]{
		Name:    name,
		Counter: make(map[K]int),
	}
}

func (mc *ModeCounter[K]) UpdateCounter(value K) {
	mc.Counter[value] += 1
	mc.Total += 1
}

func (mc *ModeCounter[K]) IsEmpty() bool {
	return mc.Total == 0
}

// GetModes returns every value tied for the highest count, in ascending order.
// If nothing was counted the result is nil
func (mc *ModeCounter[K]) GetModes() []K {
	maxCounter := 0
	var modes []K
	for value, counter := range mc.Counter {
		if counter > maxCounter {
			maxCounter = counter
			modes = []K{value}
			continue
		}
		if counter == maxCounter {
			modes = append(modes, value)
		}
	}
	slices.Sort(modes)
	return modes
}

// GetValueCounts returns every value with its count, ordered by count descending.
// Values with the same count are ordered ascending
func (mc *ModeCounter[K]) GetValueCounts() []ValueCount[K] {
	valueCounts := make([]ValueCount[K], 0, len(mc.Counter))
	for value, counter := range mc.Counter {
		valueCounts = append(valueCounts, ValueCount[K]{Value: value, Count: counter})
	}

	slices.SortFunc(valueCounts, func(a, b ValueCount[K]) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return valueCounts
}

// GetMin returns the smallest value counted. The second return value is false if nothing was counted
func (mc *ModeCounter[K]) GetMin() (K, bool) {
	var minValue K
	found := false
	for value := range mc.Counter {
		if !found || value < minValue {
			minValue = value
			found = true
		}
	}
	return minValue, found
}

// GetMax returns the greatest value counted. The second return value is false if nothing was counted
func (mc *ModeCounter[K]) GetMax() (K, bool) {
	var maxValue K
	found := false
	for value := range mc.Counter {
		if !found || value > maxValue {
			maxValue = value
			found = true
		}
	}
	return maxValue, found
}
