package utils

import "strings"

func ContainsString(targetString string, sliceOfStrings []string) bool {
	for i := range sliceOfStrings {
		if sliceOfStrings[i] == targetString {
			return true
		}
	}
	return false
}

// IndexOfString returns the position of targetString in sliceOfStrings, or -1 if it is not present.
// The comparison ignores surrounding spaces
func IndexOfString(targetString string, sliceOfStrings []string) int {
	for i := range sliceOfStrings {
		if strings.TrimSpace(sliceOfStrings[i]) == targetString {
			return i
		}
	}
	return -1
}
