package models

import "regexp"

var assetNamePattern = regexp.MustCompile(`^[a-z0-9-]+\.ao$`)

// ValidAssetName reports whether name is a well-formed .ao domain name
func ValidAssetName(name string) bool {
	return assetNamePattern.MatchString(name)
}
