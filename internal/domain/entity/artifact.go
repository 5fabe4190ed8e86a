package entity

import "strings"

const ArtifactKeySeparator = "-"

// ArtifactKey derives the persisted key for an image edited by transform.
func ArtifactKey(transform, imageName string) string {
	return transform + ArtifactKeySeparator + imageName
}

// IsValidArtifactKey reports whether key is a single flat segment.
// Keys produced by ArtifactKey from a short name always are.
func IsValidArtifactKey(key string) bool {
	if key == "" || key == "." || key == ".." {
		return false
	}
	return !strings.ContainsAny(key, `/\`) && !strings.ContainsRune(key, 0)
}

// Artifact describes an edited image written by Upload.
type Artifact struct {
	Key       string
	Transform string
	Location  string
	Size      int64
	Digest    string
}
