package domain

import "time"

// ArtifactRecord describes a compiled build artifact for a resolved source file.
type ArtifactRecord struct {
	SourcePath   string    `json:"source_path,omitzero"`
	SourceDigest string    `json:"source_digest,omitzero"`
	BuildPath    string    `json:"build_path,omitzero"`
	BuiltAt      time.Time `json:"built_at,omitzero"`
}
