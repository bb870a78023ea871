package domain

import "time"

// BuildRecord describes the last successful image build of a project.
type BuildRecord struct {
	Tag         string    `json:"tag,omitzero"`
	Fingerprint string    `json:"fingerprint,omitzero"`
	BuiltAt     time.Time `json:"built_at,omitzero"`
}
