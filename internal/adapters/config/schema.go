package config

import (
	"bytes"

	"github.com/zancas/containment/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// ImageFile is the on-disk shape of containment.yaml.
type ImageFile struct {
	// Image is the base image reference used on the FROM line.
	Image string `yaml:"image"`
	// Packager names the OS installer shipped by the image. When omitted it
	// is inferred from the image repository name.
	Packager string `yaml:"packager,omitempty"`
}

// MarshalImage renders img as containment.yaml content.
func MarshalImage(img domain.BaseImage) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(ImageFile{Image: img.Reference, Packager: string(img.Packager)}); err != nil {
		return nil, zerr.Wrap(err, "failed to encode image settings")
	}
	if err := enc.Close(); err != nil {
		return nil, zerr.Wrap(err, "failed to encode image settings")
	}
	return buf.Bytes(), nil
}

// unmarshalImage decodes containment.yaml content. Unknown keys are rejected.
func unmarshalImage(data []byte) (ImageFile, error) {
	var file ImageFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return ImageFile{}, err
	}
	return file, nil
}
