package domain

// DefaultBaseImage is the pinned image written into a freshly paved community scope.
const DefaultBaseImage = "ubuntu@sha256:c8c275751219dadad8fa56b3ac41ca6cb22219ff117ca98fe82b42f24e1ba64e"

// BaseImage is the community base image together with the OS packager it ships.
type BaseImage struct {
	// Reference is the image reference used on the FROM line.
	Reference string
	// Packager installs OS packages on this image.
	Packager Packager
}

// DefaultImage returns the base image used when paving a community scope.
func DefaultImage() BaseImage {
	return BaseImage{
		Reference: DefaultBaseImage,
		Packager:  PackagerUbuntu,
	}
}
