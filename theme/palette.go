package theme

import "image/color"

// ParticlePalette colors the particle field. Line alpha is computed per
// connection, only the RGB of Line is used.
type ParticlePalette struct {
	Dot  color.NRGBA
	Line color.NRGBA
}

// BlobPalette lists the colors a blob may pick at construction
type BlobPalette struct {
	Colors []color.NRGBA
}

// MeshPalette colors the flowing mesh lines
type MeshPalette struct {
	Stroke color.NRGBA
}

// Particles returns the particle palette for the theme (teal accent)
func (t Theme) Particles() ParticlePalette {
	if t == Light {
		return ParticlePalette{
			Dot:  color.NRGBA{R: 13, G: 148, B: 136, A: 128},
			Line: color.NRGBA{R: 13, G: 148, B: 136, A: 255},
		}
	}
	return ParticlePalette{
		Dot:  color.NRGBA{R: 45, G: 212, B: 191, A: 128},
		Line: color.NRGBA{R: 45, G: 212, B: 191, A: 255},
	}
}

// Blobs returns the low alpha blob palette for the theme
func (t Theme) Blobs() BlobPalette {
	if t == Light {
		// alpha 0.02
		return BlobPalette{Colors: []color.NRGBA{
			{R: 6, G: 66, B: 217, A: 5},
			{R: 60, G: 108, B: 251, A: 5},
			{R: 170, G: 208, B: 254, A: 5},
		}}
	}
	// alpha 0.03
	return BlobPalette{Colors: []color.NRGBA{
		{R: 6, G: 90, B: 217, A: 8},
		{R: 60, G: 136, B: 251, A: 8},
		{R: 9, G: 77, B: 180, A: 8},
	}}
}

// Mesh returns the mesh line palette for the theme
func (t Theme) Mesh() MeshPalette {
	if t == Light {
		// gray-600 at 0.03
		return MeshPalette{Stroke: color.NRGBA{R: 75, G: 85, B: 99, A: 8}}
	}
	// gray-700 at 0.05
	return MeshPalette{Stroke: color.NRGBA{R: 55, G: 65, B: 81, A: 13}}
}
