package cli

import (
	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/mazetower/pkg/errors"
	"github.com/matzehuels/mazetower/pkg/render"
)

// styleFile is the TOML shape of a style configuration file. All fields
// are optional; absent ones keep their defaults.
//
//	cell_size = 24
//	wall_thickness = 4
//	background = "#fdf6e3"
//	wall = "#073642"
//	solution = "#dc322f"
type styleFile struct {
	CellSize      int    `toml:"cell_size"`
	WallThickness int    `toml:"wall_thickness"`
	Background    string `toml:"background"`
	Wall          string `toml:"wall"`
	Solution      string `toml:"solution"`
}

// loadStyle reads a TOML style file and applies it on top of the default
// style. Color values use hex notation ("#rrggbb").
func loadStyle(path string) (render.Style, error) {
	var f styleFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return render.Style{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "load style file %s", path)
	}
	return applyStyleFile(f)
}

func applyStyleFile(f styleFile) (render.Style, error) {
	style := render.DefaultStyle()

	if f.CellSize != 0 {
		style.CellSize = f.CellSize
	}
	if f.WallThickness != 0 {
		style.WallThickness = f.WallThickness
	}

	var err error
	if style.Background, err = overrideColor(style.Background, f.Background); err != nil {
		return render.Style{}, err
	}
	if style.Wall, err = overrideColor(style.Wall, f.Wall); err != nil {
		return render.Style{}, err
	}
	if style.Solution, err = overrideColor(style.Solution, f.Solution); err != nil {
		return render.Style{}, err
	}
	return style, nil
}

func overrideColor(current colorful.Color, hex string) (colorful.Color, error) {
	if hex == "" {
		return current, nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "invalid color %q", hex)
	}
	return c, nil
}
