// Package pkg provides the libraries behind keygrid, a tool that renders
// keyboard layout diagrams from CSV files of key labels.
//
// # Data Flow
//
//	layout.csv
//	    ↓
//	[io] ImportCSV            → grid.Grid
//	    ↓
//	[shape] Parse (optional)  → shape.Spec
//	    ↓
//	[layout] Partition        → []layout.Block
//	    ↓
//	[render] RenderGrid / RenderBlocks → image.Image
//	    ↓
//	[io] ExportImage          → layout.png
//
// [pipeline] runs these stages in order; the CLI is a thin wrapper around it.
//
// # Quick Start
//
//	g, err := io.ImportCSV("layout.csv")
//	if err != nil {
//	    return err
//	}
//	spec, err := shape.Parse("5x3+5x3")
//	if err != nil {
//	    return err
//	}
//	blocks := layout.Partition(g, spec)
//	img := render.RenderBlocks(render.DefaultConfig(), blocks, fonts.Default())
//	return io.ExportImage(img, "layout.png")
//
// # Supporting Packages
//
//   - [errors]: error codes shared by every package
//   - [config]: TOML overrides for the layout constants
//   - [fonts]: preferred font lookup with bitmap fallback
//   - [observability]: pipeline hooks
//   - [buildinfo]: version information
//
// [io]: https://pkg.go.dev/github.com/matzehuels/keygrid/pkg/io
// [shape]: https://pkg.go.dev/github.com/matzehuels/keygrid/pkg/shape
// [layout]: https://pkg.go.dev/github.com/matzehuels/keygrid/pkg/layout
// [render]: https://pkg.go.dev/github.com/matzehuels/keygrid/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/keygrid/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/keygrid/pkg/errors
// [config]: https://pkg.go.dev/github.com/matzehuels/keygrid/pkg/config
// [fonts]: https://pkg.go.dev/github.com/matzehuels/keygrid/pkg/fonts
// [observability]: https://pkg.go.dev/github.com/matzehuels/keygrid/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/keygrid/pkg/buildinfo
package pkg
