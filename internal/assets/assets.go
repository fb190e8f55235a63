// Package assets embeds the texture atlas and shader sources.
package assets

import _ "embed"

//go:generate go run ../../cmd/atlasgen -o atlas.png

// Atlas is a 2x2 tile PNG: block bottom top-left, block top bottom-left,
// block sides bottom-right.
//
//go:embed atlas.png
var Atlas []byte

//go:embed shaders/main.vert
var VertexShader string

//go:embed shaders/main.frag
var FragmentShader string
