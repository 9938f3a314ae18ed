package render

import _ "embed"

//go:embed shaders/lambert.vert
var lambertVertexSource string

//go:embed shaders/lambert.frag
var lambertFragmentSource string
