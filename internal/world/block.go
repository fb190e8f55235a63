package world

import "cardboard/internal/geom"

// Block is the lattice position of a unit cube centered on it.
type Block = geom.Point3
