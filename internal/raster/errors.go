package raster

import "errors"

var (
	errReleased = errors.New("raster: surface released")
	errNoFrames = errors.New("raster: no frames captured")
)
