package render

import "errors"

// ErrGpuResourceFailure is returned when device, buffer, texture or
// pipeline creation fails against the GPU backend.
var ErrGpuResourceFailure = errors.New("render: gpu resource allocation failed")

// ErrShaderLoadFailure is returned when the compute shader module fails to
// load or compile.
var ErrShaderLoadFailure = errors.New("render: failed to load compute shader")
