// Package raster implements the CPU triangle rasterization pipeline:
// pixel grids (Image, RenderTarget, DepthBuffer, Texture), the
// viewport transform, homogeneous-clip-space clipping, winding-based
// culling, depth testing, and the Pipeline draw command that drives a
// shader.Program over indexed vertex data.
//
// The pipeline is single-threaded and processes one triangle fully —
// vertex shading, clipping, rasterization, fragment shading — before
// starting the next. There is no tiled binning, no multisampling, and
// no blending: a fragment that passes its depth test overwrites the
// render target pixel outright.
package raster
