// Package render holds output helpers shared by the dashlayout renderers.
//
// [ToPDF] and [ToPNG] convert SVG produced by a renderer, such as the
// occlusion graph, using the external rsvg-convert tool
// from librsvg:
//
//	svg, err := occlusion.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)
package render
