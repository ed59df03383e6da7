// Package imaging provides the image operations the color detector performs on
// captured screenshots.
//
// It covers PNG encoding (with optional scaling) for transport over MCP, an
// in-memory cache of recent screenshots, pixel sampling, and dominant color
// analysis. All operations work with standard Go image.Image types.
//
// # Coordinate System
//
// Coordinates are relative to the captured image, not the screen: (0,0) is the
// top-left pixel of the screenshot, X increases rightward, and Y increases
// downward. For regions, Min is inclusive and Max is exclusive, matching
// image.Rectangle.
//
// # Thread Safety
//
// ScreenshotCache is safe for concurrent use. The remaining functions are
// stateless and never modify the images they are given.
//
// # Color Representation
//
// Colors are reported as colorspace.RGB values together with a lowercase
// "#rrggbb" hex string and, for dominant colors, the nearest CSS color name.
package imaging
