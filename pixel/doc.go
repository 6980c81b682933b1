// Package pixel implements the RGB565 color format used by the supported TFT
// controllers, compatible with Go's native [color.Color] interface.
package pixel
