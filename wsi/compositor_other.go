//go:build !darwin

package wsi

// DefaultCompositor returns nil; only macOS presents through a compositor
// layer.
func DefaultCompositor() Compositor {
	return nil
}
