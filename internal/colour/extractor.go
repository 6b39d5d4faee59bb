package colour

// ExtractPalette runs the full pipeline over an interleaved R,G,B,A pixel
// buffer: quantise into ranked clusters, then classify them into semantic
// roles. It returns ErrEmptyPalette when the buffer holds no opaque pixels.
func ExtractPalette(buf []byte, cfg QuantizerConfig) (*Palette, error) {
	colors, err := NewQuantizer(cfg).Quantize(buf)
	if err != nil {
		return nil, err
	}
	return Classify(colors)
}
