package dcc

// ImageKind distinguishes the two DOS executable shapes the decoder's
// segment-resolution rules care about: a .COM image (single 64K segment,
// no relocation table) and an .EXE image (MZ header, relocation table,
// separate initial segment registers).
type ImageKind int

const (
	KindCOM ImageKind = iota
	KindEXE
)

// Image is the byte-addressable program image the decoder reads from and
// the CFG/argument-recovery passes reference by absolute offset. It is
// supplied fully formed by the host; this module never parses an MZ/COM
// container itself — loading is the front end's concern.
type Image struct {
	Bytes []byte
	Kind  ImageKind

	// Reloc holds the absolute byte offsets of every EXE relocation
	// entry, consulted by the decoder's immediate-word fetch to flag
	// FlagSegImmed. Always empty for a COM image.
	Reloc map[uint32]struct{}

	// InitES, InitCS, InitSS, InitDS are the image's initial segment
	// register values as supplied by the loader (from the MZ header for
	// an EXE, or the PSP segment for a COM file).
	InitES, InitCS, InitSS, InitDS uint16
}

// Len returns the number of bytes in the image.
func (img *Image) Len() int { return len(img.Bytes) }

// IsReloc reports whether off is the start of a relocated word.
func (img *Image) IsReloc(off uint32) bool {
	if img.Reloc == nil {
		return false
	}
	_, ok := img.Reloc[off]
	return ok
}
