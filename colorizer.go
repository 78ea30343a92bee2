package jsonflat

// A Colorizer holds the terminal escape codes used to color paths and
// values.  A nil *Colorizer prints without colors.
type Colorizer struct {
	PathColorCode   []byte
	ValueColorCodes [5][]byte // indexed by ValueKind
	ResetCode       []byte
}

func (c *Colorizer) ValueColorCode(kind ValueKind) []byte {
	return c.ValueColorCodes[kind]
}

func (c *Colorizer) printPath(p *LinePrinter, path string) {
	if c != nil {
		p.printBytes(c.PathColorCode)
	}
	p.printString(path)
	if c != nil {
		p.printBytes(c.ResetCode)
	}
}

func (c *Colorizer) printValue(p *LinePrinter, value []byte, kind ValueKind) {
	if c != nil {
		p.printBytes(c.ValueColorCode(kind))
	}
	p.printBytes(value)
	if c != nil {
		p.printBytes(c.ResetCode)
	}
}
