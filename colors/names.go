package colors

// namedColors is the closed lookup table of CSS color names the pipeline
// understands. CorelDRAW exports through LibreOffice only ever emit hex and
// rgb() tokens, but hand-edited SVGs use names often enough to matter.
var namedColors = map[string]RGB{
	"red":     {255, 0, 0},
	"green":   {0, 128, 0},
	"blue":    {0, 0, 255},
	"yellow":  {255, 255, 0},
	"cyan":    {0, 255, 255},
	"magenta": {255, 0, 255},
	"orange":  {255, 165, 0},
	"purple":  {128, 0, 128},
	"pink":    {255, 192, 203},
	"brown":   {165, 42, 42},
	"black":   {0, 0, 0},
	"white":   {255, 255, 255},
	"gray":    {128, 128, 128},
	"grey":    {128, 128, 128},
	"lime":    {0, 255, 0},
	"navy":    {0, 0, 128},
	"olive":   {128, 128, 0},
	"maroon":  {128, 0, 0},
	"teal":    {0, 128, 128},
	"silver":  {192, 192, 192},
	"gold":    {255, 215, 0},
	"violet":  {238, 130, 238},
	"indigo":  {75, 0, 130},
	"tan":     {210, 180, 140},
	"coral":   {255, 127, 80},
}

// complementNames maps a named color to its inverted counterpart. Grey maps
// to itself: 128 inverts to 127, which rounds back to the same name.
var complementNames = map[string]string{
	"black":   "white",
	"white":   "black",
	"red":     "cyan",
	"green":   "magenta",
	"blue":    "yellow",
	"cyan":    "red",
	"magenta": "green",
	"yellow":  "blue",
	"gray":    "gray",
	"grey":    "grey",
}
