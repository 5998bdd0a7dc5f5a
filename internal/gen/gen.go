package gen

import (
	"fmt"
	"math"
	"strings"
)

// Library selects which display API the generated sketch targets. The three
// variants are fixed external conventions: the includes, the display object
// constructor and the blit call differ per library and must stay that way.
type Library int

const (
	SSD1306 Library = iota // Adafruit GFX + SSD1306, I2C monochrome OLED
	SSD1331                // Adafruit GFX + SSD1331, SPI color OLED, 1-bit content
	U8G2                   // u8g2 page-buffered monochrome abstraction
)

// ParseLibrary maps a config value to a Library. Unknown values fall back
// to the SSD1306 backend.
func ParseLibrary(s string) Library {
	switch s {
	case "adafruit_gfx_ssd1331":
		return SSD1331
	case "u8g2":
		return U8G2
	default:
		return SSD1306
	}
}

func (l Library) String() string {
	switch l {
	case SSD1331:
		return "adafruit_gfx_ssd1331"
	case U8G2:
		return "u8g2"
	default:
		return "adafruit_gfx_ssd1306"
	}
}

// Libraries lists the recognized library values.
func Libraries() []string {
	return []string{SSD1306.String(), SSD1331.String(), U8G2.String()}
}

// Generate renders packed frames plus the backend template into a complete
// Arduino sketch. Stateless: the output is a pure function of the inputs.
// The sketch is emitted as text only, no syntax validation is done here.
func Generate(frames [][]byte, width, height int, fps float64, lib Library) (string, error) {
	if len(frames) == 0 {
		return "", fmt.Errorf("no frames to generate")
	}
	for i, f := range frames {
		if len(f) == 0 {
			return "", fmt.Errorf("frame %d is empty", i)
		}
	}
	if fps <= 0 {
		return "", fmt.Errorf("fps must be positive, got %v", fps)
	}
	delay := frameDelay(fps)

	var b strings.Builder
	writeHeader(&b, width, height, len(frames), fps, lib)
	switch lib {
	case SSD1331:
		writeSSD1331Preamble(&b, width, height)
	case U8G2:
		writeU8G2Preamble(&b, width, height)
	default:
		writeSSD1306Preamble(&b, width, height)
	}
	writeFrameArrays(&b, frames)
	switch lib {
	case SSD1331:
		writeSSD1331Body(&b, delay)
	case U8G2:
		writeU8G2Body(&b, delay)
	default:
		writeSSD1306Body(&b, delay)
	}
	return b.String(), nil
}

// frameDelay is the per-frame hold time in milliseconds, never below 1.
func frameDelay(fps float64) int {
	d := int(math.Round(1000 / fps))
	if d < 1 {
		d = 1
	}
	return d
}

func writeHeader(b *strings.Builder, width, height, frames int, fps float64, lib Library) {
	b.WriteString("// Generated by oledreel\n")
	fmt.Fprintf(b, "// Display: %dx%d, library: %s\n", width, height, lib)
	fmt.Fprintf(b, "// Frames: %d at %.2f fps\n\n", frames, fps)
}

// writeFrameArrays renders one PROGMEM array per frame plus the pointer
// index array. This part is shared by all backends and is byte-identical
// across them for the same frames.
func writeFrameArrays(b *strings.Builder, frames [][]byte) {
	for i, f := range frames {
		fmt.Fprintf(b, "const uint8_t frame_%d[%d] PROGMEM = {\n", i, len(f))
		for j, v := range f {
			if j%16 == 0 {
				b.WriteString("  ")
			}
			fmt.Fprintf(b, "0x%02X", v)
			if j != len(f)-1 {
				b.WriteString(",")
			}
			if j%16 == 15 || j == len(f)-1 {
				b.WriteString("\n")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("};\n\n")
	}

	b.WriteString("const uint8_t* const frames[] PROGMEM = {\n")
	for i := range frames {
		fmt.Fprintf(b, "  frame_%d", i)
		if i != len(frames)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("};\n\n")
}

// writeLoopDefines emits the frame count and delay shared by all backends.
// The count derives from the emitted array so it cannot drift from it.
func writeLoopDefines(b *strings.Builder, delay int) {
	b.WriteString("#define FRAME_COUNT (sizeof(frames) / sizeof(frames[0]))\n")
	fmt.Fprintf(b, "#define FRAME_DELAY %d\n\n", delay)
}
