package gen

import (
	"fmt"
	"strings"
)

// The SSD1331 is a color display driven over SPI, so the constructor takes
// pin numbers instead of an implicit I2C address. Content stays 1-bit: the
// same packed frames are blitted in white on black.
func writeSSD1331Preamble(b *strings.Builder, width, height int) {
	b.WriteString("#include <SPI.h>\n")
	b.WriteString("#include <Adafruit_GFX.h>\n")
	b.WriteString("#include <Adafruit_SSD1331.h>\n\n")
	fmt.Fprintf(b, "#define SCREEN_WIDTH %d\n", width)
	fmt.Fprintf(b, "#define SCREEN_HEIGHT %d\n\n", height)
	b.WriteString("// SPI wiring, adjust to your board\n")
	b.WriteString("#define CS_PIN 10\n")
	b.WriteString("#define DC_PIN 8\n")
	b.WriteString("#define RST_PIN 9\n\n")
	b.WriteString("#define COLOR_BLACK 0x0000\n")
	b.WriteString("#define COLOR_WHITE 0xFFFF\n\n")
	b.WriteString("Adafruit_SSD1331 display = Adafruit_SSD1331(&SPI, CS_PIN, DC_PIN, RST_PIN);\n\n")
}

func writeSSD1331Body(b *strings.Builder, delay int) {
	writeLoopDefines(b, delay)
	b.WriteString(`void setup() {
  display.begin();
  display.fillScreen(COLOR_BLACK);
}

void loop() {
  for (uint16_t i = 0; i < FRAME_COUNT; i++) {
    unsigned long start = millis();
    display.fillScreen(COLOR_BLACK);
    display.drawXBitmap(0, 0, frames[i], SCREEN_WIDTH, SCREEN_HEIGHT, COLOR_WHITE);
    while (millis() - start < FRAME_DELAY) {
    }
  }
}
`)
}
