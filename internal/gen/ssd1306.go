package gen

import (
	"fmt"
	"strings"
)

func writeSSD1306Preamble(b *strings.Builder, width, height int) {
	b.WriteString("#include <SPI.h>\n")
	b.WriteString("#include <Wire.h>\n")
	b.WriteString("#include <Adafruit_GFX.h>\n")
	b.WriteString("#include <Adafruit_SSD1306.h>\n\n")
	fmt.Fprintf(b, "#define SCREEN_WIDTH %d\n", width)
	fmt.Fprintf(b, "#define SCREEN_HEIGHT %d\n", height)
	b.WriteString("#define OLED_RESET -1\n")
	b.WriteString("#define SCREEN_ADDRESS 0x3C\n\n")
	b.WriteString("Adafruit_SSD1306 display(SCREEN_WIDTH, SCREEN_HEIGHT, &Wire, OLED_RESET);\n\n")
}

func writeSSD1306Body(b *strings.Builder, delay int) {
	writeLoopDefines(b, delay)
	b.WriteString(`void setup() {
  if (!display.begin(SSD1306_SWITCHCAPVCC, SCREEN_ADDRESS)) {
    for (;;) {
      // init failed, halt
    }
  }
  display.clearDisplay();
  display.display();
}

void loop() {
  for (uint16_t i = 0; i < FRAME_COUNT; i++) {
    unsigned long start = millis();
    display.clearDisplay();
    display.drawXBitmap(0, 0, frames[i], SCREEN_WIDTH, SCREEN_HEIGHT, SSD1306_WHITE);
    display.display();
    while (millis() - start < FRAME_DELAY) {
    }
  }
}
`)
}
