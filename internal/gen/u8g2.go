package gen

import (
	"fmt"
	"strings"
)

func writeU8G2Preamble(b *strings.Builder, width, height int) {
	b.WriteString("#include <Arduino.h>\n")
	b.WriteString("#include <U8g2lib.h>\n")
	b.WriteString("#include <Wire.h>\n\n")
	fmt.Fprintf(b, "#define SCREEN_WIDTH %d\n", width)
	fmt.Fprintf(b, "#define SCREEN_HEIGHT %d\n\n", height)
	b.WriteString("U8G2_SSD1306_128X64_NONAME_F_HW_I2C u8g2(U8G2_R0, /* reset=*/ U8X8_PIN_NONE);\n\n")
}

func writeU8G2Body(b *strings.Builder, delay int) {
	writeLoopDefines(b, delay)
	b.WriteString(`void setup() {
  u8g2.begin();
}

void loop() {
  for (uint16_t i = 0; i < FRAME_COUNT; i++) {
    unsigned long start = millis();
    u8g2.clearBuffer();
    u8g2.drawXBMP(0, 0, SCREEN_WIDTH, SCREEN_HEIGHT, frames[i]);
    u8g2.sendBuffer();
    while (millis() - start < FRAME_DELAY) {
    }
  }
}
`)
}
