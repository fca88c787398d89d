package fonts

import (
	"testing"

	"golang.org/x/image/font"
)

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatal(err)
	}
	for _, name := range []FontName{Regular, Small, Title} {
		face := name.Get()
		if w := font.MeasureString(face, "RYU"); w <= 0 {
			t.Errorf("%s: width of RYU = %v", name, w)
		}
	}
	if font.MeasureString(Small.Get(), "KEN") >= font.MeasureString(Title.Get(), "KEN") {
		t.Error("small font is not smaller than the title font")
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont("bad", []byte("not a font")); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	FontName("missing").Get()
}
