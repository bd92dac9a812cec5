package main

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fogleman/gg"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOutput(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestIntegration_DefaultDocument(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.png")
	out, err := execute(t, "-d", "-o", output, "--dump")
	if err != nil {
		t.Fatalf("webling failed: %v\n%s", err, out)
	}
	for _, want := range []string{"3\nwebling\n", "#document", "div [block bg=#00ff00", "rect #0000ff (0,250) 100x100", "Rendered default document"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got\n%s", want, out)
		}
	}
	img, err := gg.LoadPNG(output)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 600 || b.Dy() != 400 {
		t.Errorf("expected a 600x400 frame, got %v", b)
	}
	r, g, b, _ := img.At(50, 220).RGBA()
	if r>>8 != 0 || g>>8 != 255 || b>>8 != 0 {
		t.Errorf("expected #id3 to be green, got %v", img.At(50, 220))
	}
}

func TestIntegration_FileDocument(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "index.html")
	doc := `<html><head><style>#a { background-color: red; width: 8; height: 4 } p { margin: 1 }</style>` +
		`<script>"a" + 1</script></head><body><div id="a"></div></body></html>`
	if err := os.WriteFile(input, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, "out.png")
	out, err := execute(t, "-u", input, "-o", output, "-W", "10", "-H", "10", "--engine", "goja")
	if err != nil {
		t.Fatalf("webling failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "a1\n") {
		t.Errorf("expected script output, got\n%s", out)
	}
	img, err := gg.LoadPNG(output)
	if err != nil {
		t.Fatal(err)
	}
	if got := color.RGBAModel.Convert(img.At(1, 1)); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("expected red at (1,1), got %v", got)
	}
	if got := color.RGBAModel.Convert(img.At(9, 9)); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("expected white at (9,9), got %v", got)
	}
}

func TestIntegration_Errors(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.png")
	tests := [][]string{
		{"-d", "-o", output, "--engine", "rhino"},
		{"-d", "-o", output, "-W", "0"},
		{"-d", "-o", output, "-W", "100"},
		{"-u", filepath.Join(dir, "missing.html"), "-o", output},
		{"-d", "extra-argument"},
	}
	for _, args := range tests {
		if _, err := execute(t, args...); err == nil {
			t.Errorf("args %v: expected an error", args)
		}
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Errorf("expected no output file after failures, got %v", err)
	}
}
