package ui

import (
	"strings"
	"testing"
)

// TestDefaultFaceSource 测试内置字体可以解析
func TestDefaultFaceSource(t *testing.T) {
	src, err := DefaultFaceSource()
	if err != nil {
		t.Fatalf("DefaultFaceSource() error: %v", err)
	}
	if src == nil {
		t.Fatal("DefaultFaceSource() returned nil")
	}

	again, _ := DefaultFaceSource()
	if again != src {
		t.Error("字体源应只解析一次")
	}
}

// TestMeasureTextWidth 测试文本宽度测量
func TestMeasureTextWidth(t *testing.T) {
	font := NewFace(24)
	if font == nil {
		t.Fatal("NewFace(24) returned nil")
	}

	short := MeasureTextWidth("cat", font)
	long := MeasureTextWidth("raccoon", font)
	if short <= 0 || long <= short {
		t.Errorf("宽度异常: cat=%v raccoon=%v", short, long)
	}
	if MeasureTextWidth("", font) != 0 {
		t.Error("空串宽度应为 0")
	}

	if got := MeasureTextWidth("abcd", nil); got != 24 {
		t.Errorf("调试字体宽度 = %v, 期望 24", got)
	}
}

// TestTruncateText 测试文本截断
func TestTruncateText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth float64
		want     string
	}{
		{"不截断", "lion", 100, "lion"},
		{"截断", "raccoon", 30, "racc…"},
		{"零宽", "fox", 0, ""},
		{"单字符也放不下", "tiger", 5, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateText(tt.input, nil, tt.maxWidth)
			if got != tt.want {
				t.Errorf("TruncateText(%q, %v) = %q, 期望 %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}

	font := NewFace(24)
	got := TruncateText("a very long face name", font, 80)
	if !strings.HasSuffix(got, "…") || MeasureTextWidth(got, font) > 80 {
		t.Errorf("TruncateText 结果 %q 不符合要求", got)
	}
}
