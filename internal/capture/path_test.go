package capture

import (
	"regexp"
	"testing"
	"time"
)

var pathClock = time.Date(2022, 8, 8, 13, 45, 9, 0, time.UTC)

func TestOutputFileName(t *testing.T) {
	tests := []struct {
		name   string
		dir    string
		format string
		want   string
	}{
		{"no trailing slash", "C:/shots", "png", "C:/shots/20220808_134509.png"},
		{"trailing slash kept single", "C:/shots/", "png", "C:/shots/20220808_134509.png"},
		{"backslashes normalized", `C:\shots`, "png", "C:/shots/20220808_134509.png"},
		{"trailing backslash", `C:\shots\`, "jpg", "C:/shots/20220808_134509.jpg"},
		{"mixed separators", `C:\Users\bill/pictures`, "bmp", "C:/Users/bill/pictures/20220808_134509.bmp"},
		{"relative dir", "shots", "png", "shots/20220808_134509.png"},
		{"empty dir", "", "png", "/20220808_134509.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputFileName(tt.dir, tt.format, pathClock); got != tt.want {
				t.Errorf("OutputFileName(%q, %q) = %q, want %q", tt.dir, tt.format, got, tt.want)
			}
		})
	}
}

func TestOutputFileName_TimestampPattern(t *testing.T) {
	re := regexp.MustCompile(`^out/\d{8}_\d{6}\.png$`)
	got := OutputFileName("out", "png", time.Now())
	if !re.MatchString(got) {
		t.Errorf("OutputFileName = %q, want match for %s", got, re)
	}
}
