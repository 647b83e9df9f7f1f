package ports

import "testing"

func TestParseImageFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    ImageFormat
		wantErr bool
	}{
		{"", FormatPNG, false},
		{"png", FormatPNG, false},
		{".PNG", FormatPNG, false},
		{"jpg", FormatJPEG, false},
		{"JPEG", FormatJPEG, false},
		{".jpeg", FormatJPEG, false},
		{"webp", FormatPNG, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseImageFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseImageFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseImageFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestImageFormat_Extension(t *testing.T) {
	if FormatPNG.Extension() != ".png" {
		t.Errorf("unexpected PNG extension %q", FormatPNG.Extension())
	}
	if FormatJPEG.Extension() != ".jpg" {
		t.Errorf("unexpected JPEG extension %q", FormatJPEG.Extension())
	}
}
