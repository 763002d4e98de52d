package id

import "testing"

func TestFormat_Name(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		want   string
		wantOK bool
	}{
		{
			name:   "JPEG",
			format: FormatJPEG,
			want:   "image/jpeg",
			wantOK: true,
		},
		{
			name:   "TIFF",
			format: FormatTIFF,
			want:   "image/tiff",
			wantOK: true,
		},
		{
			name:   "PNG",
			format: FormatPNG,
			want:   "image/png",
			wantOK: true,
		},
		{
			name:   "PDF",
			format: FormatPDF,
			want:   "application/pdf",
			wantOK: true,
		},
		{
			name:   "BMP",
			format: FormatBMP,
			want:   "application/bmp",
			wantOK: true,
		},
		{
			name:   "unknown member",
			format: FormatUnknown,
			want:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.format.Name()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Name() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFormatByName(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Format
	}{
		{
			name:  "exact case",
			query: "image/jpeg",
			want:  FormatJPEG,
		},
		{
			name:  "uppercase",
			query: "IMAGE/PNG",
			want:  FormatPNG,
		},
		{
			name:  "mixed case",
			query: "Application/Pdf",
			want:  FormatPDF,
		},
		{
			name:  "short name does not match",
			query: "pdf",
			want:  FormatUnknown,
		},
		{
			name:  "unrecognized MIME type",
			query: "image/webp",
			want:  FormatUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatByName(tt.query); got != tt.want {
				t.Errorf("FormatByName(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestFormat_ShortName(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		want   string
		wantOK bool
	}{
		{
			name:   "image prefix stripped",
			format: FormatJPEG,
			want:   "jpeg",
			wantOK: true,
		},
		{
			name:   "application prefix stripped",
			format: FormatPDF,
			want:   "pdf",
			wantOK: true,
		},
		{
			name:   "unmapped format propagates absence",
			format: FormatUnknown,
			want:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.format.ShortName()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ShortName() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestShortNameOf(t *testing.T) {
	tests := []struct {
		name string
		mime string
		want string
	}{
		{
			name: "with separator",
			mime: "image/tiff",
			want: "tiff",
		},
		{
			name: "without separator returns whole name",
			mime: "photo",
			want: "photo",
		},
		{
			name: "only first separator counts",
			mime: "image/x-portable/anymap",
			want: "x-portable/anymap",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shortNameOf(tt.mime); got != tt.want {
				t.Errorf("shortNameOf(%q) = %q, want %q", tt.mime, got, tt.want)
			}
		})
	}
}
