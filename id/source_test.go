package id

import "testing"

func TestSource_Name(t *testing.T) {
	tests := []struct {
		name   string
		source Source
		want   string
		wantOK bool
	}{
		{
			name:   "platen",
			source: SourcePlaten,
			want:   "Flatbed",
			wantOK: true,
		},
		{
			name:   "ADF simplex",
			source: SourceADFSimplex,
			want:   "ADF",
			wantOK: true,
		},
		{
			name:   "ADF duplex",
			source: SourceADFDuplex,
			want:   "ADF Duplex",
			wantOK: true,
		},
		{
			name:   "unknown member",
			source: SourceUnknown,
			want:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.source.Name()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Name() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSourceByName(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Source
	}{
		{
			name:  "exact case",
			query: "Flatbed",
			want:  SourcePlaten,
		},
		{
			name:  "lowercase",
			query: "flatbed",
			want:  SourcePlaten,
		},
		{
			name:  "adf lowercase",
			query: "adf",
			want:  SourceADFSimplex,
		},
		{
			name:  "duplex mixed case",
			query: "adf duplex",
			want:  SourceADFDuplex,
		},
		{
			name:  "unrecognized source",
			query: "Tray 2",
			want:  SourceUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SourceByName(tt.query); got != tt.want {
				t.Errorf("SourceByName(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}
