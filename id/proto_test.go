package id

import "testing"

func TestProto_Name(t *testing.T) {
	tests := []struct {
		name   string
		proto  Proto
		want   string
		wantOK bool
	}{
		{
			name:   "eSCL",
			proto:  ProtoESCL,
			want:   "eSCL",
			wantOK: true,
		},
		{
			name:   "WSD",
			proto:  ProtoWSD,
			want:   "WSD",
			wantOK: true,
		},
		{
			name:   "unknown member",
			proto:  ProtoUnknown,
			want:   "",
			wantOK: false,
		},
		{
			name:   "out of range",
			proto:  Proto(99),
			want:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.proto.Name()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Name() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestProtoByName(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Proto
	}{
		{
			name:  "exact case eSCL",
			query: "eSCL",
			want:  ProtoESCL,
		},
		{
			name:  "lowercase escl",
			query: "escl",
			want:  ProtoESCL,
		},
		{
			name:  "uppercase ESCL",
			query: "ESCL",
			want:  ProtoESCL,
		},
		{
			name:  "mixed case eScL",
			query: "eScL",
			want:  ProtoESCL,
		},
		{
			name:  "lowercase wsd",
			query: "wsd",
			want:  ProtoWSD,
		},
		{
			name:  "unrecognized protocol",
			query: "ftp",
			want:  ProtoUnknown,
		},
		{
			name:  "empty name",
			query: "",
			want:  ProtoUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProtoByName(tt.query); got != tt.want {
				t.Errorf("ProtoByName(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestProto_String(t *testing.T) {
	if got := ProtoWSD.String(); got != "WSD" {
		t.Errorf("String() = %q, want %q", got, "WSD")
	}
	if got := Proto(99).String(); got != "unknown (99)" {
		t.Errorf("String() = %q, want %q", got, "unknown (99)")
	}
}
