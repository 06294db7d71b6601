package main

import (
	"reflect"
	"testing"
)

func TestRewriteProjectRefArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"hiot"},
			want: []string{"hiot"},
		},
		{
			name: "project ref first token",
			in:   []string{"hiot", "acme/smart-lock"},
			want: []string{"hiot", "projects", "show", "smart-lock"},
		},
		{
			name: "project ref after value flag",
			in:   []string{"hiot", "--backend", "http://localhost:3002", "acme/smart-lock"},
			want: []string{"hiot", "--backend", "http://localhost:3002", "projects", "show", "smart-lock"},
		},
		{
			name: "project ref after equals flag",
			in:   []string{"hiot", "--backend=http://localhost:3002", "acme/smart-lock"},
			want: []string{"hiot", "--backend=http://localhost:3002", "projects", "show", "smart-lock"},
		},
		{
			name: "project ref after bool flag",
			in:   []string{"hiot", "--pretty", "acme/smart-lock"},
			want: []string{"hiot", "--pretty", "projects", "show", "smart-lock"},
		},
		{
			name: "project ref after double dash",
			in:   []string{"hiot", "--data-dir", "./tmp", "--", "acme/smart-lock"},
			want: []string{"hiot", "--data-dir", "./tmp", "--", "projects", "show", "smart-lock"},
		},
		{
			name: "normal subcommand not rewritten",
			in:   []string{"hiot", "projects", "show", "smart-lock"},
			want: []string{"hiot", "projects", "show", "smart-lock"},
		},
		{
			name: "bare id not rewritten",
			in:   []string{"hiot", "smart-lock"},
			want: []string{"hiot", "smart-lock"},
		},
		{
			name: "nested slashes not rewritten",
			in:   []string{"hiot", "acme/devices/smart-lock"},
			want: []string{"hiot", "acme/devices/smart-lock"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteProjectRefArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewriteProjectRefArgs:\n got: %#v\nwant: %#v", got, tt.want)
			}
		})
	}
}
