package suggest

import "testing"

func TestCleanSource(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{"react", "react"},
		{"motion/react", "motion/react"},
		{"node_modules/lodash", "lodash"},
		{"node_modules/lodash/fp/map.js", "lodash"},
		{"/project/node_modules/axios/index.d.ts", "axios"},
		{"node_modules/@tanstack/react-query", "@tanstack/react-query"},
		{"/project/node_modules/@mui/material/Button/index.d.ts", "@mui/material"},
		{"node_modules/@types/react/index.d.ts", "react"},
		{"node_modules/@types/uuid", "uuid"},
		{"/a/node_modules/pkg/node_modules/nested", "nested"},
	}

	for _, tc := range cases {
		if got := CleanSource(tc.source); got != tc.want {
			t.Fatalf("CleanSource(%q) = %q, want %q", tc.source, got, tc.want)
		}
	}
}
