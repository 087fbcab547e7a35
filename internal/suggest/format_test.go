package suggest

import (
	"strings"
	"testing"
)

func TestFormatImportDefault(t *testing.T) {
	got := FormatImport("axios", "axios", ModuleKind)
	if got != `import axios from "axios";` {
		t.Fatalf("unexpected default import: %q", got)
	}
	if strings.ContainsAny(got, "{}") {
		t.Fatalf("default import must not contain braces: %q", got)
	}
}

func TestFormatImportNamed(t *testing.T) {
	got := FormatImport("useState", "react", "function")
	if got != `import { useState } from "react";` {
		t.Fatalf("unexpected named import: %q", got)
	}
}

func TestFormatGrouped(t *testing.T) {
	cases := []struct {
		group GroupedImport
		want  string
	}{
		{
			GroupedImport{Module: "react", NamedImports: []string{"useState", "useEffect"}},
			`import { useState, useEffect } from "react";`,
		},
		{
			GroupedImport{Module: "axios", DefaultImports: []string{"axios"}},
			`import axios from "axios";`,
		},
		{
			GroupedImport{Module: "react", DefaultImports: []string{"React"}, NamedImports: []string{"useState"}},
			`import React, { useState } from "react";`,
		},
	}

	for _, tc := range cases {
		if got := FormatGrouped(tc.group); got != tc.want {
			t.Fatalf("FormatGrouped(%#v) = %q, want %q", tc.group, got, tc.want)
		}
	}
}
