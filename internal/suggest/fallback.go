package suggest

// Fallback maps a symbol name to pre-baked import statements used when the
// engine yields no suggestion. It is injected into the processor at startup
// rather than consulted as a global, so entries can be added per invocation.
type Fallback map[string][]string

// DefaultFallback covers symbols the engine's index has no entry for.
func DefaultFallback() Fallback {
	return Fallback{
		"motion": {`import { motion } from "motion/react";`},
	}
}
