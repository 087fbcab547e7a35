package engine

// Ambient global tables. Which ones apply is driven by Config.Lib: "dom*"
// entries pull in domGlobals, everything else ("es2022", "esnext", ...) pulls
// in esGlobals. Utility type names ship with every lib level.

var esGlobals = newNameSet(
	"Array", "ArrayBuffer", "AsyncIterator", "Atomics", "BigInt", "BigInt64Array",
	"BigUint64Array", "Boolean", "DataView", "Date", "Error", "EvalError",
	"FinalizationRegistry", "Float32Array", "Float64Array", "Function", "Infinity",
	"Int8Array", "Int16Array", "Int32Array", "Intl", "Iterator", "JSON", "Map",
	"Math", "NaN", "Number", "Object", "Promise", "Proxy", "RangeError",
	"ReferenceError", "Reflect", "RegExp", "Set", "SharedArrayBuffer", "String",
	"Symbol", "SyntaxError", "TypeError", "URIError", "Uint8Array",
	"Uint8ClampedArray", "Uint16Array", "Uint32Array", "WeakMap", "WeakRef",
	"WeakSet", "decodeURI", "decodeURIComponent", "encodeURI",
	"encodeURIComponent", "eval", "globalThis", "isFinite", "isNaN",
	"parseFloat", "parseInt", "undefined",
	// utility and companion types
	"Awaited", "Capitalize", "ConstructorParameters", "Exclude", "Extract",
	"InstanceType", "Lowercase", "NonNullable", "Omit", "OmitThisParameter",
	"Parameters", "Partial", "Pick", "PromiseLike", "Readonly", "ReadonlyArray",
	"Record", "Required", "ReturnType", "ThisParameterType", "ThisType",
	"Uncapitalize", "Uppercase", "ArrayLike", "Iterable", "IterableIterator",
	"PropertyKey", "TemplateStringsArray",
)

var domGlobals = newNameSet(
	"AbortController", "AbortSignal", "Blob", "CSSStyleDeclaration", "CustomEvent",
	"DOMParser", "DOMRect", "Document", "DragEvent", "Element", "Event",
	"EventTarget", "File", "FileReader", "FormData", "HTMLButtonElement",
	"HTMLCanvasElement", "HTMLDivElement", "HTMLElement", "HTMLFormElement",
	"HTMLInputElement", "HTMLSelectElement", "HTMLTextAreaElement", "Headers",
	"Image", "IntersectionObserver", "KeyboardEvent", "MessageEvent",
	"MouseEvent", "MutationObserver", "Node", "NodeList", "Notification",
	"PointerEvent", "Request", "ResizeObserver", "Response", "Storage",
	"TextDecoder", "TextEncoder", "TouchEvent", "URL", "URLSearchParams",
	"WebSocket", "Window", "Worker", "XMLHttpRequest", "alert", "atob", "btoa",
	"cancelAnimationFrame", "clearInterval", "clearTimeout", "confirm",
	"console", "crypto", "customElements", "document", "fetch", "history",
	"indexedDB", "localStorage", "location", "navigator", "performance",
	"prompt", "queueMicrotask", "requestAnimationFrame", "sessionStorage",
	"setInterval", "setTimeout", "structuredClone", "window",
)

// Names tsc attributes to a missing test-runner type package (code 2582).
var testRunnerGlobals = newNameSet(
	"afterAll", "afterEach", "beforeAll", "beforeEach", "describe", "expect",
	"it", "jest", "test", "vi", "xdescribe", "xit",
)

// Names tsc knows as UMD globals when type definitions are installed
// (code 2686): usable as a global in scripts, but modules must import them.
var umdGlobals = newNameSet(
	"$", "Backbone", "React", "ReactDOM", "_", "angular", "d3", "jQuery",
	"moment",
)

func newNameSet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

func (c Config) ambientGlobals() map[string]bool {
	globals := make(map[string]bool, len(esGlobals)+len(domGlobals))
	for name := range esGlobals {
		globals[name] = true
	}
	for _, lib := range c.Lib {
		if lib == "dom" || lib == "dom.iterable" {
			for name := range domGlobals {
				globals[name] = true
			}
		}
	}
	return globals
}
