// Package preview serves a read-only HTTP view of a board.
//
// The server re-loads the board on every request through a [Loader], so a
// preview left open in a browser follows edits made with the CLI. Rendered
// artifacts are cached by document hash.
//
// Routes:
//
//	GET /                 redirect to /layout.svg
//	GET /healthz          liveness probe
//	GET /version          build information
//	GET /layout.{format}  svg, png, pdf, json or txt
//	GET /summary          text summary
//	GET /entries          row-major export entries as JSON
package preview
